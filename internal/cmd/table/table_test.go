package table

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/gamecat/pkg/catalogs"
)

func TestGamesToTableData(t *testing.T) {
	games := catalogs.TestGames(t)[:2]

	data := GamesToTableData(games, false)
	assert.Len(t, data.Headers, 6)
	require.Len(t, data.Rows, 2)
	assert.Equal(t, []string{"SimCity", "Maxis", "Brøderbund", "City-building", "Microsoft Windows", "February 1989"}, data.Rows[0])
	assert.Empty(t, data.ColumnAlignment)

	wide := GamesToTableData(games, true)
	assert.Len(t, wide.Headers, 8)
	assert.Equal(t, "February 2, 1989", wide.Rows[0][6])
	assert.Equal(t, "1989", wide.Rows[0][7])
	assert.Len(t, wide.ColumnAlignment, 8)
}

func TestGamesToTableDataEmpty(t *testing.T) {
	data := GamesToTableData(nil, false)
	assert.NotNil(t, data.Rows)
	assert.Empty(t, data.Rows)
}

func TestGameDetails(t *testing.T) {
	g := catalogs.TestGame(t, "Doom", "id Software", "GT Interactive", "First-person shooter", "MS-DOS", "")
	data := GameDetails(g)
	assert.Equal(t, []string{"Property", "Value"}, data.Headers)
	assert.Equal(t, []string{"Released", "January 2000"}, data.Rows[5])
	assert.Equal(t, []string{"Date Released", "-"}, data.Rows[6])
}

func TestCountsToTableData(t *testing.T) {
	counts := catalogs.TestCatalog(t).CountsBy(catalogs.FieldProducer)
	require.NotNil(t, counts)

	data := CountsToTableData(counts.Entries(), catalogs.FieldProducer)
	assert.Equal(t, []string{"Producer", "Games"}, data.Headers)
	assert.Equal(t, []string{"Brøderbund", "1"}, data.Rows[0])
	assert.Equal(t, []Align{AlignLeft, AlignRight}, data.ColumnAlignment)
}
