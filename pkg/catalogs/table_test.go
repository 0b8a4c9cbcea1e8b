package catalogs

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/gamecat/pkg/errors"
)

const gamesFile = `Name,Developer,Producer,Genre,Operating System,Date Released
SimCity,Maxis,Brøderbund,City-building,"Microsoft Windows","February 2, 1989"
"The Sims",Maxis,"Electronic Arts","Life simulation","Microsoft Windows","February 4, 2000"
Doom,"id Software","GT Interactive","First-person shooter",MS-DOS,"December 10, 1993"
"a row with",too,few,fields,here
Spore,Maxis,"Electronic Arts","God game",macOS,"September 7, 2008"
`

func writeGamesFile(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "games.csv")
	require.NoError(t, os.WriteFile(path, []byte(gamesFile), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	c, result, err := Load(writeGamesFile(t), ',')
	require.NoError(t, err)

	assert.Equal(t, 4, c.Len())
	assert.Equal(t, LoadResult{Kept: 4, DroppedLines: 1}, result)
	assert.Equal(t, []string{"SimCity", "The Sims", "Doom", "Spore"}, names(c.Games()))
}

func TestLoadErrors(t *testing.T) {
	_, _, err := Load(filepath.Join(t.TempDir(), "games.txt"), ',')
	assert.True(t, errors.IsFormatError(err))

	_, _, err = Load(filepath.Join(t.TempDir(), "missing.csv"), ',')
	assert.True(t, errors.IsIOError(err))
}

func TestToTable(t *testing.T) {
	c := TestCatalog(t)
	table := ToTable(c.ByDeveloper("Maxis"), ',')

	assert.Equal(t, Header(), table.Header())
	assert.Equal(t, 4, table.Len())
	assert.Equal(t, `SimCity,Maxis,Brøderbund,City-building,"Microsoft Windows","February 2, 1989"`, table.Lines()[0])
}

func TestExportRoundTrip(t *testing.T) {
	c, _, err := Load(writeGamesFile(t), ',')
	require.NoError(t, err)

	subset := c.ByDeveloper("Maxis")
	path := filepath.Join(t.TempDir(), "Developer_Maxis.csv")
	require.NoError(t, Export(path, subset, ','))

	reloaded, result, err := Load(path, ',')
	require.NoError(t, err)
	assert.Equal(t, 0, result.DroppedLines)
	assert.Equal(t, subset, reloaded.Games())

	for i, g := range reloaded.Games() {
		assert.Equal(t, subset[i].RawReleaseDate(), g.RawReleaseDate())
	}

	err = Export(filepath.Join(t.TempDir(), "out.txt"), subset, ',')
	assert.True(t, errors.IsFormatError(err))
}

func TestExportCustomSeparator(t *testing.T) {
	games := TestGames(t)
	path := filepath.Join(t.TempDir(), "games.csv")
	require.NoError(t, Export(path, games, ';'))

	reloaded, _, err := Load(path, ';')
	require.NoError(t, err)
	assert.Equal(t, games, reloaded.Games())
}

func TestRead(t *testing.T) {
	c, result, err := Read(strings.NewReader(gamesFile), ',')
	require.NoError(t, err)
	assert.Equal(t, 4, c.Len())
	assert.Equal(t, 1, result.DroppedLines)
}
