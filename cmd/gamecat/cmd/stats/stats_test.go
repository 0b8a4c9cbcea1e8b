package stats

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/gamecat/internal/appcontext"
	"github.com/agentstation/gamecat/pkg/catalogs"
	"github.com/agentstation/gamecat/pkg/errors"
)

func testApp(t *testing.T, c *catalogs.Catalog) *appcontext.Mock {
	t.Helper()
	return &appcontext.Mock{
		CatalogFunc:      func() (*catalogs.Catalog, error) { return c, nil },
		OutputFormatFunc: func() string { return "json" },
	}
}

func run(t *testing.T, app appcontext.Interface, args ...string) (string, error) {
	t.Helper()
	cmd := NewCommand(app)
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetErr(&buf)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return buf.String(), err
}

func decodeGame(t *testing.T, out string) catalogs.GameData {
	t.Helper()
	var g catalogs.GameData
	require.NoError(t, json.Unmarshal([]byte(out), &g))
	return g
}

func TestOldest(t *testing.T) {
	app := testApp(t, catalogs.TestCatalog(t))

	out, err := run(t, app, "oldest")
	require.NoError(t, err)
	assert.Equal(t, "SimCity", decodeGame(t, out).Name)

	out, err = run(t, app, "oldest", "--preset")
	require.NoError(t, err)
	assert.Equal(t, "Quake", decodeGame(t, out).Name)

	out, err = run(t, app, "oldest", "--platform", "Microsoft Windows", "--genre", "City-building")
	require.NoError(t, err)
	assert.Equal(t, "SimCity", decodeGame(t, out).Name)

	_, err = run(t, app, "oldest", "--platform", "Amiga")
	assert.True(t, errors.IsCannotDetermine(err))
}

func TestNewest(t *testing.T) {
	out, err := run(t, testApp(t, catalogs.TestCatalog(t)), "newest", "--genre", "First-person shooter")
	require.NoError(t, err)
	assert.Equal(t, "Half-Life", decodeGame(t, out).Name)
}

func TestFewest(t *testing.T) {
	app := testApp(t, catalogs.TestCatalog(t))

	out, err := run(t, app, "fewest")
	require.NoError(t, err)
	var fewest catalogs.GroupCount
	require.NoError(t, json.Unmarshal([]byte(out), &fewest))
	assert.Equal(t, catalogs.GroupCount{Value: "Brøderbund", Count: 1}, fewest)

	out, err = run(t, app, "fewest", "--by", "developer")
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal([]byte(out), &fewest))
	assert.Equal(t, catalogs.GroupCount{Value: "Valve", Count: 1}, fewest)

	_, err = run(t, testApp(t, catalogs.New()), "fewest")
	assert.True(t, errors.IsEmptyCatalog(err))

	_, err = run(t, app, "fewest", "--by", "year")
	assert.True(t, errors.IsValidationError(err))
}

func TestCounts(t *testing.T) {
	out, err := run(t, testApp(t, catalogs.TestCatalog(t)), "counts", "--by", "genre")
	require.NoError(t, err)

	var counts []catalogs.GroupCount
	require.NoError(t, json.Unmarshal([]byte(out), &counts))
	assert.Equal(t, []catalogs.GroupCount{
		{Value: "City-building", Count: 2},
		{Value: "First-person shooter", Count: 3},
		{Value: "Life simulation", Count: 1},
		{Value: "God game", Count: 1},
	}, counts)
}

func TestAverageYear(t *testing.T) {
	app := testApp(t, catalogs.TestCatalog(t))

	out, err := run(t, app, "average-year")
	require.NoError(t, err)
	assert.JSONEq(t, `{"average_release_year": 1998, "games": 7}`, out)

	out, err = run(t, app, "average", "--developer", "id Software")
	require.NoError(t, err)
	assert.JSONEq(t, `{"average_release_year": 1994, "games": 2}`, out)

	_, err = run(t, app, "average-year", "--developer", "Nobody")
	assert.True(t, errors.IsEmptyCatalog(err))
}
