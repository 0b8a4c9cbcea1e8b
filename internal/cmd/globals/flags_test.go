package globals

import (
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/gamecat/pkg/catalogs"
)

func TestGameFlags(t *testing.T) {
	cmd := &cobra.Command{Use: "games"}
	AddGameFlags(cmd)
	require.NoError(t, cmd.ParseFlags([]string{
		"--developer", "Maxis", "-m", "Dec", "--after", "1990", "-l", "3", "--platform", "Microsoft Windows",
	}))

	flags := ParseGames(cmd)
	assert.Equal(t, "Maxis", flags.Developer)
	assert.Equal(t, "Dec", flags.Month)
	require.NotNil(t, flags.After)
	assert.Equal(t, 1990, *flags.After)
	assert.Equal(t, 3, flags.Limit)

	f := flags.Filter()
	assert.Equal(t, "Microsoft Windows", f.Platform)
	assert.Len(t, f.Constraints(), 2)
}

func TestGameFlagsAfter(t *testing.T) {
	cmd := &cobra.Command{Use: "games"}
	AddGameFlags(cmd)
	assert.Nil(t, ParseGames(cmd).After)

	require.NoError(t, cmd.ParseFlags([]string{"--after", "0"}))
	flags := ParseGames(cmd)
	require.NotNil(t, flags.After)
	assert.Equal(t, 0, *flags.After)
	assert.Equal(t, flags.After, flags.Filter().After)
}

func TestParseGamesPanicsWithoutFlags(t *testing.T) {
	assert.Panics(t, func() {
		ParseGames(&cobra.Command{Use: "bare"})
	})
}

func TestFieldFlag(t *testing.T) {
	cmd := &cobra.Command{Use: "counts"}
	AddFieldFlag(cmd, catalogs.FieldProducer)

	field, err := ParseField(cmd)
	require.NoError(t, err)
	assert.Equal(t, catalogs.FieldProducer, field)

	require.NoError(t, cmd.ParseFlags([]string{"--by", "genres"}))
	field, err = ParseField(cmd)
	require.NoError(t, err)
	assert.Equal(t, catalogs.FieldGenre, field)

	require.NoError(t, cmd.ParseFlags([]string{"--by", "year"}))
	_, err = ParseField(cmd)
	assert.Error(t, err)
}
