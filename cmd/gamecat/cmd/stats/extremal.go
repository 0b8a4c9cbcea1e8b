package stats

import (
	"github.com/spf13/cobra"

	"github.com/agentstation/gamecat/internal/appcontext"
	"github.com/agentstation/gamecat/internal/cmd/filter"
	"github.com/agentstation/gamecat/internal/cmd/globals"
	"github.com/agentstation/gamecat/pkg/catalogs"
)

type extremalFunc func(*filter.GameFilter, *catalogs.Catalog) (catalogs.Game, error)

var (
	oldest extremalFunc = (*filter.GameFilter).Oldest
	newest extremalFunc = (*filter.GameFilter).Newest
)

// newExtremalCommand builds the oldest and newest subcommands. Without
// selection flags the whole catalog is considered; --preset applies the
// configured platform and genre.
func newExtremalCommand(app appcontext.Interface, use, short string, find extremalFunc) *cobra.Command {
	var preset bool

	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		Long: short + `. Ties go to the game that appears first in the file.
It fails with "cannot determine" when no game matches.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, err := app.Catalog()
			if err != nil {
				return err
			}

			f := globals.ParseGames(cmd).Filter()
			if preset {
				presets := app.Presets()
				if f.Platform == "" {
					f.Platform = presets.Platform
				}
				if f.Genre == "" {
					f.Genre = presets.Genre
				}
			}

			g, err := find(f, c)
			if err != nil {
				return err
			}
			return printer(cmd, app).Game(g)
		},
	}

	globals.AddGameFlags(cmd)
	cmd.Flags().BoolVar(&preset, "preset", false, "use the configured platform and genre defaults")

	return cmd
}
