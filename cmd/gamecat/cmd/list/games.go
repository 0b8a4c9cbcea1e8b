package list

import (
	"github.com/spf13/cobra"

	"github.com/agentstation/gamecat/internal/appcontext"
	"github.com/agentstation/gamecat/internal/cmd/globals"
	"github.com/agentstation/gamecat/pkg/catalogs"
	"github.com/agentstation/gamecat/pkg/errors"
	"github.com/agentstation/gamecat/pkg/logging"
)

// NewGamesCommand creates the list games subcommand.
func NewGamesCommand(app appcontext.Interface) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "games [name]",
		Aliases: []string{"game"},
		Short:   "List games",
		Long: `List games in catalog order, optionally narrowed by field values,
release month or year. Field values match exactly and are case-sensitive.

With a name argument the matching game is shown in detail.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := app.Catalog()
			if err != nil {
				return err
			}

			flags := globals.ParseGames(cmd)
			games, err := flags.Filter().Apply(c)
			if err != nil {
				return err
			}

			p := printer(cmd, app)
			if len(args) == 0 {
				logging.Ctx(cmd.Context()).Debug().Int("games", len(games)).Msg("Listing games")
				return p.Games(games)
			}

			matches := catalogs.New(games...).ByField(catalogs.FieldName, args[0])
			if len(matches) == 0 {
				return errors.NewNotFoundError("game", "name="+args[0])
			}
			return p.Game(matches[0])
		},
	}

	globals.AddGameFlags(cmd)

	return cmd
}
