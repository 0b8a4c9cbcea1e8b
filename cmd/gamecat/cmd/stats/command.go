// Package stats implements aggregate queries over the catalog.
package stats

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/agentstation/gamecat/internal/appcontext"
	"github.com/agentstation/gamecat/internal/cmd/globals"
	"github.com/agentstation/gamecat/internal/cmd/output"
	"github.com/agentstation/gamecat/pkg/catalogs"
)

// NewCommand creates the stats command with app dependencies.
func NewCommand(app appcontext.Interface) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "stats [query]",
		GroupID: "core",
		Short:   "Aggregate queries over the catalog",
		Long: `Stats answers aggregate questions about the loaded games.

Available subcommands:
  oldest        - earliest released game, optionally for a platform and genre
  newest        - latest released game
  fewest        - field value with the fewest games (producer by default)
  counts        - number of games per field value
  average-year  - integer average of release years`,
		Example: `  gamecat stats oldest --platform "Microsoft Windows" --genre "First-person shooter"
  gamecat stats fewest                         # Producer with the fewest games
  gamecat stats counts --by genre              # Games per genre
  gamecat stats average-year --developer Maxis`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return cmd.Help()
			}
			return fmt.Errorf("unknown query: %s", args[0])
		},
	}

	cmd.AddCommand(newExtremalCommand(app, "oldest", "Show the earliest released game", oldest))
	cmd.AddCommand(newExtremalCommand(app, "newest", "Show the latest released game", newest))
	cmd.AddCommand(NewFewestCommand(app))
	cmd.AddCommand(NewCountsCommand(app))
	cmd.AddCommand(NewAverageYearCommand(app))

	return cmd
}

// NewFewestCommand creates the stats fewest subcommand.
func NewFewestCommand(app appcontext.Interface) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fewest",
		Short: "Show the field value associated with the fewest games",
		Long: `Fewest counts games per value of the --by field and shows the value
with the smallest count. On a tie the value seen first in the file wins.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			field, err := globals.ParseField(cmd)
			if err != nil {
				return err
			}

			c, err := app.Catalog()
			if err != nil {
				return err
			}

			fewest, err := c.FewestBy(field)
			if err != nil {
				return err
			}
			return printer(cmd, app).Any(fewest)
		},
	}

	globals.AddFieldFlag(cmd, catalogs.FieldProducer)

	return cmd
}

// NewCountsCommand creates the stats counts subcommand.
func NewCountsCommand(app appcontext.Interface) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "counts",
		Short: "Show the number of games per field value",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			field, err := globals.ParseField(cmd)
			if err != nil {
				return err
			}

			c, err := app.Catalog()
			if err != nil {
				return err
			}

			var entries []catalogs.GroupCount
			if counts := c.CountsBy(field); counts != nil {
				entries = counts.Entries()
			}
			return printer(cmd, app).Counts(entries, field)
		},
	}

	globals.AddFieldFlag(cmd, catalogs.FieldProducer)

	return cmd
}

// averageYear is the payload of the average-year subcommand.
type averageYear struct {
	AverageReleaseYear int `json:"average_release_year" yaml:"average_release_year"`
	Games              int `json:"games" yaml:"games"`
}

// NewAverageYearCommand creates the stats average-year subcommand.
func NewAverageYearCommand(app appcontext.Interface) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "average-year",
		Aliases: []string{"average"},
		Short:   "Show the integer average release year",
		Long: `Average-year sums the release years of the selected games and divides
by their number, truncating toward zero.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, err := app.Catalog()
			if err != nil {
				return err
			}

			games, err := globals.ParseGames(cmd).Filter().Apply(c)
			if err != nil {
				return err
			}

			year, err := catalogs.New(games...).AverageReleaseYear()
			if err != nil {
				return err
			}
			return printer(cmd, app).Any(averageYear{AverageReleaseYear: year, Games: len(games)})
		},
	}

	globals.AddGameFlags(cmd)

	return cmd
}

func printer(cmd *cobra.Command, app appcontext.Interface) *output.Printer {
	return output.NewPrinter(cmd.OutOrStdout(), output.Format(app.OutputFormat()), app.Separator())
}
