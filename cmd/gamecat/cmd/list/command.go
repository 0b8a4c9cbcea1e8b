// Package list implements the list command and its subcommands.
package list

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/agentstation/gamecat/internal/appcontext"
	"github.com/agentstation/gamecat/internal/cmd/output"
	"github.com/agentstation/gamecat/pkg/catalogs"
)

// NewCommand creates the list command with app dependencies.
func NewCommand(app appcontext.Interface) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "list [resource]",
		GroupID: "core",
		Short:   "List games and categorical values from the catalog",
		Long: `List displays games or the distinct values of a categorical field.

Available subcommands:
  games       - games, optionally narrowed by developer, month, platform...
  developers  - distinct developers with their game counts
  producers   - distinct producers with their game counts
  genres      - distinct genres with their game counts
  platforms   - distinct operating systems with their game counts`,
		Example: `  gamecat list games --developer Maxis         # Games by Maxis
  gamecat list games --month December          # Games released in December
  gamecat list games "Half-Life"               # Show one game in detail
  gamecat list producers -o json               # Producers with counts as JSON`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return cmd.Help()
			}
			return fmt.Errorf("unknown resource: %s", args[0])
		},
	}

	cmd.AddCommand(NewGamesCommand(app))
	for _, field := range catalogs.Fields {
		cmd.AddCommand(NewValuesCommand(app, field))
	}

	return cmd
}

// NewValuesCommand lists the distinct values of field in first-seen order
// with the number of games for each.
func NewValuesCommand(app appcontext.Interface, field catalogs.Field) *cobra.Command {
	return &cobra.Command{
		Use:   field.Plural(),
		Short: fmt.Sprintf("List distinct %s with their game counts", field.Plural()),
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
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
}

func printer(cmd *cobra.Command, app appcontext.Interface) *output.Printer {
	return output.NewPrinter(cmd.OutOrStdout(), output.Format(app.OutputFormat()), app.Separator())
}
