// Package export implements the export command.
package export

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/agentstation/gamecat/internal/appcontext"
	"github.com/agentstation/gamecat/internal/catalogs/persistence"
	"github.com/agentstation/gamecat/internal/cmd/alerts"
	"github.com/agentstation/gamecat/internal/cmd/globals"
	"github.com/agentstation/gamecat/internal/cmd/output"
	"github.com/agentstation/gamecat/pkg/logging"
)

// NewCommand creates the export command with app dependencies.
func NewCommand(app appcontext.Interface) *cobra.Command {
	var (
		out      string
		fileType string
		preset   bool
	)

	cmd := &cobra.Command{
		Use:     "export",
		GroupID: "core",
		Short:   "Write a subset of games to a file",
		Long: `Export writes the selected games to a file with the canonical header
Name, Developer, Producer, Genre, Operating System, Date Released.

The file type is taken from --type or inferred from the extension of --out
(.csv, .json, .yaml/.yml, .parquet). A mismatched extension is rejected
before anything is written. CSV output keeps the original date text.`,
		Example: `  gamecat export --preset                           # Maxis games to Developer_Maxis.csv
  gamecat export --developer Valve --out valve.csv
  gamecat export --month 12 --out december.parquet
  gamecat export --genre "God game" --out gods.json --type json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, err := app.Catalog()
			if err != nil {
				return err
			}

			f := globals.ParseGames(cmd).Filter()
			presets := app.Presets()
			if preset && f.Developer == "" {
				f.Developer = presets.Developer
			}
			if out == "" {
				out = presets.ExportPath
			}

			games, err := f.Apply(c)
			if err != nil {
				return err
			}

			opts := []persistence.Option{persistence.WithSeparator(app.Separator())}
			if fileType != "" {
				format, err := persistence.ParseFormat(fileType)
				if err != nil {
					return err
				}
				opts = append(opts, persistence.WithFormat(format))
			}

			if err := persistence.Export(out, games, opts...); err != nil {
				return err
			}

			logging.Ctx(cmd.Context()).Debug().Str("file", out).Int("games", len(games)).Msg("Exported games")

			fw := alerts.NewFormatWriter(cmd.ErrOrStderr(), output.Format(app.OutputFormat()))
			if app.NoColor() {
				fw.WithColor(false)
			}

			var w alerts.Writer = fw
			if app.Quiet() {
				w = alerts.Quiet(w)
			}
			return w.WriteAlert(alerts.NewSuccess(fmt.Sprintf("Exported %d games to %s", len(games), out)))
		},
	}

	globals.AddGameFlags(cmd)
	cmd.Flags().StringVar(&out, "out", "", "destination file (default from export_path)")
	cmd.Flags().StringVar(&fileType, "type", "", "file type: csv, json, yaml, parquet (default from extension)")
	cmd.Flags().BoolVar(&preset, "preset", false, "select games by the configured developer")

	return cmd
}
