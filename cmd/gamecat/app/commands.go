package app

import (
	"runtime"

	"github.com/spf13/cobra"

	"github.com/agentstation/gamecat/cmd/gamecat/cmd/export"
	"github.com/agentstation/gamecat/cmd/gamecat/cmd/list"
	"github.com/agentstation/gamecat/cmd/gamecat/cmd/shell"
	"github.com/agentstation/gamecat/cmd/gamecat/cmd/stats"
	"github.com/agentstation/gamecat/internal/cmd/output"
)

// NewListCommand creates the list command with app dependencies.
func (a *App) NewListCommand() *cobra.Command {
	return list.NewCommand(a)
}

// NewStatsCommand creates the stats command with app dependencies.
func (a *App) NewStatsCommand() *cobra.Command {
	return stats.NewCommand(a)
}

// NewExportCommand creates the export command with app dependencies.
func (a *App) NewExportCommand() *cobra.Command {
	return export.NewCommand(a)
}

// NewShellCommand creates the interactive shell command with app dependencies.
func (a *App) NewShellCommand() *cobra.Command {
	return shell.NewCommand(a)
}

// versionInfo is the payload of the version command.
type versionInfo struct {
	Version   string `json:"version" yaml:"version"`
	Commit    string `json:"commit" yaml:"commit"`
	Built     string `json:"built" yaml:"built"`
	BuiltBy   string `json:"built_by" yaml:"built_by"`
	GoVersion string `json:"go_version" yaml:"go_version"`
	Platform  string `json:"platform" yaml:"platform"`
}

// NewVersionCommand creates the version command.
func (a *App) NewVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "version",
		GroupID: "management",
		Short:   "Show version information",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			info := versionInfo{
				Version:   a.version,
				Commit:    a.commit,
				Built:     a.date,
				BuiltBy:   a.builtBy,
				GoVersion: runtime.Version(),
				Platform:  runtime.GOOS + "/" + runtime.GOARCH,
			}
			return a.printer(cmd).Any(info)
		},
	}
}

// configInfo is the payload of the config command.
type configInfo struct {
	ConfigFile string `json:"config_file" yaml:"config_file"`
	File       string `json:"file" yaml:"file"`
	Sample     bool   `json:"sample" yaml:"sample"`
	Separator  string `json:"separator" yaml:"separator"`
	Columns    int    `json:"columns" yaml:"columns"`
	Developer  string `json:"developer" yaml:"developer"`
	Month      string `json:"month" yaml:"month"`
	Platform   string `json:"platform" yaml:"platform"`
	Genre      string `json:"genre" yaml:"genre"`
	ExportPath string `json:"export_path" yaml:"export_path"`
}

// NewConfigCommand creates the config command that prints the effective
// configuration after files, environment and flags are applied.
func (a *App) NewConfigCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "config",
		GroupID: "management",
		Short:   "Show the effective configuration",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c := a.config
			info := configInfo{
				ConfigFile: dash(c.ConfigFile),
				File:       dash(c.File),
				Sample:     c.Sample || c.File == "",
				Separator:  c.Separator,
				Columns:    c.Columns,
				Developer:  c.Presets.Developer,
				Month:      c.Presets.Month.String(),
				Platform:   c.Presets.Platform,
				Genre:      c.Presets.Genre,
				ExportPath: c.Presets.ExportPath,
			}
			return a.printer(cmd).Any(info)
		},
	}
}

func (a *App) printer(cmd *cobra.Command) *output.Printer {
	return output.NewPrinter(cmd.OutOrStdout(), output.Format(a.OutputFormat()), a.Separator())
}

func dash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
