package app

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"github.com/agentstation/gamecat/pkg/logging"
)

// Execute runs the gamecat CLI application with the given arguments.
// This is the main entry point called from main.go.
func (a *App) Execute(ctx context.Context, args []string) error {
	rootCmd := a.createRootCommand()
	rootCmd.SetArgs(args)
	return rootCmd.ExecuteContext(ctx)
}

// createRootCommand creates the root cobra command with all subcommands.
func (a *App) createRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "gamecat",
		Short:   "Video game catalog CLI",
		Version: a.version,
		Long: `Gamecat loads a delimited file of video games (Name, Developer,
Producer, Genre, Operating System, Date Released) and answers questions
about it: games by developer or release month, per-producer and per-genre
counts, the oldest game for a platform and genre, and more.

Lines with the wrong number of fields are dropped while loading. Without
--file the embedded sample catalog is used.`,
		PersistentPreRunE: a.setupCommand,
		SilenceUsage:      true,
		SilenceErrors:     true,
	}

	rootCmd.AddGroup(&cobra.Group{
		ID:    "core",
		Title: "Core Commands:",
	})

	rootCmd.AddGroup(&cobra.Group{
		ID:    "management",
		Title: "Management Commands:",
	})

	// Defaults come from the loaded config; setupCommand only applies flags
	// the user changed.
	flags := rootCmd.PersistentFlags()
	flags.String("config", "", "config file (default is $HOME/.gamecat.yaml)")
	flags.StringP("file", "f", a.config.File, "games file to load (.csv)")
	flags.Bool("sample", a.config.Sample, "use the embedded sample catalog")
	flags.String("separator", a.config.Separator, "field separator, exactly one character")
	flags.BoolP("verbose", "v", a.config.Verbose, "verbose output (shortcut for --log-level=debug)")
	flags.BoolP("quiet", "q", a.config.Quiet, "minimal output (shortcut for --log-level=warn)")
	flags.Bool("no-color", a.config.NoColor, "disable colored output")
	flags.StringP("format", "o", a.config.Format, "output format: table, wide, json, yaml, csv")
	flags.String("log-level", a.config.LogLevel, "log level: trace, debug, info, warn, error (overrides -v/-q)")

	rootCmd.SetVersionTemplate("gamecat {{.Version}}\n")

	a.registerCommands(rootCmd)

	return rootCmd
}

// setupCommand is called before any command runs.
func (a *App) setupCommand(cmd *cobra.Command, _ []string) error {
	if path := mustGetString(cmd, "config"); path != "" {
		config, err := LoadConfig(path)
		if err != nil {
			return err
		}
		a.config = config
		a.catalog = nil
	}

	a.config.UpdateFromFlags(cmd)
	if err := a.config.Validate(); err != nil {
		return err
	}

	// Reinitialize logger with updated config
	logger := NewLogger(a.config)
	a.logger = &logger
	logging.SetDefault(logger)

	ctx := logging.WithLogger(cmd.Context(), a.logger)
	cmd.SetContext(logging.WithCommand(ctx, cmd.CommandPath()))

	return nil
}

// registerCommands registers all subcommands with the root command.
func (a *App) registerCommands(rootCmd *cobra.Command) {
	// Core commands
	rootCmd.AddCommand(a.NewListCommand())
	rootCmd.AddCommand(a.NewStatsCommand())
	rootCmd.AddCommand(a.NewExportCommand())
	rootCmd.AddCommand(a.NewShellCommand())

	// Management commands
	rootCmd.AddCommand(a.NewConfigCommand())
	rootCmd.AddCommand(a.NewVersionCommand())
}

// ExitOnError is a helper that prints an error and exits with status 1.
// This is meant to be used in main.go for top-level error handling.
func ExitOnError(err error) {
	if err != nil {
		_, _ = os.Stderr.WriteString("Error: " + err.Error() + "\n")
		os.Exit(1)
	}
}

// mustGetBool retrieves a boolean flag value or panics if the flag doesn't exist.
// This should only be used for flags defined in this package.
func mustGetBool(cmd *cobra.Command, name string) bool {
	val, err := cmd.Flags().GetBool(name)
	if err != nil {
		panic("programming error: failed to get flag " + name + ": " + err.Error())
	}
	return val
}

// mustGetString retrieves a string flag value or panics if the flag doesn't exist.
// This should only be used for flags defined in this package.
func mustGetString(cmd *cobra.Command, name string) string {
	val, err := cmd.Flags().GetString(name)
	if err != nil {
		panic("programming error: failed to get flag " + name + ": " + err.Error())
	}
	return val
}
