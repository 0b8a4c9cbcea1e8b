// Package app provides the application context and dependency management
// for the gamecat CLI. It centralizes configuration, logging and the
// lazily loaded catalog, and hands them to commands through
// appcontext.Interface.
package app

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/agentstation/gamecat/internal/appcontext"
	"github.com/agentstation/gamecat/internal/catalogs/persistence"
	"github.com/agentstation/gamecat/internal/embedded"
	"github.com/agentstation/gamecat/pkg/catalogs"
	"github.com/agentstation/gamecat/pkg/constants"
	"github.com/agentstation/gamecat/pkg/errors"
	"github.com/agentstation/gamecat/pkg/logging"
)

// App represents the gamecat application with all its dependencies.
type App struct {
	// Version information
	version string
	commit  string
	date    string
	builtBy string

	// Configuration
	config *Config

	// Logger
	logger *zerolog.Logger

	// Catalog loaded on first use
	catalog *catalogs.Catalog
}

// Ensure App implements appcontext.Interface at compile time.
var _ appcontext.Interface = (*App)(nil)

// New creates a new App instance with the given version information.
// The app is initialized from LoadConfig and can be customized using
// functional options.
func New(version, commit, date, builtBy string, opts ...Option) (*App, error) {
	app := &App{
		version: version,
		commit:  commit,
		date:    date,
		builtBy: builtBy,
	}

	config, err := LoadConfig("")
	if err != nil {
		return nil, err
	}
	app.config = config

	logger := NewLogger(config)
	app.logger = &logger

	for _, opt := range opts {
		if err := opt(app); err != nil {
			return nil, err
		}
	}

	return app, nil
}

// Version returns the version information.
func (a *App) Version() string {
	return a.version
}

// Commit returns the git commit hash.
func (a *App) Commit() string {
	return a.commit
}

// Date returns the build date.
func (a *App) Date() string {
	return a.date
}

// BuiltBy returns the build system identifier.
func (a *App) BuiltBy() string {
	return a.builtBy
}

// Config returns the application configuration.
func (a *App) Config() *Config {
	return a.config
}

// Logger returns the application logger.
func (a *App) Logger() *zerolog.Logger {
	return a.logger
}

// OutputFormat returns the configured output format.
func (a *App) OutputFormat() string {
	return a.config.Format
}

// NoColor reports whether colored output is disabled.
func (a *App) NoColor() bool {
	return a.config.NoColor
}

// Quiet reports whether -q was given.
func (a *App) Quiet() bool {
	return a.config.Quiet
}

// Separator returns the configured field separator, or a comma when unset.
func (a *App) Separator() rune {
	if a.config.Separator == "" {
		return constants.DefaultSeparator
	}
	return a.config.SeparatorRune()
}

// Presets returns the configured menu defaults.
func (a *App) Presets() appcontext.Presets {
	return a.config.Presets
}

// Catalog returns the configured catalog, loading it on first use from the
// configured file, or from the embedded sample when --sample is set or no
// file is configured.
func (a *App) Catalog() (*catalogs.Catalog, error) {
	if a.catalog != nil {
		return a.catalog, nil
	}

	var (
		c   *catalogs.Catalog
		err error
	)
	if a.config.Sample || a.config.File == "" {
		c, err = a.loadSample()
	} else {
		c, _, err = a.LoadCatalog(logging.WithLogger(context.Background(), a.logger), a.config.File)
	}
	if err != nil {
		return nil, err
	}

	a.catalog = c
	return c, nil
}

// LoadCatalog reads a games file (.csv, or any export format) with the
// configured separator, logging to the logger carried by ctx.
func (a *App) LoadCatalog(ctx context.Context, path string) (*catalogs.Catalog, catalogs.LoadResult, error) {
	sep := a.Separator()
	ctx = logging.WithFile(ctx, path)
	logger := logging.Ctx(ctx).With().Str("separator", string(sep)).Logger()

	c, result, err := persistence.Load(path, sep)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load games file")
		return nil, result, err
	}

	logLoad(&logger, result)
	return c, result, nil
}

func (a *App) loadSample() (*catalogs.Catalog, error) {
	logger := logging.Ctx(logging.WithFile(logging.WithLogger(context.Background(), a.logger), "embedded:"+embedded.SamplePath))

	r, err := embedded.OpenSample()
	if err != nil {
		return nil, errors.WrapIO("open", embedded.SamplePath, err)
	}
	defer func() { _ = r.Close() }()

	c, result, err := catalogs.Read(r, constants.DefaultSeparator)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to read embedded sample")
		return nil, err
	}

	logLoad(logger, result)
	return c, nil
}

func logLoad(logger *zerolog.Logger, result catalogs.LoadResult) {
	event := logger.Debug()
	if result.DroppedLines > 0 {
		event = logger.Info()
	}
	event.
		Int("kept", result.Kept).
		Int("dropped", result.DroppedLines).
		Msg("Loaded games")
}

// Option is a functional option for configuring the App.
type Option func(*App) error

// WithConfig sets a custom configuration.
func WithConfig(config *Config) Option {
	return func(a *App) error {
		a.config = config
		return nil
	}
}

// WithLogger sets a custom logger.
func WithLogger(logger *zerolog.Logger) Option {
	return func(a *App) error {
		a.logger = logger
		return nil
	}
}

// WithCatalog sets a preloaded catalog (useful for testing).
func WithCatalog(c *catalogs.Catalog) Option {
	return func(a *App) error {
		a.catalog = c
		return nil
	}
}
