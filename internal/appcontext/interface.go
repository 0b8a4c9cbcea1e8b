// Package appcontext provides the shared application context interface
// used by all commands. Commands accept this interface rather than the
// concrete App type so they can be tested against Mock.
package appcontext

import (
	"context"
	"time"

	"github.com/agentstation/gamecat/pkg/catalogs"
	"github.com/agentstation/gamecat/pkg/constants"
)

// Interface defines the application context interface that commands need.
// The App struct from cmd/gamecat/app implements it.
type Interface interface {
	// Catalog returns the catalog loaded from the configured input, loading
	// it on first use. The same instance is returned on later calls.
	Catalog() (*catalogs.Catalog, error)

	// LoadCatalog reads a games file with the configured separator and logs
	// the load statistics to the context logger. It does not replace the
	// configured catalog.
	LoadCatalog(ctx context.Context, path string) (*catalogs.Catalog, catalogs.LoadResult, error)

	// Separator returns the configured field separator.
	Separator() rune

	// Presets returns the query defaults used by the shell and stats commands.
	Presets() Presets

	// OutputFormat returns the configured output format (table, json, yaml, csv, wide).
	// An empty string means detect from the destination.
	OutputFormat() string

	// NoColor reports whether colored output is disabled.
	NoColor() bool

	// Quiet reports whether only warnings and errors should be shown.
	Quiet() bool

	// Version returns the application version string.
	Version() string

	// Commit returns the git commit hash.
	Commit() string

	// Date returns the build date.
	Date() string

	// BuiltBy returns the build system identifier.
	BuiltBy() string
}

// Presets are the query defaults of the classic menu.
type Presets struct {
	Developer  string     `json:"developer" yaml:"developer"`
	Month      time.Month `json:"month" yaml:"month"`
	Platform   string     `json:"platform" yaml:"platform"`
	Genre      string     `json:"genre" yaml:"genre"`
	ExportPath string     `json:"export_path" yaml:"export_path"`
}

// DefaultPresets returns Maxis, December, Microsoft Windows, first-person
// shooters and Developer_Maxis.csv.
func DefaultPresets() Presets {
	return Presets{
		Developer:  constants.DefaultDeveloper,
		Month:      time.Month(constants.DefaultMonth),
		Platform:   constants.DefaultPlatform,
		Genre:      constants.DefaultGenre,
		ExportPath: constants.DefaultExportPath,
	}
}
