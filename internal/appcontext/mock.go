package appcontext

import (
	"context"

	"github.com/agentstation/gamecat/pkg/catalogs"
	"github.com/agentstation/gamecat/pkg/constants"
)

// Mock provides a mock implementation of Interface for testing.
// Each method can be customized by setting the corresponding function field.
// If a function field is nil, the method returns a default value.
type Mock struct {
	CatalogFunc      func() (*catalogs.Catalog, error)
	LoadCatalogFunc  func(ctx context.Context, path string) (*catalogs.Catalog, catalogs.LoadResult, error)
	SeparatorFunc    func() rune
	PresetsFunc      func() Presets
	OutputFormatFunc func() string
	NoColorFunc      func() bool
	QuietFunc        func() bool
	VersionFunc      func() string
	CommitFunc       func() string
	DateFunc         func() string
	BuiltByFunc      func() string
}

// Catalog returns a catalog using the mock function or an empty catalog.
func (m *Mock) Catalog() (*catalogs.Catalog, error) {
	if m.CatalogFunc != nil {
		return m.CatalogFunc()
	}
	return catalogs.New(), nil
}

// LoadCatalog uses the mock function or reads path from disk.
func (m *Mock) LoadCatalog(ctx context.Context, path string) (*catalogs.Catalog, catalogs.LoadResult, error) {
	if m.LoadCatalogFunc != nil {
		return m.LoadCatalogFunc(ctx, path)
	}
	return catalogs.Load(path, m.Separator())
}

// Separator returns the separator using the mock function or a comma.
func (m *Mock) Separator() rune {
	if m.SeparatorFunc != nil {
		return m.SeparatorFunc()
	}
	return constants.DefaultSeparator
}

// Presets returns presets using the mock function or DefaultPresets.
func (m *Mock) Presets() Presets {
	if m.PresetsFunc != nil {
		return m.PresetsFunc()
	}
	return DefaultPresets()
}

// OutputFormat returns the format using the mock function or "table".
func (m *Mock) OutputFormat() string {
	if m.OutputFormatFunc != nil {
		return m.OutputFormatFunc()
	}
	return "table"
}

// NoColor uses the mock function or returns true.
func (m *Mock) NoColor() bool {
	if m.NoColorFunc != nil {
		return m.NoColorFunc()
	}
	return true
}

// Quiet uses the mock function or returns false.
func (m *Mock) Quiet() bool {
	if m.QuietFunc != nil {
		return m.QuietFunc()
	}
	return false
}

// Version returns version using the mock function or "dev".
func (m *Mock) Version() string {
	if m.VersionFunc != nil {
		return m.VersionFunc()
	}
	return "dev"
}

// Commit returns commit using the mock function or "unknown".
func (m *Mock) Commit() string {
	if m.CommitFunc != nil {
		return m.CommitFunc()
	}
	return "unknown"
}

// Date returns date using the mock function or "unknown".
func (m *Mock) Date() string {
	if m.DateFunc != nil {
		return m.DateFunc()
	}
	return "unknown"
}

// BuiltBy returns builtBy using the mock function or "test".
func (m *Mock) BuiltBy() string {
	if m.BuiltByFunc != nil {
		return m.BuiltByFunc()
	}
	return "test"
}

// Ensure Mock implements Interface at compile time.
var _ Interface = (*Mock)(nil)
