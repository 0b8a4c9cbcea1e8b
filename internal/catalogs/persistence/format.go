// Package persistence writes derived game subsets to disk in the formats
// the export command supports and reads them back.
package persistence

import (
	"path/filepath"
	"strings"

	"github.com/agentstation/gamecat/pkg/constants"
	"github.com/agentstation/gamecat/pkg/errors"
)

// Format is an export file format.
type Format string

// Supported export formats.
const (
	FormatCSV     Format = "csv"
	FormatJSON    Format = "json"
	FormatYAML    Format = "yaml"
	FormatParquet Format = "parquet"
)

// Formats lists every supported format.
var Formats = []Format{FormatCSV, FormatJSON, FormatYAML, FormatParquet}

// ParseFormat parses a format name. "yml" is an alias for yaml.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "csv":
		return FormatCSV, nil
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	case "parquet":
		return FormatParquet, nil
	default:
		return "", &errors.ValidationError{
			Field:   "format",
			Value:   s,
			Message: "must be one of csv, json, yaml, parquet",
		}
	}
}

// FormatFromPath infers the format from a file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case constants.CSVExtension:
		return FormatCSV, nil
	case constants.JSONExtension:
		return FormatJSON, nil
	case constants.YAMLExtension, constants.YMLExtension:
		return FormatYAML, nil
	case constants.ParquetExtension:
		return FormatParquet, nil
	default:
		return "", errors.NewFormatError(path, "csv, json, yaml or parquet")
	}
}

// Extensions returns the file extensions accepted for f.
func (f Format) Extensions() []string {
	switch f {
	case FormatCSV:
		return []string{constants.CSVExtension}
	case FormatJSON:
		return []string{constants.JSONExtension}
	case FormatYAML:
		return []string{constants.YAMLExtension, constants.YMLExtension}
	case FormatParquet:
		return []string{constants.ParquetExtension}
	default:
		return nil
	}
}

// CheckPath returns a FormatError unless path has an extension of f.
func (f Format) CheckPath(path string) error {
	ext := filepath.Ext(path)
	for _, allowed := range f.Extensions() {
		if ext == allowed {
			return nil
		}
	}
	return errors.NewFormatError(path, strings.Join(f.Extensions(), " or "))
}
