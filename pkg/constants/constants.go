// Package constants provides shared constants used throughout the gamecat codebase.
// This includes file formats, default query values, and file permissions
// that should be consistent across the core packages and the CLI.
package constants

// File format constants
const (
	// CSVExtension is the only extension accepted by table load and write
	CSVExtension = ".csv"

	// JSONExtension is required for JSON exports
	JSONExtension = ".json"

	// YAMLExtension is required for YAML exports (YMLExtension is also accepted)
	YAMLExtension = ".yaml"

	// YMLExtension is the short form of YAMLExtension
	YMLExtension = ".yml"

	// ParquetExtension is required for Parquet exports
	ParquetExtension = ".parquet"

	// DefaultSeparator separates fields within one record line
	DefaultSeparator = ','

	// QuoteBorder toggles quoted mode while tokenizing and is stripped from fields
	QuoteBorder = '"'
)

// Game table constants
const (
	// GameColumns is the fixed record arity of a games table
	GameColumns = 6
)

// Release date defaults, applied when a date text carries no usable token
const (
	// DefaultReleaseYear is used when no year in [MinReleaseYear, MaxReleaseYear] is found
	DefaultReleaseYear = 2000

	// DefaultReleaseMonth is used when no month name is found (January)
	DefaultReleaseMonth = 1

	// MinReleaseYear is the smallest year recognized in date text
	MinReleaseYear = 1900

	// MaxReleaseYear is the largest year recognized in date text
	MaxReleaseYear = 2100
)

// Query preset defaults taken from the interactive menu
const (
	// DefaultDeveloper is the developer preset for the developer listing
	DefaultDeveloper = "Maxis"

	// DefaultMonth is the month preset for the release-month listing (December)
	DefaultMonth = 12

	// DefaultPlatform is the platform preset for the oldest-game lookup
	DefaultPlatform = "Microsoft Windows"

	// DefaultGenre is the genre preset for the oldest-game lookup
	DefaultGenre = "First-person shooter"

	// DefaultExportPath is where the developer preset subset is exported
	DefaultExportPath = "Developer_Maxis.csv"
)

// File permission constants define standard Unix file permissions
const (
	// DirPermissions is the default permission for created directories (rwxr-xr-x)
	DirPermissions = 0755

	// FilePermissions is the default permission for created files (rw-r--r--)
	FilePermissions = 0644
)
