// Package constants provides shared constants for CLI commands.
package constants

// Output format names accepted by --format.
const (
	// FormatTable is the default table output format.
	FormatTable = "table"

	// FormatWide is a table with the raw release date text added.
	FormatWide = "wide"

	// FormatJSON outputs data as JSON.
	FormatJSON = "json"

	// FormatYAML outputs data as YAML.
	FormatYAML = "yaml"

	// FormatCSV re-encodes rows with the record tokenizer.
	FormatCSV = "csv"
)

// Interactive shell commands. Numbered commands keep the numbering of the
// classic menu; each also has a word alias.
const (
	ShellHelp      = "help"
	ShellClear     = "clear"
	ShellLoad      = "1"
	ShellDeveloper = "2"
	ShellExport    = "2.1"
	ShellMonth     = "3"
	ShellProducers = "4.1"
	ShellOldest    = "4.2"
	ShellGenres    = "4.3"
	ShellFewest    = "4.4"
	ShellExit      = "5"
)
