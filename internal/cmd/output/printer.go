package output

import (
	"io"

	"github.com/agentstation/gamecat/internal/cmd/table"
	"github.com/agentstation/gamecat/pkg/catalogs"
	"github.com/agentstation/gamecat/pkg/constants"
)

// Printer renders command results in a single output format.
type Printer struct {
	w         io.Writer
	format    Format
	separator rune
}

// NewPrinter creates a printer. An empty format is detected from w.
func NewPrinter(w io.Writer, format Format, separator rune) *Printer {
	if format == "" {
		format = DetectFormat("", w)
	}
	if separator == 0 {
		separator = constants.DefaultSeparator
	}
	return &Printer{w: w, format: format, separator: separator}
}

// Format returns the output format in use.
func (p *Printer) Format() Format {
	return p.format
}

func (p *Printer) formatter() Formatter {
	if p.format == FormatCSV {
		return &CSVFormatter{Separator: p.separator}
	}
	return NewFormatter(p.format)
}

func (p *Printer) isTable() bool {
	return p.format == FormatTable || p.format == FormatWide
}

// Games prints a list of games.
func (p *Printer) Games(games []catalogs.Game) error {
	if games == nil {
		games = []catalogs.Game{}
	}

	var data any = games
	if p.isTable() {
		data = FromTable(table.GamesToTableData(games, p.format == FormatWide))
	}
	return p.formatter().Format(p.w, data)
}

// Game prints a single game.
func (p *Printer) Game(g catalogs.Game) error {
	switch {
	case p.isTable():
		return p.formatter().Format(p.w, FromTable(table.GameDetails(g)))
	case p.format == FormatCSV:
		return p.formatter().Format(p.w, []catalogs.Game{g})
	default:
		return p.formatter().Format(p.w, g)
	}
}

// Counts prints per-group game counts.
func (p *Printer) Counts(counts []catalogs.GroupCount, field catalogs.Field) error {
	if counts == nil {
		counts = []catalogs.GroupCount{}
	}

	var data any = counts
	if p.isTable() || p.format == FormatCSV {
		data = FromTable(table.CountsToTableData(counts, field))
	}
	return p.formatter().Format(p.w, data)
}

// Any prints arbitrary data. Structs render as property/value tables.
func (p *Printer) Any(data any) error {
	return p.formatter().Format(p.w, data)
}
