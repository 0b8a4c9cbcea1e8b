// Package table provides common table formatting utilities for CLI commands.
package table

import (
	"strconv"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/agentstation/gamecat/pkg/catalogs"
)

// Align represents column alignment in tables.
type Align int

const (
	// AlignDefault uses the default alignment (skip).
	AlignDefault Align = iota
	// AlignLeft aligns content to the left.
	AlignLeft
	// AlignCenter centers content.
	AlignCenter
	// AlignRight aligns content to the right.
	AlignRight
)

// Data represents table formatting data to avoid import cycles.
type Data struct {
	Headers         []string
	Rows            [][]string
	ColumnAlignment []Align // Optional: column alignment
}

// GamesToTableData converts games to table format. Wide output adds the
// raw release date text and the parsed year.
func GamesToTableData(games []catalogs.Game, wide bool) Data {
	headers := []string{"Name", "Developer", "Producer", "Genre", "Platform", "Released"}
	if wide {
		headers = append(headers, "Date Released", "Year")
	}

	rows := make([][]string, 0, len(games))
	for _, g := range games {
		row := []string{
			g.Name(),
			g.Developer(),
			g.Producer(),
			g.Genre(),
			g.Platform(),
			g.ReleaseDate().Display(),
		}
		if wide {
			row = append(row, dash(g.RawReleaseDate()), strconv.Itoa(g.ReleaseDate().Year()))
		}
		rows = append(rows, row)
	}

	data := Data{Headers: headers, Rows: rows}
	if wide {
		data.ColumnAlignment = []Align{
			AlignLeft, AlignLeft, AlignLeft, AlignLeft, AlignLeft, AlignLeft, AlignLeft, AlignRight,
		}
	}
	return data
}

// GameDetails renders a single game as property/value rows.
func GameDetails(g catalogs.Game) Data {
	return Data{
		Headers: []string{"Property", "Value"},
		Rows: [][]string{
			{"Name", g.Name()},
			{"Developer", g.Developer()},
			{"Producer", g.Producer()},
			{"Genre", g.Genre()},
			{"Platform", g.Platform()},
			{"Released", g.ReleaseDate().Display()},
			{"Date Released", dash(g.RawReleaseDate())},
		},
	}
}

// CountsToTableData converts per-group counts to a two column table headed
// by the grouping field.
func CountsToTableData(counts []catalogs.GroupCount, field catalogs.Field) Data {
	rows := make([][]string, 0, len(counts))
	for _, c := range counts {
		rows = append(rows, []string{c.Value, strconv.Itoa(c.Count)})
	}
	return Data{
		Headers:         []string{cases.Title(language.English).String(field.String()), "Games"},
		Rows:            rows,
		ColumnAlignment: []Align{AlignLeft, AlignRight},
	}
}

func dash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
