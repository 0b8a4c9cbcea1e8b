package catalogs

import (
	"io"

	"github.com/agentstation/gamecat/pkg/constants"
	"github.com/agentstation/gamecat/pkg/csvtable"
)

// LoadResult reports what happened while loading a games file.
type LoadResult struct {
	// Kept is the number of games added to the catalog.
	Kept int
	// DroppedLines is the number of lines with the wrong number of fields.
	DroppedLines int
}

// Load reads a games file into a new catalog. The first well-formed line
// is treated as the header.
func Load(path string, separator rune) (*Catalog, LoadResult, error) {
	table, err := csvtable.Load(path, separator, constants.GameColumns)
	if err != nil {
		return nil, LoadResult{}, err
	}

	c, result := FromTable(table)
	return c, result, nil
}

// Read parses games from r using the same rules as Load.
func Read(r io.Reader, separator rune) (*Catalog, LoadResult, error) {
	table, err := csvtable.Parse(r, separator, constants.GameColumns)
	if err != nil {
		return nil, LoadResult{}, err
	}

	c, result := FromTable(table)
	return c, result, nil
}

// FromTable builds a catalog from the records of a loaded table.
func FromTable(table *csvtable.Table) (*Catalog, LoadResult) {
	c := New()
	added, skipped := c.AddRecords(table.Records())
	return c, LoadResult{
		Kept:         added,
		DroppedLines: table.Skipped() + skipped,
	}
}

// ToTable builds a table with the canonical header holding one record per
// game, in order. Raw release date text is written back unchanged.
func ToTable(games []Game, separator rune) *csvtable.Table {
	table := csvtable.New(separator, constants.GameColumns, csvtable.WithHeader(Header()))
	for _, g := range games {
		// Record always has GameColumns fields.
		_ = table.AppendRecord(g.Record())
	}
	return table
}

// Export writes games to a .csv file with the canonical header.
func Export(path string, games []Game, separator rune) error {
	return ToTable(games, separator).Write(path)
}
