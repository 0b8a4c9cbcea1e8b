// Package catalogs holds an in-memory catalog of games loaded from a
// delimited file and answers queries over it.
//
// A Catalog keeps games in the order they were added. Every query is a
// read that returns freshly allocated results, so callers may keep or
// modify what they get back without affecting the catalog:
//
//	cat, _, err := catalogs.Load("games.csv", ',')
//	if err != nil {
//		return err
//	}
//	oldest, err := cat.Oldest(
//		catalogs.Constraint{Field: catalogs.FieldPlatform, Value: "Microsoft Windows"},
//	)
//
// Queries that have no answer return errors from pkg/errors:
// NotFoundError when nothing matches and EmptyCatalogError for
// aggregates over zero games.
package catalogs

// Catalog is an ordered list of games. It is owned by one session and is
// not safe for concurrent use.
type Catalog struct {
	games []Game
}

// New creates a catalog holding games in the given order.
func New(games ...Game) *Catalog {
	c := &Catalog{}
	c.games = append(c.games, games...)
	return c
}

// Add appends games to the end of the catalog.
func (c *Catalog) Add(games ...Game) {
	c.games = append(c.games, games...)
}

// AddRecords builds a game from each raw record and appends it.
// Records with the wrong number of fields are skipped.
func (c *Catalog) AddRecords(records [][]string) (added, skipped int) {
	for _, record := range records {
		game, err := NewGame(record)
		if err != nil {
			skipped++
			continue
		}
		c.games = append(c.games, game)
		added++
	}
	return added, skipped
}

// Clear removes every game.
func (c *Catalog) Clear() {
	c.games = nil
}

// Len returns the number of games.
func (c *Catalog) Len() int {
	return len(c.games)
}

// IsEmpty reports whether the catalog has no games.
func (c *Catalog) IsEmpty() bool {
	return len(c.games) == 0
}

// Games returns a copy of all games in insertion order.
func (c *Catalog) Games() []Game {
	games := make([]Game, len(c.games))
	copy(games, c.games)
	return games
}
