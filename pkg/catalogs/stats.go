package catalogs

import (
	"github.com/emirpasic/gods/maps/linkedhashmap"

	"github.com/agentstation/gamecat/pkg/errors"
)

// Better reports whether candidate should replace the current best.
// It must be strict so that equal games keep the earlier winner.
type Better func(candidate, best Game) bool

// Earlier prefers the game with the earlier release date.
func Earlier(candidate, best Game) bool {
	return candidate.released.Before(best.released)
}

// Later prefers the game with the later release date.
func Later(candidate, best Game) bool {
	return candidate.released.After(best.released)
}

// Extremal returns the best game among those matching every constraint.
// Ties go to the game added first. It returns a NotFoundError when no
// game matches.
func (c *Catalog) Extremal(better Better, constraints ...Constraint) (Game, error) {
	return c.extremal("game", better, constraints)
}

func (c *Catalog) extremal(resource string, better Better, constraints []Constraint) (Game, error) {
	var (
		best  Game
		found bool
	)

	for _, g := range c.games {
		if !matchesAll(g, constraints) {
			continue
		}
		if !found || better(g, best) {
			best = g
			found = true
		}
	}

	if !found {
		return Game{}, errors.NewNotFoundError(resource, describe(constraints))
	}
	return best, nil
}

// Oldest returns the earliest released game matching the constraints.
func (c *Catalog) Oldest(constraints ...Constraint) (Game, error) {
	return c.extremal("oldest game", Earlier, constraints)
}

// Newest returns the latest released game matching the constraints.
func (c *Catalog) Newest(constraints ...Constraint) (Game, error) {
	return c.extremal("newest game", Later, constraints)
}

// GroupCount is one entry of a GroupCounts mapping.
type GroupCount struct {
	Value string `json:"value" yaml:"value"`
	Count int    `json:"count" yaml:"count"`
}

// GroupCounts maps each distinct field value to its number of games.
// Iteration follows the order in which values were first seen.
type GroupCounts struct {
	field  Field
	counts *linkedhashmap.Map
}

// CountsBy groups games by field. It returns nil for an empty catalog.
func (c *Catalog) CountsBy(field Field) *GroupCounts {
	if len(c.games) == 0 {
		return nil
	}

	counts := linkedhashmap.New()
	for _, g := range c.games {
		key := field.Value(g)
		n := 0
		if v, found := counts.Get(key); found {
			n = v.(int)
		}
		counts.Put(key, n+1)
	}

	return &GroupCounts{field: field, counts: counts}
}

// Field returns the field the games were grouped by.
func (gc *GroupCounts) Field() Field {
	return gc.field
}

// Len returns the number of distinct values.
func (gc *GroupCounts) Len() int {
	return gc.counts.Size()
}

// Count returns the number of games with value, or zero.
func (gc *GroupCounts) Count(value string) int {
	if v, found := gc.counts.Get(value); found {
		return v.(int)
	}
	return 0
}

// Entries returns every value and count in first-seen order.
func (gc *GroupCounts) Entries() []GroupCount {
	entries := make([]GroupCount, 0, gc.counts.Size())
	it := gc.counts.Iterator()
	for it.Next() {
		entries = append(entries, GroupCount{
			Value: it.Key().(string),
			Count: it.Value().(int),
		})
	}
	return entries
}

// Fewest returns the value with the smallest count. Ties go to the value
// seen first.
func (gc *GroupCounts) Fewest() GroupCount {
	var fewest GroupCount
	for i, entry := range gc.Entries() {
		if i == 0 || entry.Count < fewest.Count {
			fewest = entry
		}
	}
	return fewest
}

// FewestBy returns the field value shared by the fewest games. It returns
// an EmptyCatalogError when the catalog has no games.
func (c *Catalog) FewestBy(field Field) (GroupCount, error) {
	counts := c.CountsBy(field)
	if counts == nil {
		return GroupCount{}, errors.NewEmptyCatalogError(field.String() + " with the fewest games")
	}
	return counts.Fewest(), nil
}

// ProducerWithFewestGames returns the producer with the fewest games,
// preferring the producer seen first on ties.
func (c *Catalog) ProducerWithFewestGames() (string, error) {
	fewest, err := c.FewestBy(FieldProducer)
	if err != nil {
		return "", err
	}
	return fewest.Value, nil
}

// AverageReleaseYear returns the mean release year using integer
// division. It returns an EmptyCatalogError when the catalog has no games.
func (c *Catalog) AverageReleaseYear() (int, error) {
	if len(c.games) == 0 {
		return 0, errors.NewEmptyCatalogError("average release year")
	}

	sum := 0
	for _, g := range c.games {
		sum += g.released.Year()
	}
	return sum / len(c.games), nil
}
