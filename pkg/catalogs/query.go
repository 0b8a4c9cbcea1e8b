package catalogs

import (
	"fmt"
	"strings"
	"time"

	"github.com/agentstation/gamecat/pkg/errors"
)

// Constraint requires a field to equal a value exactly.
type Constraint struct {
	Field Field
	Value string
}

// Matches reports whether g satisfies the constraint.
func (c Constraint) Matches(g Game) bool {
	return c.Field.Value(g) == c.Value
}

// String renders the constraint as field=value.
func (c Constraint) String() string {
	return fmt.Sprintf("%s=%s", c.Field, c.Value)
}

func matchesAll(g Game, constraints []Constraint) bool {
	for _, c := range constraints {
		if !c.Matches(g) {
			return false
		}
	}
	return true
}

func describe(constraints []Constraint) string {
	parts := make([]string, len(constraints))
	for i, c := range constraints {
		parts[i] = c.String()
	}
	return strings.Join(parts, ", ")
}

// filter returns the games for which keep is true, in catalog order.
func (c *Catalog) filter(keep func(Game) bool) []Game {
	games := make([]Game, 0)
	for _, g := range c.games {
		if keep(g) {
			games = append(games, g)
		}
	}
	return games
}

// ByField returns the games whose field equals value exactly.
func (c *Catalog) ByField(field Field, value string) []Game {
	return c.filter(func(g Game) bool {
		return field.Value(g) == value
	})
}

// ByDeveloper returns the games made by developer.
func (c *Catalog) ByDeveloper(developer string) []Game {
	return c.ByField(FieldDeveloper, developer)
}

// ByProducer returns the games published by producer.
func (c *Catalog) ByProducer(producer string) []Game {
	return c.ByField(FieldProducer, producer)
}

// ByGenre returns the games of genre.
func (c *Catalog) ByGenre(genre string) []Game {
	return c.ByField(FieldGenre, genre)
}

// ByPlatform returns the games released on platform.
func (c *Catalog) ByPlatform(platform string) []Game {
	return c.ByField(FieldPlatform, platform)
}

// Where returns the games matching every constraint. With no constraints
// it returns all games.
func (c *Catalog) Where(constraints ...Constraint) []Game {
	return c.filter(func(g Game) bool {
		return matchesAll(g, constraints)
	})
}

// ByReleaseMonth returns the games released in month.
func (c *Catalog) ByReleaseMonth(month time.Month) ([]Game, error) {
	if month < time.January || month > time.December {
		return nil, &errors.ValidationError{
			Field:   "month",
			Value:   int(month),
			Message: "must be between 1 and 12",
		}
	}

	return c.filter(func(g Game) bool {
		return g.released.Month() == month
	}), nil
}

// ReleasedAfter returns the games released in a year strictly greater
// than year.
func (c *Catalog) ReleasedAfter(year int) []Game {
	return c.filter(func(g Game) bool {
		return g.released.Year() > year
	})
}

// DistinctValues returns each distinct value of field once, in the order
// it was first seen.
func (c *Catalog) DistinctValues(field Field) []string {
	seen := make(map[string]struct{})
	values := make([]string, 0)
	for _, g := range c.games {
		v := field.Value(g)
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		values = append(values, v)
	}
	return values
}
