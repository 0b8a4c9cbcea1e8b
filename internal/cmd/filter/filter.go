// Package filter narrows catalog queries from command-line flags.
package filter

import (
	"strings"

	"github.com/agentstation/gamecat/pkg/catalogs"
)

// GameFilter selects games. Field values match exactly; Search matches a
// case-insensitive substring of the name.
type GameFilter struct {
	Developer string
	Producer  string
	Genre     string
	Platform  string
	Month     string // number, name or three-letter abbreviation
	After     *int   // release year, exclusive; nil when unset
	Search    string
	Limit     int
}

// Constraints returns the exact-match field constraints of the filter.
func (f *GameFilter) Constraints() []catalogs.Constraint {
	if f == nil {
		return nil
	}

	var constraints []catalogs.Constraint
	add := func(field catalogs.Field, value string) {
		if value != "" {
			constraints = append(constraints, catalogs.Constraint{Field: field, Value: value})
		}
	}
	add(catalogs.FieldDeveloper, f.Developer)
	add(catalogs.FieldProducer, f.Producer)
	add(catalogs.FieldGenre, f.Genre)
	add(catalogs.FieldPlatform, f.Platform)
	return constraints
}

// Apply runs the filter against a catalog, keeping catalog order.
func (f *GameFilter) Apply(c *catalogs.Catalog) ([]catalogs.Game, error) {
	if f == nil || f.isEmpty() {
		return c.Games(), nil
	}

	games := c.Where(f.Constraints()...)

	if f.Month != "" {
		month, err := catalogs.ParseMonth(f.Month)
		if err != nil {
			return nil, err
		}
		if games, err = catalogs.New(games...).ByReleaseMonth(month); err != nil {
			return nil, err
		}
	}

	if f.After != nil {
		games = catalogs.New(games...).ReleasedAfter(*f.After)
	}

	if f.Search != "" {
		games = search(games, f.Search)
	}

	if f.Limit > 0 && len(games) > f.Limit {
		games = games[:f.Limit]
	}
	return games, nil
}

// Oldest returns the earliest game passing the filter. Field values are
// passed as constraints so a miss names them.
func (f *GameFilter) Oldest(c *catalogs.Catalog) (catalogs.Game, error) {
	sub, constraints, err := f.split(c)
	if err != nil {
		return catalogs.Game{}, err
	}
	return sub.Oldest(constraints...)
}

// Newest returns the latest game passing the filter.
func (f *GameFilter) Newest(c *catalogs.Catalog) (catalogs.Game, error) {
	sub, constraints, err := f.split(c)
	if err != nil {
		return catalogs.Game{}, err
	}
	return sub.Newest(constraints...)
}

// split applies everything except the field constraints and the limit,
// returning the narrowed catalog and the constraints left to apply.
func (f *GameFilter) split(c *catalogs.Catalog) (*catalogs.Catalog, []catalogs.Constraint, error) {
	if f == nil {
		return c, nil, nil
	}

	rest := GameFilter{Month: f.Month, After: f.After, Search: f.Search}
	games, err := rest.Apply(c)
	if err != nil {
		return nil, nil, err
	}
	return catalogs.New(games...), f.Constraints(), nil
}

func (f *GameFilter) isEmpty() bool {
	return len(f.Constraints()) == 0 &&
		f.Month == "" &&
		f.After == nil &&
		f.Search == "" &&
		f.Limit == 0
}

func search(games []catalogs.Game, term string) []catalogs.Game {
	term = strings.ToLower(term)
	matched := make([]catalogs.Game, 0, len(games))
	for _, g := range games {
		if strings.Contains(strings.ToLower(g.Name()), term) {
			matched = append(matched, g)
		}
	}
	return matched
}
