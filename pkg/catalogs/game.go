package catalogs

import (
	"encoding/json"
	"strings"

	"github.com/agentstation/gamecat/pkg/constants"
	"github.com/agentstation/gamecat/pkg/errors"
)

// header is the canonical column order of a games file.
var header = []string{"Name", "Developer", "Producer", "Genre", "Operating System", "Date Released"}

// Header returns the canonical header row of a games file.
func Header() []string {
	h := make([]string, len(header))
	copy(h, header)
	return h
}

// Game is one catalog entry. It is an immutable value: construct it with
// NewGame and read it through accessors.
type Game struct {
	name      string
	developer string
	producer  string
	genre     string
	platform  string
	rawDate   string
	released  ReleaseDate
}

// NewGame builds a game from a raw record in header order. The record
// must have exactly six fields. The date field is kept verbatim for
// re-export and parsed into a ReleaseDate for queries.
func NewGame(record []string) (Game, error) {
	if len(record) != constants.GameColumns {
		return Game{}, &errors.ValidationError{
			Field:   "record",
			Value:   len(record),
			Message: "a game needs exactly 6 fields",
		}
	}

	return Game{
		name:      record[0],
		developer: record[1],
		producer:  record[2],
		genre:     record[3],
		platform:  record[4],
		rawDate:   record[5],
		released:  ParseReleaseDate(record[5]),
	}, nil
}

// Name returns the game title.
func (g Game) Name() string { return g.name }

// Developer returns the studio that made the game.
func (g Game) Developer() string { return g.developer }

// Producer returns the publisher of the game.
func (g Game) Producer() string { return g.producer }

// Genre returns the game genre.
func (g Game) Genre() string { return g.genre }

// Platform returns the operating system the game was released on.
func (g Game) Platform() string { return g.platform }

// ReleaseDate returns the parsed release date.
func (g Game) ReleaseDate() ReleaseDate { return g.released }

// RawReleaseDate returns the release date text exactly as loaded.
func (g Game) RawReleaseDate() string { return g.rawDate }

// Record returns the six raw fields in header order. It is the inverse
// of NewGame.
func (g Game) Record() []string {
	return []string{g.name, g.developer, g.producer, g.genre, g.platform, g.rawDate}
}

// GameData is the serialized form of a Game.
type GameData struct {
	Name         string `json:"name" yaml:"name" parquet:"name"`
	Developer    string `json:"developer" yaml:"developer" parquet:"developer"`
	Producer     string `json:"producer" yaml:"producer" parquet:"producer"`
	Genre        string `json:"genre" yaml:"genre" parquet:"genre"`
	Platform     string `json:"platform" yaml:"platform" parquet:"platform"`
	ReleaseDate  string `json:"release_date" yaml:"release_date" parquet:"release_date"`
	ReleaseYear  int    `json:"release_year" yaml:"release_year" parquet:"release_year"`
	ReleaseMonth string `json:"release_month" yaml:"release_month" parquet:"release_month"`
}

// Data returns the serialized form of g.
func (g Game) Data() GameData {
	return GameData{
		Name:         g.name,
		Developer:    g.developer,
		Producer:     g.producer,
		Genre:        g.genre,
		Platform:     g.platform,
		ReleaseDate:  g.rawDate,
		ReleaseYear:  g.released.Year(),
		ReleaseMonth: g.released.Month().String(),
	}
}

// Game rebuilds a game from its serialized form. The raw release date
// text is authoritative; the derived year and month are recomputed.
func (d GameData) Game() Game {
	g, _ := NewGame([]string{d.Name, d.Developer, d.Producer, d.Genre, d.Platform, d.ReleaseDate})
	return g
}

// MarshalJSON implements json.Marshaler.
func (g Game) MarshalJSON() ([]byte, error) {
	return json.Marshal(g.Data())
}

// UnmarshalJSON implements json.Unmarshaler.
func (g *Game) UnmarshalJSON(data []byte) error {
	var d GameData
	if err := json.Unmarshal(data, &d); err != nil {
		return err
	}
	*g = d.Game()
	return nil
}

// MarshalYAML implements yaml.InterfaceMarshaler.
func (g Game) MarshalYAML() (any, error) {
	return g.Data(), nil
}

// Field selects one categorical column of a game.
type Field int

// Categorical fields, in header order.
const (
	FieldName Field = iota
	FieldDeveloper
	FieldProducer
	FieldGenre
	FieldPlatform
)

// Fields lists the fields that group and filter meaningfully.
var Fields = []Field{FieldDeveloper, FieldProducer, FieldGenre, FieldPlatform}

// String returns the lower-case name of the field.
func (f Field) String() string {
	switch f {
	case FieldName:
		return "name"
	case FieldDeveloper:
		return "developer"
	case FieldProducer:
		return "producer"
	case FieldGenre:
		return "genre"
	case FieldPlatform:
		return "platform"
	default:
		return "unknown"
	}
}

// Plural returns the field name used for lists, e.g. "producers".
func (f Field) Plural() string {
	return f.String() + "s"
}

// Value returns the field's value for g.
func (f Field) Value(g Game) string {
	switch f {
	case FieldName:
		return g.name
	case FieldDeveloper:
		return g.developer
	case FieldProducer:
		return g.producer
	case FieldGenre:
		return g.genre
	case FieldPlatform:
		return g.platform
	default:
		return ""
	}
}

// ParseField parses a field name. Plurals and "os" are accepted.
func ParseField(s string) (Field, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "name", "names":
		return FieldName, nil
	case "developer", "developers":
		return FieldDeveloper, nil
	case "producer", "producers", "publisher", "publishers":
		return FieldProducer, nil
	case "genre", "genres":
		return FieldGenre, nil
	case "platform", "platforms", "os", "operating system", "operating-system":
		return FieldPlatform, nil
	default:
		return 0, &errors.ValidationError{
			Field:   "field",
			Value:   s,
			Message: "must be one of name, developer, producer, genre, platform",
		}
	}
}
