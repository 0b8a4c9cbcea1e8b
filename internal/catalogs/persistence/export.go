package persistence

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/goccy/go-yaml"
	"github.com/segmentio/parquet-go"

	"github.com/agentstation/gamecat/pkg/catalogs"
	"github.com/agentstation/gamecat/pkg/constants"
	"github.com/agentstation/gamecat/pkg/errors"
)

// Options configures an export.
type Options struct {
	Format    Format
	Separator rune
}

// Option mutates Options.
type Option func(*Options)

// WithFormat selects the output format. Without it the format is
// inferred from the path.
func WithFormat(f Format) Option {
	return func(o *Options) {
		o.Format = f
	}
}

// WithSeparator sets the CSV field separator.
func WithSeparator(sep rune) Option {
	return func(o *Options) {
		o.Separator = sep
	}
}

// Export writes games to path. The path extension must match the format,
// otherwise a FormatError is returned before anything is written.
func Export(path string, games []catalogs.Game, opts ...Option) error {
	options := Options{Separator: constants.DefaultSeparator}
	for _, opt := range opts {
		opt(&options)
	}

	if options.Format == "" {
		f, err := FormatFromPath(path)
		if err != nil {
			return err
		}
		options.Format = f
	}

	if err := options.Format.CheckPath(path); err != nil {
		return err
	}

	if options.Format == FormatCSV {
		return catalogs.Export(path, games, options.Separator)
	}

	var buf bytes.Buffer
	if err := Encode(&buf, options.Format, games); err != nil {
		return err
	}

	if err := os.WriteFile(path, buf.Bytes(), constants.FilePermissions); err != nil {
		return errors.WrapIO("write", path, err)
	}
	return nil
}

// Encode writes games to w in the given format. CSV uses the default
// separator.
func Encode(w io.Writer, f Format, games []catalogs.Game) error {
	switch f {
	case FormatCSV:
		_, err := catalogs.ToTable(games, constants.DefaultSeparator).WriteTo(w)
		return err
	case FormatJSON:
		return EncodeJSON(w, games)
	case FormatYAML:
		return EncodeYAML(w, games)
	case FormatParquet:
		return EncodeParquet(w, games)
	default:
		return &errors.ValidationError{Field: "format", Value: string(f), Message: "unsupported format"}
	}
}

// EncodeJSON writes games as an indented JSON array.
func EncodeJSON(w io.Writer, games []catalogs.Game) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(gameData(games)); err != nil {
		return fmt.Errorf("encoding json: %w", err)
	}
	return nil
}

// EncodeYAML writes games as a YAML sequence with one head comment per game.
func EncodeYAML(w io.Writer, games []catalogs.Game) error {
	commentMap := yaml.CommentMap{}
	for i, g := range games {
		path := fmt.Sprintf("$[%d]", i)
		commentMap[path] = []*yaml.Comment{
			yaml.HeadComment(fmt.Sprintf(" %s (%s)", g.Name(), g.ReleaseDate().Display())),
		}
	}

	data, err := yaml.MarshalWithOptions(gameData(games),
		yaml.Indent(2),
		yaml.IndentSequence(false),
		yaml.WithComment(commentMap),
	)
	if err != nil {
		return fmt.Errorf("encoding yaml: %w", err)
	}

	_, err = w.Write(data)
	return err
}

// EncodeParquet writes games as a single Parquet file.
func EncodeParquet(w io.Writer, games []catalogs.Game) error {
	writer := parquet.NewGenericWriter[catalogs.GameData](w)
	if _, err := writer.Write(gameData(games)); err != nil {
		return fmt.Errorf("encoding parquet: %w", err)
	}
	if err := writer.Close(); err != nil {
		return fmt.Errorf("closing parquet writer: %w", err)
	}
	return nil
}

func gameData(games []catalogs.Game) []catalogs.GameData {
	data := make([]catalogs.GameData, len(games))
	for i, g := range games {
		data[i] = g.Data()
	}
	return data
}
