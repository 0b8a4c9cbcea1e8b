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
	"github.com/agentstation/gamecat/pkg/errors"
)

// Load reads a games file in any export format into a new catalog. CSV
// goes through catalogs.Load and reports dropped lines; the other formats
// hold whole games and never drop any.
func Load(path string, separator rune) (*catalogs.Catalog, catalogs.LoadResult, error) {
	f, err := FormatFromPath(path)
	if err != nil {
		return nil, catalogs.LoadResult{}, err
	}

	if f == FormatCSV {
		return catalogs.Load(path, separator)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, catalogs.LoadResult{}, errors.WrapIO("read", path, err)
	}

	var games []catalogs.Game
	switch f {
	case FormatJSON:
		games, err = DecodeJSON(bytes.NewReader(data))
	case FormatYAML:
		games, err = DecodeYAML(bytes.NewReader(data))
	default:
		games, err = DecodeParquet(bytes.NewReader(data))
	}
	if err != nil {
		return nil, catalogs.LoadResult{}, fmt.Errorf("%s: %w", path, err)
	}

	return catalogs.New(games...), catalogs.LoadResult{Kept: len(games)}, nil
}

// Import reads games previously written by Export. The format is
// inferred from the path extension.
func Import(path string, separator rune) ([]catalogs.Game, error) {
	c, _, err := Load(path, separator)
	if err != nil {
		return nil, err
	}
	return c.Games(), nil
}

// DecodeJSON reads a JSON array of games.
func DecodeJSON(r io.Reader) ([]catalogs.Game, error) {
	var data []catalogs.GameData
	if err := json.NewDecoder(r).Decode(&data); err != nil {
		return nil, fmt.Errorf("decoding json: %w", err)
	}
	return fromData(data), nil
}

// DecodeYAML reads a YAML sequence of games.
func DecodeYAML(r io.Reader) ([]catalogs.Game, error) {
	var data []catalogs.GameData
	if err := yaml.NewDecoder(r).Decode(&data); err != nil {
		return nil, fmt.Errorf("decoding yaml: %w", err)
	}
	return fromData(data), nil
}

// DecodeParquet reads every row of a Parquet file of games.
func DecodeParquet(r io.ReaderAt) ([]catalogs.Game, error) {
	reader := parquet.NewGenericReader[catalogs.GameData](r)
	defer func() { _ = reader.Close() }()

	rows := make([]catalogs.GameData, reader.NumRows())
	total := 0
	for total < len(rows) {
		n, err := reader.Read(rows[total:])
		total += n
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("decoding parquet: %w", err)
		}
		if n == 0 {
			break
		}
	}
	return fromData(rows[:total]), nil
}

func fromData(data []catalogs.GameData) []catalogs.Game {
	games := make([]catalogs.Game, len(data))
	for i, d := range data {
		games[i] = d.Game()
	}
	return games
}
