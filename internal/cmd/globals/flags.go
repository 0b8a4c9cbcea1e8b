// Package globals provides shared flag structures and utilities for CLI commands.
package globals

import (
	"github.com/spf13/cobra"

	"github.com/agentstation/gamecat/internal/cmd/filter"
	"github.com/agentstation/gamecat/pkg/catalogs"
)

// GameFlags holds the subset selection flags shared by list, stats and export.
type GameFlags struct {
	Developer string
	Producer  string
	Genre     string
	Platform  string
	Month     string
	After     *int
	Search    string
	Limit     int
}

// AddGameFlags adds game selection flags to a command.
func AddGameFlags(cmd *cobra.Command) *GameFlags {
	flags := &GameFlags{}

	cmd.Flags().StringVarP(&flags.Developer, "developer", "d", "",
		"Filter by developer (exact match)")
	cmd.Flags().StringVarP(&flags.Producer, "producer", "p", "",
		"Filter by producer (exact match)")
	cmd.Flags().StringVarP(&flags.Genre, "genre", "g", "",
		"Filter by genre (exact match)")
	cmd.Flags().StringVar(&flags.Platform, "platform", "",
		"Filter by operating system (exact match)")
	cmd.Flags().StringVarP(&flags.Month, "month", "m", "",
		"Filter by release month (1-12, name or abbreviation)")
	cmd.Flags().Int("after", 0,
		"Only games released after this year")
	cmd.Flags().StringVar(&flags.Search, "search", "",
		"Case-insensitive substring of the game name")
	cmd.Flags().IntVarP(&flags.Limit, "limit", "l", 0,
		"Limit number of results")

	return flags
}

// ParseGames extracts game flags from a command. After is nil unless
// --after was given.
// The command must have had AddGameFlags called on it, otherwise this will panic.
func ParseGames(cmd *cobra.Command) *GameFlags {
	var after *int
	if year := mustGetInt(cmd, "after"); cmd.Flags().Changed("after") {
		after = &year
	}

	return &GameFlags{
		Developer: mustGetString(cmd, "developer"),
		Producer:  mustGetString(cmd, "producer"),
		Genre:     mustGetString(cmd, "genre"),
		Platform:  mustGetString(cmd, "platform"),
		Month:     mustGetString(cmd, "month"),
		After:     after,
		Search:    mustGetString(cmd, "search"),
		Limit:     mustGetInt(cmd, "limit"),
	}
}

// Filter converts the flags into a game filter.
func (f *GameFlags) Filter() *filter.GameFilter {
	return &filter.GameFilter{
		Developer: f.Developer,
		Producer:  f.Producer,
		Genre:     f.Genre,
		Platform:  f.Platform,
		Month:     f.Month,
		After:     f.After,
		Search:    f.Search,
		Limit:     f.Limit,
	}
}

// AddFieldFlag adds a --by flag naming the grouping field.
func AddFieldFlag(cmd *cobra.Command, defaultField catalogs.Field) {
	cmd.Flags().String("by", defaultField.String(),
		"Group by field: developer, producer, genre, platform")
}

// ParseField reads the --by flag added by AddFieldFlag.
func ParseField(cmd *cobra.Command) (catalogs.Field, error) {
	return catalogs.ParseField(mustGetString(cmd, "by"))
}

// mustGetString retrieves a string flag value or panics if the flag doesn't exist.
func mustGetString(cmd *cobra.Command, name string) string {
	val, err := cmd.Flags().GetString(name)
	if err != nil {
		panic("programming error: failed to get flag " + name + ": " + err.Error())
	}
	return val
}

// mustGetInt retrieves an integer flag value or panics if the flag doesn't exist.
func mustGetInt(cmd *cobra.Command, name string) int {
	val, err := cmd.Flags().GetInt(name)
	if err != nil {
		panic("programming error: failed to get flag " + name + ": " + err.Error())
	}
	return val
}
