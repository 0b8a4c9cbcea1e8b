package app

import (
	"os"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/agentstation/gamecat/internal/appcontext"
	"github.com/agentstation/gamecat/internal/cmd/output"
	"github.com/agentstation/gamecat/pkg/constants"
	"github.com/agentstation/gamecat/pkg/errors"
)

// envPrefix namespaces every environment variable read by viper.
const envPrefix = "GAMECAT"

// Config holds the application configuration loaded from various sources
// including config files, environment variables, and .env files.
type Config struct {
	// Global flags
	Verbose bool
	Quiet   bool
	NoColor bool
	Format  string

	// Config file
	ConfigFile string

	// Catalog input
	File      string
	Sample    bool
	Separator string
	Columns   int

	// Menu defaults
	Presets appcontext.Presets

	// Logging configuration
	LogLevel  string
	LogFormat string
	LogOutput string
}

// LoadConfig loads configuration from all sources in order of precedence:
// 1. Command-line flags (applied later by UpdateFromFlags)
// 2. Environment variables (GAMECAT_*)
// 3. .env files
// 4. Config file (path, or ~/.gamecat.yaml, or ./.gamecat.yaml)
// 5. Defaults
//
// A missing config file is not an error unless path names it explicitly.
func LoadConfig(path string) (*Config, error) {
	// Load .env files first (before Viper env binding)
	loadEnvFiles()

	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	setDefaults(v)

	if path == "" {
		path = v.GetString("config")
	}

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.WrapIO("read config", path, err)
		}
	} else {
		// Search for config in standard locations
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(home)
		}
		v.AddConfigPath(".")
		v.SetConfigType("yaml")
		v.SetConfigName(".gamecat")

		// Read config file (ignore error if not found)
		_ = v.ReadInConfig()
	}

	return &Config{
		Verbose: v.GetBool("verbose"),
		Quiet:   v.GetBool("quiet"),
		NoColor: v.GetBool("no-color"),
		Format:  v.GetString("output"),

		ConfigFile: v.ConfigFileUsed(),

		File:      v.GetString("file"),
		Sample:    v.GetBool("sample"),
		Separator: v.GetString("separator"),
		Columns:   v.GetInt("columns"),

		Presets: appcontext.Presets{
			Developer:  v.GetString("defaults.developer"),
			Month:      time.Month(v.GetInt("defaults.month")),
			Platform:   v.GetString("defaults.platform"),
			Genre:      v.GetString("defaults.genre"),
			ExportPath: v.GetString("export_path"),
		},

		LogLevel:  v.GetString("log_level"),
		LogFormat: getEnvOrDefault("LOG_FORMAT", "auto"),
		LogOutput: getEnvOrDefault("LOG_OUTPUT", "stderr"),
	}, nil
}

func setDefaults(v *viper.Viper) {
	presets := appcontext.DefaultPresets()

	v.SetDefault("separator", string(constants.DefaultSeparator))
	v.SetDefault("columns", constants.GameColumns)
	v.SetDefault("export_path", presets.ExportPath)
	v.SetDefault("defaults.developer", presets.Developer)
	v.SetDefault("defaults.month", int(presets.Month))
	v.SetDefault("defaults.platform", presets.Platform)
	v.SetDefault("defaults.genre", presets.Genre)
}

// UpdateFromFlags applies the persistent flags the user actually set, so
// flag values take precedence over config file and env vars.
func (c *Config) UpdateFromFlags(cmd *cobra.Command) {
	flags := cmd.Flags()
	if flags.Changed("verbose") {
		c.Verbose = mustGetBool(cmd, "verbose")
	}
	if flags.Changed("quiet") {
		c.Quiet = mustGetBool(cmd, "quiet")
	}
	if flags.Changed("no-color") {
		c.NoColor = mustGetBool(cmd, "no-color")
	}
	if flags.Changed("sample") {
		c.Sample = mustGetBool(cmd, "sample")
	}
	if flags.Changed("format") {
		c.Format = mustGetString(cmd, "format")
	}
	if flags.Changed("log-level") {
		c.LogLevel = mustGetString(cmd, "log-level")
	}
	if flags.Changed("file") {
		c.File = mustGetString(cmd, "file")
	}
	if flags.Changed("separator") {
		c.Separator = mustGetString(cmd, "separator")
	}
}

// Validate checks values that cannot be repaired with a default.
func (c *Config) Validate() error {
	if utf8.RuneCountInString(c.Separator) != 1 {
		return &errors.ValidationError{
			Field:   "separator",
			Value:   c.Separator,
			Message: "must be exactly one character",
		}
	}

	switch c.SeparatorRune() {
	case constants.QuoteBorder, '\n', '\r':
		return &errors.ValidationError{
			Field:   "separator",
			Value:   c.Separator,
			Message: "cannot be a quote or a line break",
		}
	}

	if c.Columns != constants.GameColumns {
		return &errors.ValidationError{
			Field:   "columns",
			Value:   c.Columns,
			Message: "games files have 6 columns",
		}
	}

	if c.Presets.Month < time.January || c.Presets.Month > time.December {
		return &errors.ValidationError{
			Field:   "defaults.month",
			Value:   int(c.Presets.Month),
			Message: "must be between 1 and 12",
		}
	}

	if _, err := output.ParseFormat(c.Format); err != nil {
		return err
	}
	return nil
}

// SeparatorRune returns the first rune of the configured separator.
func (c *Config) SeparatorRune() rune {
	r, _ := utf8.DecodeRuneInString(c.Separator)
	return r
}

// loadEnvFiles loads environment variables from .env files. Variables
// already set in the environment win, then .env.local, then .env.
func loadEnvFiles() {
	for _, envFile := range []string{".env.local", ".env"} {
		_ = godotenv.Load(envFile)
	}
}

// getEnvOrDefault returns the environment variable value or the default if not set.
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
