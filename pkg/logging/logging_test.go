package logging_test

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/gamecat/pkg/logging"
)

func restoreLevel(t *testing.T) {
	t.Helper()
	level := zerolog.GlobalLevel()
	original := *logging.Default()
	t.Cleanup(func() {
		zerolog.SetGlobalLevel(level)
		logging.SetDefault(original)
	})
}

func TestCaptureLoggingForTest(t *testing.T) {
	capture := logging.CaptureLoggingForTest(t)

	logging.Default().Debug().Msg("debug message")
	logging.Ctx(context.Background()).Info().Str("file", "games.csv").Msg("info message")
	logging.Default().Err(errors.New("boom")).Msg("error message")

	assert.Len(t, capture.Lines(), 3)
	assert.True(t, capture.Contains(`"file":"games.csv"`))
	assert.True(t, capture.Contains(`"error":"boom"`))
}

func TestContextHelpers(t *testing.T) {
	testLogger := logging.NewTestLogger(t)

	ctx := logging.WithLogger(context.Background(), testLogger.Logger)
	ctx = logging.WithFile(ctx, "games.csv")
	ctx = logging.WithCommand(ctx, "list")
	ctx = logging.WithField(ctx, "games", 7)

	logging.Ctx(ctx).Info().Msg("loaded")

	output := testLogger.Output()
	assert.Contains(t, output, `"file":"games.csv"`)
	assert.Contains(t, output, `"command":"list"`)
	assert.Contains(t, output, `"games":7`)
}

func TestFromContextDefaults(t *testing.T) {
	//nolint:staticcheck // nil context is a supported input
	assert.Equal(t, logging.Default(), logging.FromContext(nil))
	assert.Equal(t, logging.Default(), logging.FromContext(context.Background()))

	ctx := logging.WithLogger(context.Background(), nil)
	assert.Equal(t, logging.Default(), logging.FromContext(ctx))
}

func TestNewLoggerFromConfig(t *testing.T) {
	restoreLevel(t)

	tests := []struct {
		name     string
		level    string
		logWarn  bool
		logInfo  bool
		logDebug bool
	}{
		{"debug", "debug", true, true, true},
		{"info", "info", true, true, false},
		{"warning alias", "warning", true, false, false},
		{"upper case", "WARN", true, false, false},
		{"unknown falls back to info", "chatty", true, true, false},
		{"off", "off", false, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger := logging.NewLoggerFromConfig(&logging.Config{
				Level:  tt.level,
				Format: "json",
				Writer: &buf,
			})

			logger.Warn().Msg("warn-line")
			logger.Info().Msg("info-line")
			logger.Debug().Msg("debug-line")

			assert.Equal(t, tt.logWarn, bytes.Contains(buf.Bytes(), []byte("warn-line")))
			assert.Equal(t, tt.logInfo, bytes.Contains(buf.Bytes(), []byte("info-line")))
			assert.Equal(t, tt.logDebug, bytes.Contains(buf.Bytes(), []byte("debug-line")))
		})
	}
}

func TestConfigFormatsAndFields(t *testing.T) {
	restoreLevel(t)

	t.Run("console", func(t *testing.T) {
		var buf bytes.Buffer
		logger := logging.NewLoggerFromConfig(&logging.Config{
			Level:   "info",
			Format:  "console",
			Writer:  &buf,
			NoColor: true,
		})
		logger.Info().Msg("console test")
		assert.Contains(t, buf.String(), "INF")
		assert.Contains(t, buf.String(), "console test")
	})

	t.Run("auto is json off a terminal", func(t *testing.T) {
		var buf bytes.Buffer
		logger := logging.NewLoggerFromConfig(&logging.Config{Level: "info", Writer: &buf})
		logger.Info().Msg("auto")
		assert.Contains(t, buf.String(), `"message":"auto"`)
	})

	t.Run("default fields", func(t *testing.T) {
		var buf bytes.Buffer
		logger := logging.NewLoggerFromConfig(&logging.Config{
			Level:  "info",
			Format: "json",
			Writer: &buf,
			Fields: map[string]any{"app": "gamecat", "pid": 42},
		})
		logger.Info().Msg("fields")
		assert.Contains(t, buf.String(), `"app":"gamecat"`)
		assert.Contains(t, buf.String(), `"pid":42`)
	})

	t.Run("file output", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "gamecat.log")
		logger := logging.NewLoggerFromConfig(&logging.Config{Level: "warn", Format: "json", Output: path})

		logger.Info().Msg("hidden")
		logger.Warn().Msg("shown")

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Contains(t, string(data), "shown")
		assert.NotContains(t, string(data), "hidden")
	})

	t.Run("from env", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "env.log")
		t.Setenv("LOG_LEVEL", "debug")
		t.Setenv("LOG_FORMAT", "json")
		t.Setenv("LOG_OUTPUT", path)
		t.Setenv("LOG_FIELDS", "env=test, region = eu")

		cfg := logging.ConfigFromEnv()
		assert.Equal(t, "debug", cfg.Level)

		logger := logging.NewLoggerFromConfig(cfg)
		logger.Debug().Msg("from env")

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Contains(t, string(data), "from env")
		assert.Contains(t, string(data), `"env":"test"`)
		assert.Contains(t, string(data), `"region":"eu"`)
	})
}

func TestResolveLevel(t *testing.T) {
	t.Setenv("LOG_LEVEL", "error")

	assert.Equal(t, "trace", logging.ResolveLevel("trace", true, true))
	assert.Equal(t, "debug", logging.ResolveLevel("", true, true))
	assert.Equal(t, "warn", logging.ResolveLevel("", false, true))
	assert.Equal(t, "error", logging.ResolveLevel("", false, false))

	t.Setenv("LOG_LEVEL", "")
	assert.Equal(t, "info", logging.ResolveLevel("", false, false))
}
