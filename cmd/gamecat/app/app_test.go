package app

import (
	"bytes"
	"context"
	"encoding/json"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/agentstation/gamecat/pkg/catalogs"
	"github.com/agentstation/gamecat/pkg/errors"
	"github.com/agentstation/gamecat/pkg/logging"
)

const gamesFile = `Name;Developer;Producer;Genre;"Operating System";"Date Released"
Diablo;"Blizzard North";"Blizzard Entertainment";"Action role-playing";"Microsoft Windows";"December 31, 1996"
"Dungeon Keeper";"Bullfrog Productions";"Electronic Arts";"Strategy";"Microsoft Windows";"June 26, 1997"
broken;line
`

func newTestApp(t *testing.T) *App {
	t.Helper()
	isolate(t)
	t.Setenv("LOG_LEVEL", "")

	logger := zerolog.Nop()
	app, err := New("1.0.0", "abc123", "2026-01-01", "test", WithLogger(&logger))
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}
	return app
}

// execute runs the root command and captures stdout and stderr.
func execute(t *testing.T, app *App, args ...string) (string, string, error) {
	t.Helper()
	root := app.createRootCommand()
	var stdout, stderr bytes.Buffer
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	root.SetIn(strings.NewReader(""))
	root.SetArgs(args)
	err := root.ExecuteContext(context.Background())
	return stdout.String(), stderr.String(), err
}

// TestApp_New verifies app initialization.
func TestApp_New(t *testing.T) {
	app := newTestApp(t)

	if app.Version() != "1.0.0" {
		t.Errorf("Version() = %s, want 1.0.0", app.Version())
	}
	if app.Commit() != "abc123" {
		t.Errorf("Commit() = %s, want abc123", app.Commit())
	}
	if app.Date() != "2026-01-01" {
		t.Errorf("Date() = %s, want 2026-01-01", app.Date())
	}
	if app.BuiltBy() != "test" {
		t.Errorf("BuiltBy() = %s, want test", app.BuiltBy())
	}
	if app.Logger() == nil {
		t.Error("Logger() returned nil")
	}
	if app.Config() == nil {
		t.Error("Config() returned nil")
	}
	if app.Separator() != ',' {
		t.Errorf("Separator() = %q, want ','", app.Separator())
	}
}

// TestApp_CatalogSample verifies the embedded sample is used without --file
// and that the catalog is loaded once.
func TestApp_CatalogSample(t *testing.T) {
	app := newTestApp(t)

	c1, err := app.Catalog()
	if err != nil {
		t.Fatalf("Catalog() failed: %v", err)
	}
	c2, err := app.Catalog()
	if err != nil {
		t.Fatalf("Catalog() failed on second call: %v", err)
	}
	if c1 != c2 {
		t.Error("Catalog() returned different instances")
	}
	if c1.Len() != 19 {
		t.Errorf("sample has %d games, want 19", c1.Len())
	}
}

// TestApp_WithCatalog verifies a preloaded catalog is returned as is.
func TestApp_WithCatalog(t *testing.T) {
	isolate(t)
	c := catalogs.TestCatalog(t)
	app, err := New("dev", "", "", "", WithCatalog(c))
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}
	got, err := app.Catalog()
	if err != nil || got != c {
		t.Errorf("Catalog() = %v, %v; want the preloaded catalog", got, err)
	}
}

// TestExecute_ListFromFile runs list games against a semicolon separated file.
func TestExecute_ListFromFile(t *testing.T) {
	app := newTestApp(t)
	path := filepath.Join(t.TempDir(), "games.csv")
	writeFile(t, path, gamesFile)

	stdout, _, err := execute(t, app, "--file", path, "--separator", ";", "-o", "json", "list", "games")
	if err != nil {
		t.Fatalf("list games failed: %v", err)
	}

	var games []catalogs.GameData
	if err := json.Unmarshal([]byte(stdout), &games); err != nil {
		t.Fatalf("decoding output: %v\n%s", err, stdout)
	}
	if len(games) != 2 || games[0].Name != "Diablo" || games[1].ReleaseYear != 1997 {
		t.Errorf("unexpected games: %+v", games)
	}
}

// TestExecute_ListFromExport loads a JSON export back with --file.
func TestExecute_ListFromExport(t *testing.T) {
	app := newTestApp(t)
	path := filepath.Join(t.TempDir(), "fps.json")

	if _, _, err := execute(t, app, "--sample", "export", "--genre", "First-person shooter", "--out", path); err != nil {
		t.Fatalf("export failed: %v", err)
	}

	stdout, _, err := execute(t, newTestApp(t), "--file", path, "-o", "json", "list", "games")
	if err != nil {
		t.Fatalf("list games from json failed: %v", err)
	}
	var games []catalogs.GameData
	if err := json.Unmarshal([]byte(stdout), &games); err != nil {
		t.Fatalf("decoding output: %v\n%s", err, stdout)
	}
	if len(games) != 7 || games[0].Name != "Wolfenstein 3D" {
		t.Errorf("unexpected games: %+v", games)
	}
}

// TestApp_LoadCatalogLogs verifies load events go to the context logger.
func TestApp_LoadCatalogLogs(t *testing.T) {
	app := newTestApp(t)
	logs := logging.NewTestLogger(t)
	ctx := logging.WithLogger(context.Background(), logs.Logger)

	missing := filepath.Join(t.TempDir(), "missing.csv")
	if _, _, err := app.LoadCatalog(ctx, missing); !errors.IsIOError(err) {
		t.Fatalf("LoadCatalog() error = %v, want IOError", err)
	}
	if !logs.Contains("Failed to load games file") || !logs.Contains(`"file":"`+missing+`"`) {
		t.Errorf("missing load failure event:\n%s", logs.Output())
	}

	path := filepath.Join(t.TempDir(), "games.csv")
	writeFile(t, path, strings.ReplaceAll(gamesFile, ";", ","))
	if _, result, err := app.LoadCatalog(ctx, path); err != nil || result.Kept != 2 {
		t.Fatalf("LoadCatalog() = %+v, %v", result, err)
	}
	if !logs.Contains(`"dropped":1`) {
		t.Errorf("missing load statistics:\n%s", logs.Output())
	}
}

// TestExecute_StatsOnSample runs a stats query on the embedded sample.
func TestExecute_StatsOnSample(t *testing.T) {
	app := newTestApp(t)

	stdout, _, err := execute(t, app, "--sample", "-o", "json", "stats", "oldest", "--preset")
	if err != nil {
		t.Fatalf("stats oldest failed: %v", err)
	}
	if !strings.Contains(stdout, `"name": "Quake"`) {
		t.Errorf("oldest Windows first-person shooter should be Quake, got:\n%s", stdout)
	}

	stdout, _, err = execute(t, app, "-o", "json", "stats", "fewest")
	if err != nil {
		t.Fatalf("stats fewest failed: %v", err)
	}
	if !strings.Contains(stdout, "Brøderbund") {
		t.Errorf("fewest producer should be Brøderbund, got:\n%s", stdout)
	}
}

// TestExecute_Export writes the preset subset of the sample.
func TestExecute_Export(t *testing.T) {
	app := newTestApp(t)
	out := filepath.Join(t.TempDir(), "Developer_Maxis.csv")

	_, stderr, err := execute(t, app, "--no-color", "export", "--preset", "--out", out)
	if err != nil {
		t.Fatalf("export failed: %v", err)
	}
	if !strings.Contains(stderr, "Exported 6 games") {
		t.Errorf("unexpected stderr: %s", stderr)
	}

	c, _, err := catalogs.Load(out, ',')
	if err != nil {
		t.Fatalf("reloading export: %v", err)
	}
	if c.Len() != 6 {
		t.Errorf("exported %d games, want 6", c.Len())
	}
}

// TestExecute_InvalidFlags verifies validation happens before commands run.
func TestExecute_InvalidFlags(t *testing.T) {
	tests := []struct {
		name  string
		args  []string
		check func(error) bool
	}{
		{"separator", []string{"--separator", ";;", "list", "games"}, errors.IsValidationError},
		{"quote separator", []string{"--separator", `"`, "list", "games"}, errors.IsValidationError},
		{"format", []string{"-o", "xml", "list", "games"}, errors.IsValidationError},
		{"file extension", []string{"--file", "games.txt", "list", "games"}, errors.IsFormatError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := execute(t, newTestApp(t), tt.args...)
			if !tt.check(err) {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

// TestExecute_ConfigFlag verifies --config reloads configuration.
func TestExecute_ConfigFlag(t *testing.T) {
	app := newTestApp(t)
	path := filepath.Join(t.TempDir(), "gamecat.yaml")
	writeFile(t, path, "output: json\ndefaults:\n  developer: Valve\n")

	stdout, _, err := execute(t, app, "--config", path, "config")
	if err != nil {
		t.Fatalf("config failed: %v", err)
	}
	if !strings.Contains(stdout, `"developer": "Valve"`) {
		t.Errorf("config output missing developer preset:\n%s", stdout)
	}
}

// TestExecute_Shell drives the interactive shell through the root command.
func TestExecute_Shell(t *testing.T) {
	app := newTestApp(t)
	root := app.createRootCommand()
	var stdout bytes.Buffer
	root.SetOut(&stdout)
	root.SetIn(strings.NewReader("4.4\nquit\n"))
	root.SetArgs([]string{"--sample", "--no-color", "shell", "--preload"})

	if err := root.ExecuteContext(context.Background()); err != nil {
		t.Fatalf("shell failed: %v", err)
	}
	if !strings.Contains(stdout.String(), "fewest games\nBrøderbund\n") {
		t.Errorf("unexpected shell output:\n%s", stdout.String())
	}
}

// TestExecute_Version prints build information.
func TestExecute_Version(t *testing.T) {
	app := newTestApp(t)

	stdout, _, err := execute(t, app, "-o", "yaml", "version")
	if err != nil {
		t.Fatalf("version failed: %v", err)
	}
	if !strings.Contains(stdout, "version: 1.0.0") || !strings.Contains(stdout, "commit: abc123") {
		t.Errorf("unexpected version output:\n%s", stdout)
	}
}
