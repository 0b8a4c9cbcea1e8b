package shell

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/rs/zerolog"

	"github.com/agentstation/gamecat/internal/appcontext"
	"github.com/agentstation/gamecat/internal/catalogs/persistence"
	"github.com/agentstation/gamecat/internal/cmd/alerts"
	"github.com/agentstation/gamecat/internal/cmd/constants"
	"github.com/agentstation/gamecat/internal/cmd/emoji"
	"github.com/agentstation/gamecat/internal/cmd/output"
	"github.com/agentstation/gamecat/pkg/catalogs"
	"github.com/agentstation/gamecat/pkg/errors"
	"github.com/agentstation/gamecat/pkg/logging"
)

// clearScreen moves the cursor home and erases the display.
const clearScreen = "\033[H\033[2J"

// command is one entry of the menu.
type command struct {
	names []string
	help  string
	exit  bool
	run   func(s *Shell, ctx context.Context) error
}

// Shell is an interactive menu over a single catalog. Errors raised by a
// command are printed as one alert line and the session continues.
type Shell struct {
	app       appcontext.Interface
	presets   appcontext.Presets
	separator rune
	catalog   *catalogs.Catalog

	in     *bufio.Scanner
	out    io.Writer
	alerts alerts.Writer
	logger *zerolog.Logger

	commands []*command
	byName   map[string]*command
}

// New creates a shell reading commands from in and writing to out. The
// shell owns catalog; loading a file replaces its contents.
func New(app appcontext.Interface, in io.Reader, out io.Writer, catalog *catalogs.Catalog) *Shell {
	if catalog == nil {
		catalog = catalogs.New()
	}

	fw := alerts.NewFormatWriter(out, output.FormatTable)
	if app.NoColor() {
		fw.WithColor(false)
	}
	var w alerts.Writer = fw
	if app.Quiet() {
		w = alerts.Quiet(w)
	}

	s := &Shell{
		app:       app,
		presets:   app.Presets(),
		separator: app.Separator(),
		catalog:   catalog,
		in:        bufio.NewScanner(in),
		out:       out,
		alerts:    w,
		logger:    logging.Default(),
		byName:    make(map[string]*command),
	}
	s.register()
	return s
}

func (s *Shell) register() {
	p := s.presets
	s.commands = []*command{
		{names: []string{constants.ShellHelp}, help: "show the list of commands", run: (*Shell).help},
		{names: []string{constants.ShellClear}, help: "clear the console", run: (*Shell).clear},
		{names: []string{constants.ShellLoad, "load"}, help: "load games from a file", run: (*Shell).load},
		{names: []string{constants.ShellDeveloper, "developer"}, help: "show games with developer " + p.Developer, run: (*Shell).developer},
		{names: []string{constants.ShellExport, "export"}, help: fmt.Sprintf("save games with developer %s to %s", p.Developer, p.ExportPath), run: (*Shell).export},
		{names: []string{constants.ShellMonth, "month"}, help: "show games released in " + p.Month.String(), run: (*Shell).month},
		{names: []string{constants.ShellProducers, "producers"}, help: "show the number of games per producer", run: (*Shell).producers},
		{names: []string{constants.ShellOldest, "oldest"}, help: fmt.Sprintf("show the oldest game with platform %s and genre %s", p.Platform, p.Genre), run: (*Shell).oldest},
		{names: []string{constants.ShellGenres, "genres"}, help: "show the number of games per genre", run: (*Shell).genres},
		{names: []string{constants.ShellFewest, "fewest"}, help: "show the producer associated with the fewest games", run: (*Shell).fewest},
		{names: []string{"newest"}, help: "show the newest game", run: (*Shell).newest},
		{names: []string{"average"}, help: "show the average release year", run: (*Shell).average},
		{names: []string{"after"}, help: "show games released after a year", run: (*Shell).after},
		{names: []string{constants.ShellExit, "exit", "quit"}, help: "leave the shell", exit: true},
	}

	for _, cmd := range s.commands {
		for _, name := range cmd.names {
			s.byName[name] = cmd
		}
	}
}

// Run prints the greeting and the command list, then executes commands
// until exit, end of input or ctx cancellation. Commands log through the
// logger carried by ctx.
func (s *Shell) Run(ctx context.Context) error {
	s.logger = logging.Ctx(ctx)

	s.println("Welcome to gamecat")
	s.println("")
	_ = s.help(ctx)

	for ctx.Err() == nil {
		s.print(emoji.Prompt + " ")

		line, ok := s.readLine()
		if !ok {
			s.println("")
			return s.in.Err()
		}

		name := strings.TrimSpace(line)
		if name == "" {
			continue
		}

		cmd, found := s.byName[name]
		if !found {
			s.write(alerts.NewError(fmt.Sprintf("unknown command %q, type help for the list of commands", name)))
			continue
		}
		if cmd.exit {
			return nil
		}

		cmdCtx := logging.WithField(ctx, "input", name)
		logger := logging.Ctx(cmdCtx)
		logger.Debug().Msg("Running shell command")
		if err := cmd.run(s, cmdCtx); err != nil {
			logger.Debug().Err(err).Msg("Shell command failed")
			s.report(err)
		}
	}
	return nil
}

func (s *Shell) help(context.Context) error {
	for _, cmd := range s.commands {
		s.println(fmt.Sprintf("%s - %s", strings.Join(cmd.names, ", "), cmd.help))
	}
	return nil
}

func (s *Shell) clear(context.Context) error {
	s.print(clearScreen)
	return nil
}

func (s *Shell) load(ctx context.Context) error {
	s.print("Path to file: ")
	line, ok := s.readLine()
	path := strings.TrimSpace(line)
	if !ok || path == "" {
		return &errors.ValidationError{Field: "path", Message: "must not be empty"}
	}

	loaded, result, err := s.app.LoadCatalog(ctx, path)
	if err != nil {
		return err
	}

	s.catalog.Clear()
	s.catalog.Add(loaded.Games()...)

	s.success(fmt.Sprintf("File loaded: %d games", result.Kept))
	if result.DroppedLines > 0 {
		s.write(alerts.NewWarning(fmt.Sprintf("%d malformed lines skipped", result.DroppedLines)))
	}
	return nil
}

func (s *Shell) developer(context.Context) error {
	s.success("Games with developer " + s.presets.Developer)
	s.printGames(s.catalog.ByDeveloper(s.presets.Developer))
	return nil
}

func (s *Shell) export(context.Context) error {
	games := s.catalog.ByDeveloper(s.presets.Developer)
	if err := persistence.Export(s.presets.ExportPath, games, persistence.WithSeparator(s.separator)); err != nil {
		return err
	}
	s.success(fmt.Sprintf("File written: %s (%d games)", s.presets.ExportPath, len(games)))
	return nil
}

func (s *Shell) month(context.Context) error {
	games, err := s.catalog.ByReleaseMonth(s.presets.Month)
	if err != nil {
		return err
	}
	s.success("Games released in " + s.presets.Month.String())
	s.printGames(games)
	return nil
}

func (s *Shell) producers(context.Context) error {
	s.success("Games per producer:")
	s.printCounts(catalogs.FieldProducer)
	return nil
}

func (s *Shell) genres(context.Context) error {
	s.success("Games per genre:")
	s.printCounts(catalogs.FieldGenre)
	return nil
}

func (s *Shell) oldest(context.Context) error {
	g, err := s.catalog.Oldest(
		catalogs.Constraint{Field: catalogs.FieldPlatform, Value: s.presets.Platform},
		catalogs.Constraint{Field: catalogs.FieldGenre, Value: s.presets.Genre},
	)
	if err != nil {
		return err
	}
	s.success("Oldest game")
	s.printGames([]catalogs.Game{g})
	return nil
}

func (s *Shell) newest(context.Context) error {
	g, err := s.catalog.Newest()
	if err != nil {
		return err
	}
	s.success("Newest game")
	s.printGames([]catalogs.Game{g})
	return nil
}

func (s *Shell) fewest(context.Context) error {
	producer, err := s.catalog.ProducerWithFewestGames()
	if err != nil {
		return err
	}
	s.success("Producer associated with the fewest games")
	s.println(producer)
	return nil
}

func (s *Shell) average(context.Context) error {
	year, err := s.catalog.AverageReleaseYear()
	if err != nil {
		return err
	}
	s.success(fmt.Sprintf("Average release year: %d", year))
	return nil
}

func (s *Shell) after(context.Context) error {
	s.print("Year: ")
	line, _ := s.readLine()
	year, err := strconv.Atoi(strings.TrimSpace(line))
	if err != nil {
		return &errors.ValidationError{Field: "year", Value: strings.TrimSpace(line), Message: "must be a number"}
	}
	s.success(fmt.Sprintf("Games released after %d", year))
	s.printGames(s.catalog.ReleasedAfter(year))
	return nil
}

func (s *Shell) printGames(games []catalogs.Game) {
	for _, line := range catalogs.ToTable(games, s.separator).Lines() {
		s.println(line)
	}
}

func (s *Shell) printCounts(field catalogs.Field) {
	counts := s.catalog.CountsBy(field)
	if counts == nil {
		return
	}
	for _, entry := range counts.Entries() {
		s.println(fmt.Sprintf("%s: %d", entry.Value, entry.Count))
	}
}

func (s *Shell) readLine() (string, bool) {
	if !s.in.Scan() {
		return "", false
	}
	return s.in.Text(), true
}

func (s *Shell) success(message string) {
	s.write(alerts.NewSuccess(message))
}

// report renders err as one error line. Queries that cannot be answered on
// an empty catalog get a hint to load a file first.
func (s *Shell) report(err error) {
	alert := alerts.FromError(err)
	if errors.IsCannotDetermine(err) && s.catalog.IsEmpty() {
		alert.WithDetails(fmt.Sprintf("no games loaded, use %s to load a file", constants.ShellLoad))
	}
	s.write(alert)
}

func (s *Shell) write(alert *alerts.Alert) {
	if err := s.alerts.WriteAlert(alert); err != nil {
		s.logger.Debug().Err(err).Msg("Failed to write alert")
	}
}

func (s *Shell) print(text string) {
	_, _ = io.WriteString(s.out, text)
}

func (s *Shell) println(text string) {
	s.print(text + "\n")
}
