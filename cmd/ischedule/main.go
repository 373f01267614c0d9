package main

import (
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"ischedule/internal/config"
	"ischedule/internal/credentials"
	"ischedule/internal/db"
	"ischedule/internal/quotes"
	"ischedule/internal/schedule"
	"ischedule/internal/ui"
)

// Version information set via ldflags
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	// Handle version flag
	if len(os.Args) > 1 && (os.Args[1] == "--version" || os.Args[1] == "-v") {
		fmt.Printf("ischedule %s (commit: %s, built: %s)\n", version, commit, date)
		os.Exit(0)
	}

	cfg, err := config.LoadOrCreate(config.ResolvePath())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading configuration: %v\n", err)
		os.Exit(1)
	}

	log, logFile, err := setupLogger(cfg.LogPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening log file: %v\n", err)
		os.Exit(1)
	}
	defer logFile.Close()
	log.Info().Str("version", version).Msg("starting application")

	dbPath := cfg.DBPath
	if dbPath == "" {
		dbPath, err = db.DefaultPath()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error resolving data directory: %v\n", err)
			os.Exit(1)
		}
	}
	database, err := db.New(dbPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing database: %v\n", err)
		os.Exit(1)
	}
	defer database.Close()

	deps := ui.Deps{
		DB:          database,
		Scheduler:   schedule.New(schedule.DesktopNotifier{}, log),
		Credentials: credentials.NewStore(cfg.KeyringService),
		Quotes:      quotes.NewClient(cfg.QuoteEndpoint),
		Log:         log,
	}

	app := ui.NewApp(deps)
	p := tea.NewProgram(app, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error running application: %v\n", err)
		os.Exit(1)
	}
	log.Info().Msg("application stopped")
}

// setupLogger writes human-readable log lines to a file. Logging to
// stderr would corrupt the alternate screen, so a file it is.
func setupLogger(path string) (zerolog.Logger, *os.File, error) {
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return zerolog.Logger{}, nil, err
		}
		path = filepath.Join(home, ".local", "share", "ischedule", "ischedule.log")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return zerolog.Logger{}, nil, err
	}
	logFile, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return zerolog.Logger{}, nil, err
	}
	log := zerolog.New(zerolog.ConsoleWriter{
		Out: logFile, TimeFormat: "2006-01-02_15:04:05",
	}).With().Timestamp().Logger()
	return log, logFile, nil
}
