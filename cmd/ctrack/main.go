package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/tgienger/ctrack/internal/config"
	"github.com/tgienger/ctrack/internal/db"
	"github.com/tgienger/ctrack/internal/logging"
	"github.com/tgienger/ctrack/internal/store"
	"github.com/tgienger/ctrack/internal/ui"
	"github.com/tgienger/ctrack/internal/ui/views"
)

// Version information set via ldflags
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	memory := false
	for _, arg := range os.Args[1:] {
		switch arg {
		case "--version", "-v":
			fmt.Printf("ctrack %s (commit: %s, built: %s)\n", version, commit, date)
			os.Exit(0)
		case "--memory":
			memory = true
		default:
			config.Exitf("unknown argument %q\nusage: ctrack [--version] [--memory]", arg)
		}
	}

	cfg, err := config.Load()
	if err != nil {
		config.Exitf("Error loading config: %v", err)
	}
	if memory {
		cfg.Persist = false
	}

	logger, logCloser, err := logging.New(logging.Options{
		Path:       cfg.LogFile,
		MaxSizeMB:  cfg.LogMaxSizeMB,
		MaxBackups: cfg.LogMaxBackups,
	})
	if err != nil {
		config.Exitf("Error opening log file: %v", err)
	}
	defer logCloser.Close()
	logger.Printf("starting ctrack %s (persist=%t)", version, cfg.Persist)

	// Load the last snapshot, if any
	var (
		database *db.DB
		initial  store.State
		settings ui.Settings = ui.MemorySettings{}
	)
	if cfg.Persist {
		database, err = db.New(cfg.DBPath)
		if err != nil {
			config.Exitf("Error initializing database: %v", err)
		}
		defer database.Close()

		initial, err = database.LoadState()
		if err != nil {
			// best effort: start empty rather than refuse to run
			logger.Printf("load snapshot from %s: %v", cfg.DBPath, err)
			initial = store.State{}
		}
		settings = database
	}

	s := store.New(initial)
	deps := views.Deps{
		Store:     s,
		Filter:    views.NewFilterBar(),
		Logger:    logger,
		ExportDir: cfg.ExportDir,
	}

	// Create and run the application
	app := ui.NewApp(deps, settings)
	p := tea.NewProgram(app, tea.WithAltScreen())

	_, runErr := p.Run()

	if database != nil {
		if err := database.SaveState(s.State()); err != nil {
			logger.Printf("save snapshot to %s: %v", cfg.DBPath, err)
			fmt.Fprintf(os.Stderr, "Warning: campaigns were not saved: %v\n", err)
		}
	}

	if runErr != nil {
		logger.Printf("run: %v", runErr)
		fmt.Fprintf(os.Stderr, "Error running application: %v\n", runErr)
		os.Exit(1)
	}
	logger.Printf("exiting")
}
