package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rgehrsitz/fireplan/internal/calculation"
	"github.com/rgehrsitz/fireplan/internal/config"
	"github.com/rgehrsitz/fireplan/internal/logging"
	"github.com/rgehrsitz/fireplan/internal/store"
	"github.com/rgehrsitz/fireplan/internal/tui"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	settingsPath := flag.String("settings", "", "Settings file")
	profile := flag.String("profile", "", "Show a stored profile (default: the current profile)")
	flag.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage: fireplan-tui [--settings file] [--profile id | state-file]")
		flag.PrintDefaults()
	}
	flag.Parse()

	settings, err := config.LoadSettings(*settingsPath)
	if err != nil {
		return err
	}
	// The screen belongs to the TUI, so logs only go to a configured file.
	if settings.Logging.OutputFile == "" {
		settings.Logging.Level = "error"
	}
	logger, err := logging.New(settings.Logging, "")
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	engine := calculation.NewCalculationEngine()
	engine.SetLogger(logging.NewEngineLogger(logger))

	var loader tui.Loader
	if path := flag.Arg(0); path != "" {
		if _, err := os.Stat(path); err != nil {
			return fmt.Errorf("snapshot not found: %s", path)
		}
		loader = tui.FileLoader(path)
	} else {
		s, err := store.Open(context.Background(), settings.Store, logger)
		if err != nil {
			return err
		}
		defer s.Close()
		loader = tui.ProfileLoader(s, *profile)
	}

	p := tea.NewProgram(tui.NewModel(loader, engine), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running TUI: %w", err)
	}
	return nil
}
