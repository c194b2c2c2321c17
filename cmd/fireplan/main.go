package main

import (
	"context"
	"fmt"
	"os"
	"runtime/debug"

	"github.com/rgehrsitz/fireplan/internal/calculation"
	"github.com/rgehrsitz/fireplan/internal/config"
	"github.com/rgehrsitz/fireplan/internal/domain"
	"github.com/rgehrsitz/fireplan/internal/logging"
	"github.com/rgehrsitz/fireplan/internal/store"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// app carries what every command needs once the root pre-run has loaded settings
type app struct {
	settingsPath string
	logLevel     string

	settings *config.Settings
	logger   *zap.Logger
}

func (a *app) setup(*cobra.Command, []string) error {
	settings, err := config.LoadSettings(a.settingsPath)
	if err != nil {
		return err
	}
	logger, err := logging.New(settings.Logging, a.logLevel)
	if err != nil {
		return err
	}
	a.settings = settings
	a.logger = logger
	return nil
}

func (a *app) teardown(*cobra.Command, []string) {
	if a.logger != nil {
		_ = a.logger.Sync()
	}
}

// engine returns a calculation engine that logs through zap
func (a *app) engine() *calculation.CalculationEngine {
	engine := calculation.NewCalculationEngine()
	engine.SetLogger(logging.NewEngineLogger(a.logger))
	return engine
}

// openStore opens the configured profile store; callers close it
func (a *app) openStore(ctx context.Context) (store.ProfileStore, error) {
	return store.Open(ctx, a.settings.Store, a.logger)
}

// loadState reads a snapshot file, logging where it came from
func (a *app) loadState(path string) (*domain.AppState, error) {
	state, err := config.NewInputParser().LoadFromFile(path)
	if err != nil {
		return nil, err
	}
	a.logger.Debug("loaded snapshot", zap.String("path", path))
	return state, nil
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:   "fireplan",
		Short: "Household FIRE planning calculator",
		Long: "Calculates take-home pay, mortgage payoff and the path to financial " +
			"independence from a household snapshot.",
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
		PersistentPostRun: a.teardown,
	}
	root.PersistentFlags().StringVar(&a.settingsPath, "settings", "", "Settings file (default: ./fireplan.yaml or ~/.fireplan/fireplan.yaml)")
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "Override the configured log level (debug, info, warn, error)")

	root.AddCommand(
		calculateCmd(a),
		validateCmd(a),
		initCmd(a),
		compareCmd(a),
		solveCmd(a),
		sensitivityCmd(a),
		profileCmd(a),
		serveCmd(a),
		versionCmd(),
	)
	return root
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "fireplan %s (commit %s, built %s)\n", version, commit, date)
			if info := buildInfo(); info != "" {
				fmt.Fprintln(cmd.OutOrStdout(), info)
			}
		},
	}
}

func buildInfo() string {
	if bi, ok := debug.ReadBuildInfo(); ok && bi != nil {
		return bi.Main.Path + " " + bi.GoVersion
	}
	return ""
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
