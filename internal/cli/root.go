// Package cli wires the solve and serve commands.
package cli

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"svw.info/sudoku-solver/internal/config"
	"svw.info/sudoku-solver/internal/ports"
	"svw.info/sudoku-solver/internal/solver"
)

var (
	flagConfig   string
	flagLogLevel string
	flagEngine   string
)

func NewRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          "sudoku-solver",
		Short:        "Solve 9x9 Sudoku puzzles from files or over HTTP",
		SilenceUsage: true,
	}
	root.PersistentFlags().StringVar(&flagConfig, "config", "", "TOML config file")
	root.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "debug|info|warn|error (overrides config)")
	root.PersistentFlags().StringVar(&flagEngine, "engine", "", "propagate|backtrack (overrides config)")
	root.AddCommand(newSolveCommand(), newServeCommand())
	return root
}

func Execute() {
	if err := NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

// loadConfig applies flag overrides on top of the config file.
func loadConfig() (config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}
	if flagLogLevel != "" {
		cfg.LogLevel = flagLogLevel
	}
	if flagEngine != "" {
		cfg.Engine = flagEngine
	}
	return cfg, nil
}

func newLogger(level string) *slog.Logger {
	lvl := slog.LevelInfo
	switch strings.ToLower(level) {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	}
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: lvl}))
}

func newSolver(engine string) (ports.Solver, error) {
	switch strings.ToLower(strings.TrimSpace(engine)) {
	case "", "propagate", "propagation":
		return solver.NewEngine(), nil
	case "backtrack", "backtracking":
		return solver.NewBacktracking(), nil
	default:
		return nil, fmt.Errorf("unknown engine %q", engine)
	}
}
