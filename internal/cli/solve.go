package cli

import (
	"fmt"
	"os"

	"github.com/pkg/profile"
	"github.com/spf13/cobra"

	"svw.info/sudoku-solver/internal/board"
	"svw.info/sudoku-solver/internal/puzzlefile"
	"svw.info/sudoku-solver/internal/usecase"
)

func newSolveCommand() *cobra.Command {
	var profiling bool
	cmd := &cobra.Command{
		Use:   "solve <file>...",
		Short: "Solve every puzzle block in the given files",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if profiling {
				defer profile.Start(profile.ProfilePath(".")).Stop()
			}
			return runSolve(cmd, args)
		},
	}
	cmd.Flags().BoolVar(&profiling, "profile", false, "write a CPU profile to the current directory")
	return cmd
}

func runSolve(cmd *cobra.Command, paths []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	logger := newLogger(cfg.LogLevel)
	eng, err := newSolver(cfg.Engine)
	if err != nil {
		return err
	}
	uc := usecase.NewService(eng, nil, nil, nil)

	failures := 0
	for _, path := range paths {
		f, err := os.Open(path)
		if err != nil {
			return err
		}
		blocks, err := puzzlefile.Split(f)
		f.Close()
		if err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
		for i, blk := range blocks {
			label := blk.Label
			if label == "" {
				label = fmt.Sprintf("puzzle %d", i+1)
			}
			out, st, err := uc.SolveGrid(cmd.Context(), blk.Grid)
			if err != nil {
				// Failures are reported per puzzle; the batch keeps going.
				logger.Error("solve failed", "file", path, "puzzle", label, "err", err)
				failures++
				continue
			}
			fmt.Fprintln(cmd.OutOrStdout(), label)
			for r := 0; r < board.Size; r++ {
				fmt.Fprintln(cmd.OutOrStdout(), out[r*board.Size:(r+1)*board.Size])
			}
			logger.Debug("solved", "file", path, "puzzle", label,
				"nodes", st.Nodes, "guesses", st.Guesses, "dur", st.Duration)
		}
	}
	if failures > 0 {
		return fmt.Errorf("%d puzzle(s) could not be solved", failures)
	}
	return nil
}
