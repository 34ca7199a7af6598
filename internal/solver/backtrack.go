package solver

import (
	"context"
	"time"

	"svw.info/sudoku-solver/internal/board"
	"svw.info/sudoku-solver/internal/ports"
)

// Backtracking is a straightforward recursive solver that ignores candidate
// bookkeeping and re-derives legality per placement. Kept as a cross-check
// for the propagation engine and selectable via configuration.
type Backtracking struct{}

func NewBacktracking() *Backtracking { return &Backtracking{} }

func (s *Backtracking) Solve(ctx context.Context, b *board.Board) (ports.Stats, error) {
	start := time.Now()
	grid := snapshot(b)
	nodes := 0
	var dfs func() bool
	dfs = func() bool {
		if ctx.Err() != nil {
			return false
		}
		r, c, ok := nextEmpty(&grid)
		if !ok {
			return true
		}
		for v := uint8(1); v <= 9; v++ {
			nodes++
			if canPlace(&grid, r, c, v) {
				grid[r][c] = v
				if dfs() {
					return true
				}
				grid[r][c] = 0
			}
		}
		return false
	}
	if !dfs() {
		st := ports.Stats{Nodes: nodes, Duration: time.Since(start)}
		if err := ctx.Err(); err != nil {
			return st, err
		}
		return st, board.ErrUnsolvable
	}

	// Replay the solved grid through the commit path so the board's own
	// invariants hold before its state is adopted.
	solved := board.New()
	for r := 0; r < board.Size; r++ {
		for c := 0; c < board.Size; c++ {
			if err := solved.Commit(r+1, c+1, grid[r][c]); err != nil {
				return ports.Stats{Nodes: nodes, Duration: time.Since(start)}, board.ErrInternal
			}
		}
	}
	b.Adopt(solved)
	return ports.Stats{Nodes: nodes, Duration: time.Since(start)}, nil
}

// snapshot flattens the board's known digits into a plain grid, 0 for
// unresolved cells.
func snapshot(b *board.Board) [board.Size][board.Size]uint8 {
	var grid [board.Size][board.Size]uint8
	for r := 0; r < board.Size; r++ {
		for c := 0; c < board.Size; c++ {
			grid[r][c] = b.At(r+1, c+1).Digit()
		}
	}
	return grid
}

func canPlace(g *[board.Size][board.Size]uint8, r, c int, v uint8) bool {
	for i := 0; i < board.Size; i++ {
		if g[r][i] == v || g[i][c] == v {
			return false
		}
	}
	br, bc := (r/3)*3, (c/3)*3
	for dr := 0; dr < 3; dr++ {
		for dc := 0; dc < 3; dc++ {
			if g[br+dr][bc+dc] == v {
				return false
			}
		}
	}
	return true
}

func nextEmpty(g *[board.Size][board.Size]uint8) (int, int, bool) {
	for r := 0; r < board.Size; r++ {
		for c := 0; c < board.Size; c++ {
			if g[r][c] == 0 {
				return r, c, true
			}
		}
	}
	return 0, 0, false
}
