package solver

import (
	"context"
	"time"

	"svw.info/sudoku-solver/internal/board"
	"svw.info/sudoku-solver/internal/ports"
)

// Engine alternates exhaustive forced-move propagation with a bounded
// branching search over the least-constrained cell. Branches are explored
// on independent clones of the board; the first branch to solve wins and
// its state is adopted wholesale.
type Engine struct{}

func NewEngine() *Engine { return &Engine{} }

type counters struct {
	nodes   int
	guesses int
}

func (e *Engine) Solve(ctx context.Context, b *board.Board) (ports.Stats, error) {
	start := time.Now()
	var n counters
	err := e.run(ctx, b, &n)
	return ports.Stats{Nodes: n.nodes, Guesses: n.guesses, Duration: time.Since(start)}, err
}

func (e *Engine) run(ctx context.Context, b *board.Board, n *counters) error {
	for b.Unknown() > 0 {
		if err := ctx.Err(); err != nil {
			return err
		}
		// Cheap deterministic phase: commit single-candidate cells one at
		// a time, rescanning after each, since a commit can reduce other
		// cells to a single candidate.
		if row, col, ok := forcedMove(b); ok {
			n.nodes++
			if err := b.CommitForced(row, col); err != nil {
				return err
			}
			continue
		}
		return e.branch(ctx, b, n)
	}
	return nil
}

// forcedMove scans row-major for the first unresolved cell with exactly one
// candidate left.
func forcedMove(b *board.Board) (row, col int, ok bool) {
	for row = 1; row <= board.Size; row++ {
		for col = 1; col <= board.Size; col++ {
			c := b.At(row, col)
			if !c.Known() && c.Candidates().Count() == 1 {
				return row, col, true
			}
		}
	}
	return 0, 0, false
}

// branchCell picks the unresolved cell with the fewest candidates, ties
// broken by earliest row then earliest column. A cell with an empty set
// here means an earlier commit failed to report it, which is a logic
// defect, not a puzzle property.
func branchCell(b *board.Board) (row, col int, set board.DigitSet, err error) {
	best := board.Size + 1
	for r := 1; r <= board.Size; r++ {
		for c := 1; c <= board.Size; c++ {
			cell := b.At(r, c)
			if cell.Known() {
				continue
			}
			n := cell.Candidates().Count()
			if n == 0 {
				return 0, 0, 0, board.ErrInternal
			}
			if n < best {
				best = n
				row, col, set = r, c, cell.Candidates()
			}
		}
	}
	if best > board.Size {
		return 0, 0, 0, board.ErrInternal
	}
	return row, col, set, nil
}

func (e *Engine) branch(ctx context.Context, b *board.Board, n *counters) error {
	row, col, set, err := branchCell(b)
	if err != nil {
		return err
	}
	for _, d := range set.Digits() {
		n.guesses++
		n.nodes++
		trial := b.Clone()
		if err := trial.Commit(row, col, d); err != nil {
			continue
		}
		if err := e.run(ctx, trial, n); err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			continue
		}
		b.Adopt(trial)
		return nil
	}
	return board.ErrUnsolvable
}
