package ports

import (
	"context"
	"time"

	"svw.info/sudoku-solver/internal/board"
	"svw.info/sudoku-solver/internal/domain"
)

// Stats captures performance characteristics of a solve.
type Stats struct {
	Nodes    int // committed cells, forced and guessed
	Guesses  int // speculative branch attempts
	Duration time.Duration
}

// Solver drives a board from partially known to fully known, mutating it
// in place. It returns board.ErrUnsolvable when no consistent assignment
// exists from the current state.
type Solver interface {
	Solve(ctx context.Context, b *board.Board) (Stats, error)
}

// Validator performs fast duplicate checks (row/col/block) on the text
// form of a grid, which may be contradictory.
type Validator interface {
	Validate(ctx context.Context, grid string) (ok bool, conflicts []domain.CellCoord, err error)
}

// Hinter returns the next forced move, if one exists.
type Hinter interface {
	Hint(ctx context.Context, b *board.Board) (domain.Hint, bool, error)
}

// Storage persists and retrieves puzzles as JSON.
type Storage interface {
	Save(ctx context.Context, p *domain.Puzzle) error
	Load(ctx context.Context, id string) (*domain.Puzzle, error)
	List(ctx context.Context) ([]domain.PuzzleMeta, error)
}
