package usecase

import (
	"context"
	"errors"
	"fmt"

	"svw.info/sudoku-solver/internal/board"
	"svw.info/sudoku-solver/internal/domain"
	"svw.info/sudoku-solver/internal/ports"
)

type Service struct {
	Solver    ports.Solver
	Validator ports.Validator
	Hinter    ports.Hinter
	Storage   ports.Storage
}

func NewService(s ports.Solver, v ports.Validator, h ports.Hinter, st ports.Storage) *Service {
	return &Service{Solver: s, Validator: v, Hinter: h, Storage: st}
}

var errNotConfigured = errors.New("usecase dependency not configured")

// SolveGrid fills a board from its text form, solves it in place, and
// returns the solved text form. A malformed or self-contradictory grid
// fails at the fill stage; an unsolvable but well-formed grid fails from
// the solver with board.ErrUnsolvable.
func (u *Service) SolveGrid(ctx context.Context, grid string) (string, ports.Stats, error) {
	if u.Solver == nil {
		return "", ports.Stats{}, errNotConfigured
	}
	b, err := board.Fill(grid)
	if err != nil {
		return "", ports.Stats{}, fmt.Errorf("invalid puzzle: %w", err)
	}
	st, err := u.Solver.Solve(ctx, b)
	if err != nil {
		return "", st, err
	}
	return b.Render(), st, nil
}

func (u *Service) Validate(ctx context.Context, grid string) (bool, []domain.CellCoord, error) {
	if u.Validator == nil {
		return false, nil, errNotConfigured
	}
	return u.Validator.Validate(ctx, grid)
}

// HintGrid fills a board from its text form and asks the hinter for the
// next forced move.
func (u *Service) HintGrid(ctx context.Context, grid string) (domain.Hint, bool, error) {
	if u.Hinter == nil {
		return domain.Hint{}, false, errNotConfigured
	}
	b, err := board.Fill(grid)
	if err != nil {
		return domain.Hint{}, false, fmt.Errorf("invalid puzzle: %w", err)
	}
	return u.Hinter.Hint(ctx, b)
}

// Persistence
func (u *Service) Save(ctx context.Context, p *domain.Puzzle) error {
	if u.Storage == nil {
		return errNotConfigured
	}
	return u.Storage.Save(ctx, p)
}
func (u *Service) Load(ctx context.Context, id string) (*domain.Puzzle, error) {
	if u.Storage == nil {
		return nil, errNotConfigured
	}
	return u.Storage.Load(ctx, id)
}
func (u *Service) List(ctx context.Context) ([]domain.PuzzleMeta, error) {
	if u.Storage == nil {
		return nil, errNotConfigured
	}
	return u.Storage.List(ctx)
}
