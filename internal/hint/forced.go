// Package hint suggests the next logical step for a human solver.
package hint

import (
	"context"
	"fmt"

	"svw.info/sudoku-solver/internal/board"
	"svw.info/sudoku-solver/internal/domain"
)

// ForcedMoves is a minimal Hinter that reads the board's own candidate
// bookkeeping and reports the first cell whose set has shrunk to one digit.
type ForcedMoves struct{}

func NewForcedMoves() *ForcedMoves { return &ForcedMoves{} }

func (h *ForcedMoves) Hint(ctx context.Context, b *board.Board) (domain.Hint, bool, error) {
	for r := 1; r <= board.Size; r++ {
		for c := 1; c <= board.Size; c++ {
			cell := b.At(r, c)
			if cell.Known() {
				continue
			}
			if d, ok := cell.Candidates().Sole(); ok {
				return domain.Hint{
					Message: fmt.Sprintf("Forced move: only %d fits here", d),
					Cell:    domain.CellCoord{Row: r, Col: c},
					Digit:   d,
				}, true, nil
			}
		}
	}
	return domain.Hint{}, false, nil
}
