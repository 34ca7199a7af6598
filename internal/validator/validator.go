package validator

import (
	"context"
	"fmt"

	"svw.info/sudoku-solver/internal/board"
	"svw.info/sudoku-solver/internal/domain"
)

// FastValidator scans the known digits of a grid for duplicates within a
// row, column, or block. It works on the raw text form so that even a
// contradictory grid, which the board's commit path rejects, can be
// inspected and its conflicts reported.
type FastValidator struct{}

func New() *FastValidator { return &FastValidator{} }

func (v *FastValidator) Validate(ctx context.Context, grid string) (bool, []domain.CellCoord, error) {
	g, err := parseGrid(grid)
	if err != nil {
		return false, nil, err
	}
	conf := make([]domain.CellCoord, 0, 8)

	// unit is any set of nine cells that must hold distinct digits.
	checkUnit := func(cells [board.Size]domain.CellCoord) {
		seen := 0
		for _, cc := range cells {
			val := g[cc.Row-1][cc.Col-1]
			if val == 0 {
				continue
			}
			bit := 1 << val
			if seen&bit != 0 {
				conf = append(conf, cc)
			}
			seen |= bit
		}
	}

	for i := 1; i <= board.Size; i++ {
		var row, col, blk [board.Size]domain.CellCoord
		for j := 1; j <= board.Size; j++ {
			row[j-1] = domain.CellCoord{Row: i, Col: j}
			col[j-1] = domain.CellCoord{Row: j, Col: i}
			br := (i-1)/3*3 + (j-1)/3 + 1
			bc := (i-1)%3*3 + (j-1)%3 + 1
			blk[j-1] = domain.CellCoord{Row: br, Col: bc}
		}
		checkUnit(row)
		checkUnit(col)
		checkUnit(blk)
	}
	return len(conf) == 0, conf, nil
}

// parseGrid reads the 81-character text form without constraint
// propagation, 0 for unknown cells. Unrecognized characters are skipped,
// matching the fill alphabet.
func parseGrid(text string) ([board.Size][board.Size]uint8, error) {
	var g [board.Size][board.Size]uint8
	pos := 0
	for _, r := range text {
		switch {
		case r >= '1' && r <= '9':
			if pos >= board.Size*board.Size {
				return g, fmt.Errorf("grid has more than %d positions", board.Size*board.Size)
			}
			g[pos/board.Size][pos%board.Size] = uint8(r - '0')
			pos++
		case r == board.Placeholder || r == '0':
			pos++
		}
	}
	if pos != board.Size*board.Size {
		return g, fmt.Errorf("grid has %d positions, want %d", pos, board.Size*board.Size)
	}
	return g, nil
}
