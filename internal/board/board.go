// Package board holds the 9x9 Sudoku grid state and the commit operation
// that places a digit and propagates its exclusion to all peers.
package board

import (
	"errors"
	"fmt"
)

// Size is the edge length of the grid.
const Size = 9

// Placeholder marks a still-unknown cell in the text form of a grid.
const Placeholder = '-'

var (
	// ErrOutOfRange reports a row, column, or digit outside 1..9.
	// It indicates a caller bug, not a property of the puzzle.
	ErrOutOfRange = errors.New("row, column, or digit out of range")

	// ErrUnsolvable reports that a commit would strip the last candidate
	// from some cell, or that the search exhausted every branch. It is the
	// expected outcome for a contradictory puzzle and is always recoverable.
	ErrUnsolvable = errors.New("board is not solvable")

	// ErrTooManyOptions reports a forced commit on a cell that still has
	// more than one candidate.
	ErrTooManyOptions = errors.New("cell has more than one candidate")

	// ErrAlreadyKnown reports a forced commit on a cell whose value is
	// already fixed.
	ErrAlreadyKnown = errors.New("cell value already known")

	// ErrInternal reports an invariant violation that should be unreachable.
	ErrInternal = errors.New("internal invariant violation")
)

// Cell is one position on the grid. It is either known, carrying a fixed
// digit, or unresolved, carrying a non-empty set of candidate digits. The
// candidate set of an unresolved cell is never empty while the board is in
// a consistent state.
type Cell struct {
	known bool
	digit uint8
	cands DigitSet
}

func (c Cell) Known() bool { return c.known }

// Digit returns the fixed value of a known cell, or 0 for an unresolved one.
func (c Cell) Digit() uint8 { return c.digit }

// Candidates returns the remaining candidate set of an unresolved cell.
func (c Cell) Candidates() DigitSet { return c.cands }

// Board is a fixed 81-cell grid plus a count of cells still unresolved.
// Rows and columns are 1-based, matching the usual Sudoku convention.
type Board struct {
	cells   [Size * Size]Cell
	unknown int
}

// New returns a board with every cell unresolved and all nine digits
// possible everywhere.
func New() *Board {
	b := &Board{unknown: Size * Size}
	for i := range b.cells {
		b.cells[i].cands = FullSet()
	}
	return b
}

// Fill builds a board from text. Digits 1-9 commit a known value, '-' and
// '0' consume a position as unknown, and every other character is skipped
// without consuming a position. Positions run left to right, top to bottom.
// A commit that contradicts an earlier one fails with ErrUnsolvable.
func Fill(text string) (*Board, error) {
	b := New()
	pos := 0
	for _, r := range text {
		switch {
		case r >= '1' && r <= '9':
			row, col := pos/Size+1, pos%Size+1
			if err := b.Commit(row, col, uint8(r-'0')); err != nil {
				return nil, fmt.Errorf("fill r%dc%d: %w", row, col, err)
			}
			pos++
		case r == Placeholder || r == '0':
			pos++
		}
	}
	return b, nil
}

// Unknown reports how many cells are still unresolved. It reaches zero
// exactly when the puzzle is fully solved.
func (b *Board) Unknown() int { return b.unknown }

// At returns the cell at the given 1-based coordinates.
// Coordinates must be in 1..9; Commit is the error-checked write path.
func (b *Board) At(row, col int) Cell {
	return b.cells[(row-1)*Size+(col-1)]
}

// Clone returns an independent copy of the board. Branch attempts in the
// solver each work on a clone and discard it on failure.
func (b *Board) Clone() *Board {
	cp := *b
	return &cp
}

// Adopt replaces the board's entire state with that of other.
func (b *Board) Adopt(other *Board) { *b = *other }

// Commit fixes value at (row, col) and removes it from the candidate sets
// of the other cells in the same row, column, and block. It fails with
// ErrUnsolvable when the value is not among the cell's candidates, when the
// cell is already known with a different digit, or when a peer would be
// left with no candidates. Re-committing the digit a cell already holds is
// a no-op.
func (b *Board) Commit(row, col int, value uint8) error {
	if row < 1 || row > Size || col < 1 || col > Size {
		return ErrOutOfRange
	}
	if value < 1 || value > 9 {
		return ErrOutOfRange
	}
	c := &b.cells[(row-1)*Size+(col-1)]
	if c.known {
		if c.digit == value {
			return nil
		}
		return ErrUnsolvable
	}
	if !c.cands.Has(value) {
		return ErrUnsolvable
	}
	c.known = true
	c.digit = value
	c.cands = 0
	b.unknown--

	blk := blockOf(row, col)
	for i := 0; i < Size; i++ {
		if err := b.strip(row, i+1, value); err != nil {
			return err
		}
		if err := b.strip(i+1, col, value); err != nil {
			return err
		}
		br, bc := blockCell(blk, i)
		if err := b.strip(br, bc, value); err != nil {
			return err
		}
	}
	return nil
}

// strip removes value from the candidates of an unresolved cell. An emptied
// set means the assignment being propagated is inconsistent.
func (b *Board) strip(row, col int, value uint8) error {
	c := &b.cells[(row-1)*Size+(col-1)]
	if c.known {
		return nil
	}
	c.cands = c.cands.Remove(value)
	if c.cands == 0 {
		return ErrUnsolvable
	}
	return nil
}

// CommitForced commits the single remaining candidate of a cell. It fails
// with ErrAlreadyKnown if the cell is already fixed, ErrTooManyOptions if
// more than one candidate remains, and ErrUnsolvable if none do.
func (b *Board) CommitForced(row, col int) error {
	if row < 1 || row > Size || col < 1 || col > Size {
		return ErrOutOfRange
	}
	c := b.cells[(row-1)*Size+(col-1)]
	if c.known {
		return ErrAlreadyKnown
	}
	d, ok := c.cands.Sole()
	if !ok {
		if c.cands == 0 {
			return ErrUnsolvable
		}
		return ErrTooManyOptions
	}
	return b.Commit(row, col, d)
}

// Render returns the 81-character row-major text form: digits for known
// cells, the placeholder for unresolved ones. The '?' byte can only appear
// if a known cell holds an impossible digit.
func (b *Board) Render() string {
	out := make([]byte, len(b.cells))
	for i, c := range b.cells {
		switch {
		case !c.known:
			out[i] = Placeholder
		case c.digit >= 1 && c.digit <= 9:
			out[i] = '0' + c.digit
		default:
			out[i] = '?'
		}
	}
	return string(out)
}

// CandidateCounts renders a diagnostic view: 'K' for known cells, otherwise
// the number of remaining candidates. Not used by the solving logic.
func (b *Board) CandidateCounts() string {
	out := make([]byte, len(b.cells))
	for i, c := range b.cells {
		if c.known {
			out[i] = 'K'
		} else {
			out[i] = '0' + byte(c.cands.Count())
		}
	}
	return string(out)
}

// blockOf returns the 1-based index of the 3x3 block containing (row, col).
// Blocks are numbered 1..9 left to right, top to bottom.
func blockOf(row, col int) int {
	return (row-1)/3*3 + (col-1)/3 + 1
}

// blockCell maps a block index and a position 0..8 within the block back to
// grid coordinates, scanning the block row-major.
func blockCell(block, i int) (row, col int) {
	row = (block-1)/3*3 + i/3 + 1
	col = (block-1)%3*3 + i%3 + 1
	return row, col
}
