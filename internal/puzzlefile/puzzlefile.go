// Package puzzlefile groups the raw lines of a puzzle file into
// 81-character grid blocks. Files hold one or more puzzles, each nine grid
// lines long, optionally preceded by a "Grid NN" label line.
package puzzlefile

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"svw.info/sudoku-solver/internal/board"
)

// Block is one puzzle extracted from a file.
type Block struct {
	Label string // label line preceding the block, if any
	Grid  string // exactly 81 grid characters, row-major
}

const gridChars = board.Size * board.Size

// Split reads puzzle blocks from r. Lines containing "Grid" label the
// following block and are not part of it. Other lines contribute their
// digit, '0', and '-' characters; every nine contributing lines close a
// block. A block with a partial line count or a wrong character count is
// an error, as is a trailing unfinished block.
func Split(r io.Reader) ([]Block, error) {
	var (
		blocks []Block
		label  string
		grid   strings.Builder
		lines  int
	)
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := sc.Text()
		if strings.Contains(line, "Grid") {
			if lines != 0 {
				return nil, fmt.Errorf("label %q interrupts a puzzle after %d lines", strings.TrimSpace(line), lines)
			}
			label = strings.TrimSpace(line)
			continue
		}
		kept := keepGridChars(line)
		if kept == "" {
			continue
		}
		grid.WriteString(kept)
		lines++
		if lines == board.Size {
			if grid.Len() != gridChars {
				return nil, fmt.Errorf("puzzle %q has %d grid characters, want %d", label, grid.Len(), gridChars)
			}
			blocks = append(blocks, Block{Label: label, Grid: grid.String()})
			label = ""
			grid.Reset()
			lines = 0
		}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	if lines != 0 {
		return nil, fmt.Errorf("file ends mid-puzzle after %d lines", lines)
	}
	return blocks, nil
}

func keepGridChars(line string) string {
	var b strings.Builder
	for _, r := range line {
		if (r >= '0' && r <= '9') || r == board.Placeholder {
			b.WriteRune(r)
		}
	}
	return b.String()
}
