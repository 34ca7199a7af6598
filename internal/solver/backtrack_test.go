package solver

import (
	"context"
	"testing"
	"time"

	"svw.info/sudoku-solver/internal/board"
	"svw.info/sudoku-solver/internal/validator"
)

// A classic, solvable Sudoku.
const classic = "53--7----" +
	"6--195---" +
	"-98----6-" +
	"8---6---3" +
	"4--8-3--1" +
	"7---2---6" +
	"-6----28-" +
	"---419--5" +
	"----8--79"

func TestBacktrackingSolveUnder1s(t *testing.T) {
	b, err := board.Fill(classic)
	if err != nil {
		t.Fatalf("Fill failed: %v", err)
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	st, err := NewBacktracking().Solve(ctx, b)
	if err != nil {
		t.Fatalf("Solve failed: %v (nodes=%d dur=%v)", err, st.Nodes, st.Duration)
	}
	if b.Unknown() != 0 {
		t.Fatalf("board not fully known, %d cells left", b.Unknown())
	}
	ok, conf, err := validator.New().Validate(ctx, b.Render())
	if err != nil || !ok {
		t.Fatalf("invalid solution: err=%v conflicts=%v", err, conf)
	}
	if st.Duration > time.Second {
		t.Fatalf("took too long: %v (>1s)", st.Duration)
	}
	t.Logf("Solved in %v, nodes=%d", st.Duration, st.Nodes)
}

func TestBacktrackingUnsolvable(t *testing.T) {
	// (1,1) and (1,2) both forced to 1 by the 2s below them
	in := "--3456789" +
		"---------" +
		"---------" +
		"2--------" +
		"---------" +
		"---------" +
		"-2-------" +
		"---------" +
		"---------"
	b, err := board.Fill(in)
	if err != nil {
		t.Fatalf("Fill failed: %v", err)
	}
	if _, err := NewBacktracking().Solve(context.Background(), b); err == nil {
		t.Fatalf("expected an error on an unsolvable grid")
	}
}
