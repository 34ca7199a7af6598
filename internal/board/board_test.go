package board

import (
	"errors"
	"strings"
	"testing"
)

const fillInput = "4----8---" +
	"----91-8-" +
	"-865-2-3-" +
	"-2-4--9--" +
	"-1-2----6" +
	"367-59---" +
	"-----5---" +
	"7--8---24" +
	"2--93--7-"

func TestBlockOf(t *testing.T) {
	cases := []struct {
		row, col, want int
	}{
		{1, 1, 1}, {2, 1, 1}, {3, 1, 1},
		{3, 6, 2}, {3, 7, 3},
		{6, 7, 6}, {7, 7, 9},
		{5, 5, 5}, {9, 1, 7}, {9, 9, 9},
	}
	for _, tc := range cases {
		if got := blockOf(tc.row, tc.col); got != tc.want {
			t.Errorf("blockOf(%d,%d) = %d, want %d", tc.row, tc.col, got, tc.want)
		}
	}
}

func TestBlockCellRoundTrip(t *testing.T) {
	// every grid coordinate must map into its block and back
	for row := 1; row <= Size; row++ {
		for col := 1; col <= Size; col++ {
			blk := blockOf(row, col)
			found := false
			for i := 0; i < Size; i++ {
				r, c := blockCell(blk, i)
				if blockOf(r, c) != blk {
					t.Fatalf("blockCell(%d,%d) = (%d,%d) escapes its block", blk, i, r, c)
				}
				if r == row && c == col {
					found = true
				}
			}
			if !found {
				t.Fatalf("cell (%d,%d) unreachable from block %d", row, col, blk)
			}
		}
	}
}

func TestNewBoard(t *testing.T) {
	b := New()
	if b.Unknown() != Size*Size {
		t.Fatalf("Unknown() = %d, want %d", b.Unknown(), Size*Size)
	}
	for row := 1; row <= Size; row++ {
		for col := 1; col <= Size; col++ {
			c := b.At(row, col)
			if c.Known() {
				t.Fatalf("cell (%d,%d) known on a fresh board", row, col)
			}
			if c.Candidates().Count() != 9 {
				t.Fatalf("cell (%d,%d) has %d candidates, want 9", row, col, c.Candidates().Count())
			}
		}
	}
}

func TestFillRenderRoundTrip(t *testing.T) {
	b, err := Fill(fillInput)
	if err != nil {
		t.Fatalf("Fill failed: %v", err)
	}
	if got := b.Render(); got != fillInput {
		t.Fatalf("Render = %q, want %q", got, fillInput)
	}
}

func TestFillSkipsNoise(t *testing.T) {
	noisy := strings.Join(strings.Split(fillInput, ""), " ") + "\n"
	b, err := Fill(noisy)
	if err != nil {
		t.Fatalf("Fill failed: %v", err)
	}
	if got := b.Render(); got != fillInput {
		t.Fatalf("Render = %q, want %q", got, fillInput)
	}
}

func TestCommitDecrementsUnknown(t *testing.T) {
	b := New()
	if err := b.Commit(1, 1, 1); err != nil {
		t.Fatalf("Commit failed: %v", err)
	}
	if b.Unknown() != Size*Size-1 {
		t.Fatalf("Unknown() = %d after one commit", b.Unknown())
	}
	// recommitting the same digit is a no-op
	if err := b.Commit(1, 1, 1); err != nil {
		t.Fatalf("recommit failed: %v", err)
	}
	if b.Unknown() != Size*Size-1 {
		t.Fatalf("Unknown() = %d after recommit, want %d", b.Unknown(), Size*Size-1)
	}
}

func TestCommitStripsPeers(t *testing.T) {
	b := New()
	if err := b.Commit(5, 5, 7); err != nil {
		t.Fatalf("Commit failed: %v", err)
	}
	peers := []struct{ row, col int }{
		{5, 1}, {5, 9}, // row
		{1, 5}, {9, 5}, // column
		{4, 4}, {6, 6}, // block
	}
	for _, p := range peers {
		if b.At(p.row, p.col).Candidates().Has(7) {
			t.Errorf("peer (%d,%d) still has 7 as a candidate", p.row, p.col)
		}
	}
	if !b.At(1, 1).Candidates().Has(7) {
		t.Errorf("non-peer (1,1) lost candidate 7")
	}
}

func TestCommitOutOfRange(t *testing.T) {
	b := New()
	for _, c := range []struct{ row, col int }{{0, 1}, {1, 0}, {10, 1}, {1, 10}} {
		if err := b.Commit(c.row, c.col, 5); !errors.Is(err, ErrOutOfRange) {
			t.Errorf("Commit(%d,%d) = %v, want ErrOutOfRange", c.row, c.col, err)
		}
	}
	if err := b.Commit(1, 1, 0); !errors.Is(err, ErrOutOfRange) {
		t.Errorf("Commit digit 0 = %v, want ErrOutOfRange", err)
	}
}

func TestDuplicateInRowFailsFill(t *testing.T) {
	_, err := Fill("55-------" + strings.Repeat("-", 72))
	if !errors.Is(err, ErrUnsolvable) {
		t.Fatalf("Fill = %v, want ErrUnsolvable", err)
	}
}

func TestDuplicateInBlockFailsFill(t *testing.T) {
	in := "5--------" + "-5-------" + strings.Repeat("-", 63)
	_, err := Fill(in)
	if !errors.Is(err, ErrUnsolvable) {
		t.Fatalf("Fill = %v, want ErrUnsolvable", err)
	}
}

func TestCommitForcedErrors(t *testing.T) {
	b := New()
	if err := b.CommitForced(1, 1); !errors.Is(err, ErrTooManyOptions) {
		t.Fatalf("forced commit on fresh cell = %v, want ErrTooManyOptions", err)
	}
	if err := b.Commit(1, 1, 3); err != nil {
		t.Fatalf("Commit failed: %v", err)
	}
	if err := b.CommitForced(1, 1); !errors.Is(err, ErrAlreadyKnown) {
		t.Fatalf("forced commit on known cell = %v, want ErrAlreadyKnown", err)
	}
	if err := b.CommitForced(0, 1); !errors.Is(err, ErrOutOfRange) {
		t.Fatalf("forced commit out of range = %v, want ErrOutOfRange", err)
	}
}

func TestCommitForcedSingleCandidate(t *testing.T) {
	// fill row 1 cols 2..9 so that (1,1) is forced to the missing digit
	b := New()
	for col := 2; col <= 9; col++ {
		if err := b.Commit(1, col, uint8(col)); err != nil {
			t.Fatalf("Commit col %d failed: %v", col, err)
		}
	}
	c := b.At(1, 1)
	if d, ok := c.Candidates().Sole(); !ok || d != 1 {
		t.Fatalf("candidates at (1,1) = %v, want sole 1", c.Candidates().Digits())
	}
	if err := b.CommitForced(1, 1); err != nil {
		t.Fatalf("CommitForced failed: %v", err)
	}
	if got := b.At(1, 1).Digit(); got != 1 {
		t.Fatalf("digit at (1,1) = %d, want 1", got)
	}
}

func TestCandidateCounts(t *testing.T) {
	b := New()
	if err := b.Commit(1, 1, 1); err != nil {
		t.Fatalf("Commit failed: %v", err)
	}
	view := b.CandidateCounts()
	if len(view) != Size*Size {
		t.Fatalf("view length = %d", len(view))
	}
	if view[0] != 'K' {
		t.Errorf("view[0] = %c, want K", view[0])
	}
	if view[1] != '8' { // same row as the commit
		t.Errorf("view[1] = %c, want 8", view[1])
	}
	if view[80] != '9' { // unconstrained corner
		t.Errorf("view[80] = %c, want 9", view[80])
	}
}

func TestCloneIsIndependent(t *testing.T) {
	b, err := Fill(fillInput)
	if err != nil {
		t.Fatalf("Fill failed: %v", err)
	}
	cp := b.Clone()
	if err := cp.Commit(1, 2, 5); err != nil {
		t.Fatalf("Commit on clone failed: %v", err)
	}
	if b.At(1, 2).Known() {
		t.Fatalf("commit on clone leaked into original")
	}
	if b.Unknown() == cp.Unknown() {
		t.Fatalf("unknown counts should differ after clone commit")
	}
}

func TestDigitSet(t *testing.T) {
	s := FullSet()
	if s.Count() != 9 {
		t.Fatalf("full set count = %d", s.Count())
	}
	for d := uint8(1); d <= 8; d++ {
		s = s.Remove(d)
	}
	d, ok := s.Sole()
	if !ok || d != 9 {
		t.Fatalf("Sole = (%d,%v), want (9,true)", d, ok)
	}
	if got := s.Remove(9); got != 0 {
		t.Fatalf("emptied set = %b", got)
	}
}
