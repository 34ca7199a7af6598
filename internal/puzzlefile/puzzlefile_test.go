package puzzlefile

import (
	"strings"
	"testing"
)

const twoPuzzles = `Grid 01
003020600
900305001
001806400
008102900
700000008
006708200
002609500
800203009
005010300
Grid 02
200080300
060070084
030500209
000105408
000000000
402706000
301007040
720040060
004010003
`

func TestSplitLabelled(t *testing.T) {
	blocks, err := Split(strings.NewReader(twoPuzzles))
	if err != nil {
		t.Fatalf("Split failed: %v", err)
	}
	if len(blocks) != 2 {
		t.Fatalf("got %d blocks, want 2", len(blocks))
	}
	if blocks[0].Label != "Grid 01" || blocks[1].Label != "Grid 02" {
		t.Fatalf("labels = %q, %q", blocks[0].Label, blocks[1].Label)
	}
	for i, b := range blocks {
		if len(b.Grid) != 81 {
			t.Fatalf("block %d grid length = %d", i, len(b.Grid))
		}
	}
	if !strings.HasPrefix(blocks[0].Grid, "003020600") {
		t.Fatalf("block 0 grid starts %q", blocks[0].Grid[:9])
	}
}

func TestSplitUnlabelled(t *testing.T) {
	in := strings.Join(strings.Split(twoPuzzles, "\n")[1:10], "\n")
	blocks, err := Split(strings.NewReader(in))
	if err != nil {
		t.Fatalf("Split failed: %v", err)
	}
	if len(blocks) != 1 || blocks[0].Label != "" {
		t.Fatalf("blocks = %+v", blocks)
	}
}

func TestSplitSkipsDecoration(t *testing.T) {
	in := "1,2,3;4,5,6;7,8,9;\n"
	in = strings.Repeat(in, 9)
	blocks, err := Split(strings.NewReader(in))
	if err != nil {
		t.Fatalf("Split failed: %v", err)
	}
	if len(blocks) != 1 {
		t.Fatalf("got %d blocks, want 1", len(blocks))
	}
	if !strings.HasPrefix(blocks[0].Grid, "123456789") {
		t.Fatalf("grid starts %q", blocks[0].Grid[:9])
	}
}

func TestSplitTrailingPartialBlock(t *testing.T) {
	in := "003020600\n900305001\n"
	if _, err := Split(strings.NewReader(in)); err == nil {
		t.Fatalf("expected an error for a mid-puzzle EOF")
	}
}

func TestSplitShortLine(t *testing.T) {
	bad := strings.Replace(twoPuzzles, "003020600", "00302060", 1)
	if _, err := Split(strings.NewReader(bad)); err == nil {
		t.Fatalf("expected an error for a short grid line")
	}
}
