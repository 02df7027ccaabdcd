package board

import (
	"strings"
	"testing"

	"github.com/daystram/magicgen/position"
)

func TestBitboardSetUnset(t *testing.T) {
	t.Parallel()
	var bm Bitboard
	bm.Set(0)
	bm.Set(63)
	bm.Set(28)
	if got := bm.BitCount(); got != 3 {
		t.Errorf("unexpected count: got=%d want=%d", got, 3)
	}
	if got := bm.LS1B(); got != 0 {
		t.Errorf("unexpected LS1B: got=%d want=%d", got, 0)
	}
	bm.Unset(0)
	if bm.Has(0) || !bm.Has(28) || !bm.Has(63) {
		t.Errorf("unexpected bitboard: got=%s", bm)
	}
	sqs := bm.Squares()
	if len(sqs) != 2 || sqs[0] != 28 || sqs[1] != 63 {
		t.Errorf("unexpected squares: got=%v", sqs)
	}
}

func TestBitboardSubset(t *testing.T) {
	t.Parallel()
	if !Cell(3).IsSubsetOf(Row(0)) {
		t.Error("d1 expected in rank 1")
	}
	if Cell(8).IsSubsetOf(Row(0)) {
		t.Error("a2 not expected in rank 1")
	}
	if !Empty.IsSubsetOf(Empty) {
		t.Error("empty expected subset of empty")
	}
	if got := Union(Row(0), Col(0), Cell(0)); got.BitCount() != 15 {
		t.Errorf("unexpected union size: got=%d want=%d", got.BitCount(), 15)
	}
}

func TestBitboardDump(t *testing.T) {
	t.Parallel()
	d4, _ := position.NewPosFromNotation("d4")
	dump := Cell(d4).Dump('R')
	lines := strings.Split(dump, "\n")
	if len(lines) != 10 {
		t.Fatalf("unexpected line count: got=%d want=%d", len(lines), 10)
	}
	if !strings.HasPrefix(lines[4], " 4 |") || !strings.Contains(lines[4], " R ") {
		t.Errorf("unexpected rank 4 line: %q", lines[4])
	}
	if strings.Count(dump, "R") != 1 {
		t.Errorf("unexpected symbol count: got=%d want=%d", strings.Count(dump, "R"), 1)
	}
}

func TestBitboardDrawSVG(t *testing.T) {
	t.Parallel()
	e4, _ := position.NewPosFromNotation("e4")
	bm := Mask(e4, position.RookDirections...)

	var sb strings.Builder
	bm.DrawSVG(&sb, e4)
	out := sb.String()
	if !strings.Contains(out, "<svg") || !strings.Contains(out, "</svg>") {
		t.Fatalf("unexpected document: %q", out)
	}
	if got := strings.Count(out, "<circle"); got != int(bm.BitCount()) {
		t.Errorf("unexpected circle count: got=%d want=%d", got, bm.BitCount())
	}
}
