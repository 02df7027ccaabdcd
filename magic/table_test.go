package magic

import (
	"testing"

	"github.com/daystram/magicgen/board"
)

func TestTablePut(t *testing.T) {
	t.Parallel()
	tb := newTable(4)
	if !tb.put(3, board.Full) {
		t.Fatal("put into empty slot failed")
	}
	if !tb.isFilled(3) || tb.isFilled(2) {
		t.Error("unexpected validity bitmap")
	}
	if !tb.put(3, board.Full) {
		t.Error("equal attack rejected")
	}
	if tb.put(3, board.Empty) {
		t.Error("different attack accepted")
	}
	if !tb.put(15, board.Empty) {
		t.Error("put of empty attack into empty slot failed")
	}

	snap := tb.snapshot()
	if len(snap) != 16 {
		t.Fatalf("unexpected size: got=%d want=%d", len(snap), 16)
	}
	if snap[3] != board.Full || snap[0] != board.Empty {
		t.Errorf("unexpected snapshot: got=%v", snap)
	}

	tb.reset()
	if tb.isFilled(3) || tb.isFilled(15) {
		t.Error("reset left filled slots")
	}
}

func TestTableFill(t *testing.T) {
	t.Parallel()
	occupancies := []board.Bitboard{0x1, 0x2, 0x4}
	attacks := []board.Bitboard{0x10, 0x10, 0x20}
	tb := newTable(1)

	// number 0 hashes everything to slot 0: benign for 0x1/0x2, fatal for 0x4.
	if tb.fill(occupancies, attacks, 0, 1) {
		t.Error("collision expected")
	}
	if !tb.fill(occupancies[:2], attacks[:2], 0, 1) {
		t.Error("benign collision rejected")
	}
}
