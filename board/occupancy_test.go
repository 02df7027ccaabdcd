package board

import (
	"testing"

	"github.com/daystram/magicgen/position"
)

func TestGenerateOccupancy(t *testing.T) {
	t.Parallel()
	for pos := position.Pos(0); pos < TotalCells; pos++ {
		for _, d := range position.Directions {
			occupancies := GenerateOccupancy(d, pos)
			n := pos.EdgeDistance(d) - 1
			if n <= 0 {
				if len(occupancies) != 0 {
					t.Errorf("unexpected occupancies: pos=%s dir=%s got=%d want=0", pos, d, len(occupancies))
				}
				continue
			}
			if len(occupancies) != 1<<n {
				t.Errorf("unexpected count: pos=%s dir=%s got=%d want=%d", pos, d, len(occupancies), 1<<n)
			}
			mask := MaskBits(d, pos)
			seen := make(map[Bitboard]bool, len(occupancies))
			for _, occupancy := range occupancies {
				if !occupancy.IsSubsetOf(mask) {
					t.Fatalf("occupancy outside mask: pos=%s dir=%s occ=%s mask=%s", pos, d, occupancy, mask)
				}
				if seen[occupancy] {
					t.Fatalf("duplicate occupancy: pos=%s dir=%s occ=%s", pos, d, occupancy)
				}
				seen[occupancy] = true
			}
		}
	}
}

func TestGenerateOccupancyCorner(t *testing.T) {
	t.Parallel()
	a1 := position.NewPos(0, 0)
	occupancies := GenerateOccupancy(position.NorthEast, a1)
	if len(occupancies) != 64 {
		t.Fatalf("unexpected count: got=%d want=%d", len(occupancies), 64)
	}

	var inner Bitboard
	for i := 1; i <= 6; i++ {
		inner.Set(position.NewPos(i, i))
	}
	var union Bitboard
	for _, occupancy := range occupancies {
		if !occupancy.IsSubsetOf(inner) {
			t.Errorf("occupancy outside inner diagonal: got=%s", occupancy)
		}
		union |= occupancy
	}
	if union != inner {
		t.Errorf("unexpected union: got=%s want=%s", union, inner)
	}
}

func TestGenerateOccupancyOrder(t *testing.T) {
	t.Parallel()
	d4, _ := position.NewPosFromNotation("d4")
	occupancies := GenerateOccupancy(position.North, d4)
	want := []string{"", "d5", "d6", "d5d6", "d7", "d5d7", "d6d7", "d5d6d7"}
	if len(occupancies) != len(want) {
		t.Fatalf("unexpected count: got=%d want=%d", len(occupancies), len(want))
	}
	for i, occupancy := range occupancies {
		var got string
		for _, sq := range occupancy.Squares() {
			got += sq.Notation()
		}
		if got != want[i] {
			t.Errorf("unexpected occupancy #%d: got=%q want=%q", i, got, want[i])
		}
	}
}

func TestOccupanciesCombine(t *testing.T) {
	t.Parallel()
	d4, _ := position.NewPosFromNotation("d4")
	north := GenerateOccupancy(position.North, d4)
	east := GenerateOccupancy(position.East, d4)

	o := NewOccupancies(d4)
	o.Combine(position.North)
	o.Combine(position.East)
	got := o.Bitboards()
	if len(got) != len(north)*len(east) {
		t.Fatalf("unexpected count: got=%d want=%d", len(got), len(north)*len(east))
	}

	want := make(map[Bitboard]bool, len(got))
	for _, n := range north {
		for _, e := range east {
			want[n|e] = true
		}
	}
	seen := make(map[Bitboard]bool, len(got))
	for _, occupancy := range got {
		if !want[occupancy] {
			t.Errorf("unexpected occupancy: got=%s", occupancy)
		}
		if seen[occupancy] {
			t.Errorf("duplicate occupancy: got=%s", occupancy)
		}
		seen[occupancy] = true
	}
}

func TestOccupanciesSkipEmpty(t *testing.T) {
	t.Parallel()
	a1 := position.NewPos(0, 0)
	o := NewOccupancies(a1)
	o.Combine(position.South)
	if o.Len() != 0 {
		t.Fatalf("unexpected count: got=%d want=%d", o.Len(), 0)
	}
	o.Combine(position.North)
	o.Combine(position.West)
	if o.Len() != 64 {
		t.Errorf("unexpected count: got=%d want=%d", o.Len(), 64)
	}
}

func TestGenerateOccupancies(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		pos  string
		dirs []position.Direction
		want int
	}{
		{name: "rook d4", pos: "d4", dirs: position.RookDirections, want: 1 << 10},
		{name: "rook a1", pos: "a1", dirs: position.RookDirections, want: 1 << 12},
		{name: "bishop d4", pos: "d4", dirs: position.BishopDirections, want: 1 << 9},
		{name: "queen d4", pos: "d4", dirs: position.QueenDirections, want: 1 << 19},
		{name: "no relevant squares", pos: "h8", dirs: []position.Direction{position.North, position.East}, want: 1},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			pos, _ := position.NewPosFromNotation(tt.pos)
			got := GenerateOccupancies(pos, tt.dirs...)
			if len(got) != tt.want {
				t.Fatalf("unexpected count: got=%d want=%d", len(got), tt.want)
			}
			mask := Mask(pos, tt.dirs...)
			var union Bitboard
			for _, occupancy := range got {
				union |= occupancy
			}
			if union != mask {
				t.Errorf("unexpected union: got=%s want=%s", union, mask)
			}
		})
	}
}
