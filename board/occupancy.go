package board

import (
	"github.com/daystram/magicgen/position"
)

// GenerateOccupancy enumerates every blocker configuration on the relevant
// squares of the ray from pos along d. Pattern bit k maps to the k-th square
// away from pos; the output is in binary counting order. Rays with no relevant
// square yield nil.
func GenerateOccupancy(d position.Direction, pos position.Pos) []Bitboard {
	n := pos.EdgeDistance(d) - 1
	if n <= 0 {
		return nil
	}

	squares := make([]position.Pos, 0, n)
	for next := pos; len(squares) < n; {
		next = next.Next(d)
		if next == position.OutOfBounds {
			panic("board: ray ended before its relevant squares")
		}
		squares = append(squares, next)
	}

	bbs := make([]Bitboard, 0, 1<<n)
	for pattern := 0; pattern < 1<<n; pattern++ {
		var bm Bitboard
		for k, sq := range squares {
			if pattern&(1<<k) != 0 {
				bm.Set(sq)
			}
		}
		bbs = append(bbs, bm)
	}
	return bbs
}

// Occupancies aggregates per-direction occupancy subsets of one square into
// joint configurations.
type Occupancies struct {
	pos         position.Pos
	occupancies []Bitboard
}

func NewOccupancies(pos position.Pos) *Occupancies {
	return &Occupancies{pos: pos}
}

// Combine merges the subsets of direction d into the aggregate by taking the
// OR of every pair. A direction without relevant squares leaves it unchanged.
func (o *Occupancies) Combine(d position.Direction) {
	bbs := GenerateOccupancy(d, o.pos)
	if len(bbs) == 0 {
		return
	}
	if len(o.occupancies) == 0 {
		o.occupancies = bbs
		return
	}
	tmp := make([]Bitboard, 0, len(bbs)*len(o.occupancies))
	for _, bb := range bbs {
		for _, occupancy := range o.occupancies {
			tmp = append(tmp, bb|occupancy)
		}
	}
	o.occupancies = tmp
}

func (o *Occupancies) Bitboards() []Bitboard {
	return o.occupancies
}

func (o *Occupancies) Len() int {
	return len(o.occupancies)
}

// GenerateOccupancies returns the relevant-occupancy set of a slider on pos.
// When no direction has a relevant square the only configuration is the empty
// board, so the result is never empty.
func GenerateOccupancies(pos position.Pos, dirs ...position.Direction) []Bitboard {
	o := NewOccupancies(pos)
	for _, d := range dirs {
		o.Combine(d)
	}
	if o.Len() == 0 {
		return []Bitboard{Empty}
	}
	return o.Bitboards()
}
