package board

import (
	"github.com/daystram/magicgen/position"
)

// MaskBits returns the squares strictly between pos and the board edge along d.
// The edge square itself is left out since a piece standing there cannot block
// anything further.
func MaskBits(d position.Direction, pos position.Pos) Bitboard {
	var bm Bitboard
	for next := pos.Next(d); next != position.OutOfBounds && next.Next(d) != position.OutOfBounds; next = next.Next(d) {
		bm.Set(next)
	}
	return bm
}

// GenerateAttack walks from pos along d and returns every square reached,
// stopping on (and including) the first square set in occupancy.
func GenerateAttack(d position.Direction, pos position.Pos, occupancy Bitboard) Bitboard {
	var bm Bitboard
	for next := pos.Next(d); next != position.OutOfBounds; next = next.Next(d) {
		bm.Set(next)
		if occupancy.Has(next) {
			break
		}
	}
	return bm
}

// Mask is the relevant-occupancy mask of a slider on pos moving along dirs.
func Mask(pos position.Pos, dirs ...position.Direction) Bitboard {
	var bm Bitboard
	for _, d := range dirs {
		bm |= MaskBits(d, pos)
	}
	return bm
}

// Attack is the union of the per-direction attacks, each truncated by the
// same occupancy.
func Attack(pos position.Pos, occupancy Bitboard, dirs ...position.Direction) Bitboard {
	var bm Bitboard
	for _, d := range dirs {
		bm |= GenerateAttack(d, pos, occupancy)
	}
	return bm
}

// RelevantBits counts the squares that can hold a blocker for a slider on pos,
// which is the smallest table size (as a power of two) a magic can address.
func RelevantBits(pos position.Pos, dirs ...position.Direction) int {
	var n int
	for _, d := range dirs {
		if k := pos.EdgeDistance(d) - 1; k > 0 {
			n += k
		}
	}
	return n
}
