// Package magic searches multiplicative hash constants that map every relevant
// occupancy of a sliding piece to a collision-free attack table slot.
package magic

import (
	"errors"
	"fmt"

	"github.com/daystram/magicgen/board"
	"github.com/daystram/magicgen/position"
)

var (
	ErrNoDirections    = errors.New("no directions")
	ErrInvalidBits     = errors.New("invalid shift-bit-count")
	ErrBitsTooSmall    = errors.New("shift-bit-count too small for distinct attacks")
	ErrInvalidSparsity = errors.New("invalid sparsity")
	ErrSearchExhausted = errors.New("search exhausted")
	ErrAttackMismatch  = errors.New("attack table mismatch")
)

// MaxBits bounds the table size at 2^MaxBits slots.
const MaxBits = 24

// Entry is the result of a completed search for one square.
type Entry struct {
	Pos        position.Pos
	Directions []position.Direction
	Bits       uint8
	Number     uint64
	Mask       board.Bitboard
	Table      []board.Bitboard
	Attempts   uint64
}

// Shift is the right shift applied to the hashed product.
func (e *Entry) Shift() uint8 {
	return 64 - e.Bits
}

// Index hashes the relevant part of occupied into a table slot.
func (e *Entry) Index(occupied board.Bitboard) uint64 {
	return index(occupied&e.Mask, e.Number, e.Bits)
}

// Attacks looks up the attack set of the slider for the given board occupancy.
func (e *Entry) Attacks(occupied board.Bitboard) board.Bitboard {
	return e.Table[e.Index(occupied)]
}

// Verify re-hashes every relevant occupancy and checks that the table returns
// the ray-traced attack set.
func (e *Entry) Verify() error {
	if len(e.Table) != 1<<e.Bits {
		return fmt.Errorf("%w: %s table has %d slots, want %d", ErrAttackMismatch, e.Pos, len(e.Table), 1<<e.Bits)
	}
	for _, occupancy := range board.GenerateOccupancies(e.Pos, e.Directions...) {
		want := board.Attack(e.Pos, occupancy, e.Directions...)
		if got := e.Attacks(occupancy); got != want {
			return fmt.Errorf("%w: %s occupancy=%s got=%s want=%s", ErrAttackMismatch, e.Pos, occupancy, got, want)
		}
	}
	return nil
}

func index(occupancy board.Bitboard, number uint64, bits uint8) uint64 {
	return (uint64(occupancy) * number) >> (64 - bits)
}
