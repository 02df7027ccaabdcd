package board

import (
	"fmt"
	"math/bits"
	"strings"

	"github.com/daystram/magicgen/position"
)

// Bitboard holds one bit per square, bit i standing for position.Pos(i).
type Bitboard uint64

const (
	Empty Bitboard = 0
	Full  Bitboard = ^Empty
)

func Cell(pos position.Pos) Bitboard {
	return maskCell[pos]
}

func Union(bms ...Bitboard) Bitboard {
	var u Bitboard
	for _, bm := range bms {
		u |= bm
	}
	return u
}

func (bm *Bitboard) Set(pos position.Pos) {
	*bm |= maskCell[pos]
}

func (bm *Bitboard) Unset(pos position.Pos) {
	*bm &^= maskCell[pos]
}

func (bm Bitboard) Has(pos position.Pos) bool {
	return bm&maskCell[pos] != 0
}

// IsSubsetOf reports whether every square of bm is also in other.
func (bm Bitboard) IsSubsetOf(other Bitboard) bool {
	return bm&^other == 0
}

func (bm Bitboard) LS1B() position.Pos {
	return position.Pos(bits.TrailingZeros64(uint64(bm)))
}

func (bm Bitboard) BitCount() uint8 {
	return uint8(bits.OnesCount64(uint64(bm)))
}

// Squares lists the set squares in ascending order.
func (bm Bitboard) Squares() []position.Pos {
	sqs := make([]position.Pos, 0, bm.BitCount())
	for bm != 0 {
		sqs = append(sqs, bm.LS1B())
		bm &= bm - 1
	}
	return sqs
}

func (bm Bitboard) String() string {
	return fmt.Sprintf("0x%016x", uint64(bm))
}

func (bm Bitboard) Dump(sym ...rune) string {
	builder := strings.Builder{}
	for row := position.Pos(Height); row > 0; row-- {
		_, _ = builder.WriteString(fmt.Sprintf(" %d |", row))
		for col := position.Pos(0); col < Width; col++ {
			if bm&maskCell[(row-1)*Width+col] != 0 {
				s := "#"
				if len(sym) == 1 {
					s = string(sym[0])
				}
				_, _ = builder.WriteString(fmt.Sprintf(" %s ", s))
			} else {
				_, _ = builder.WriteString(" . ")
			}
		}
		_, _ = builder.WriteString("\n")
	}
	_, _ = builder.WriteString("    ------------------------\n    ")
	for col := position.Pos(0); col < Width; col++ {
		_, _ = builder.WriteString(fmt.Sprintf(" %s ", col.NotationComponentCol()))
	}
	return builder.String()
}
