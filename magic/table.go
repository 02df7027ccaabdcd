package magic

import (
	"github.com/daystram/magicgen/board"
)

// table is a candidate attack table. Occupied slots are tracked in a separate
// bitmap so that no attack value has to double as an "empty" marker.
type table struct {
	attacks []board.Bitboard
	filled  []uint64
}

func newTable(bits uint8) *table {
	size := uint64(1) << bits
	return &table{
		attacks: make([]board.Bitboard, size),
		filled:  make([]uint64, (size+63)/64),
	}
}

func (t *table) reset() {
	for i := range t.filled {
		t.filled[i] = 0
	}
}

func (t *table) isFilled(i uint64) bool {
	return t.filled[i>>6]&(1<<(i&63)) != 0
}

// put stores attack at slot i. It fails only when the slot already holds a
// different attack set.
func (t *table) put(i uint64, attack board.Bitboard) bool {
	if !t.isFilled(i) {
		t.filled[i>>6] |= 1 << (i & 63)
		t.attacks[i] = attack
		return true
	}
	return t.attacks[i] == attack
}

// fill tries number against every occupancy/attack pair, bailing out on the
// first real collision.
func (t *table) fill(occupancies, attacks []board.Bitboard, number uint64, bits uint8) bool {
	t.reset()
	for k, occupancy := range occupancies {
		if !t.put(index(occupancy, number, bits), attacks[k]) {
			return false
		}
	}
	return true
}

// snapshot copies the table out, leaving unused slots empty.
func (t *table) snapshot() []board.Bitboard {
	out := make([]board.Bitboard, len(t.attacks))
	for i := range out {
		if t.isFilled(uint64(i)) {
			out[i] = t.attacks[i]
		}
	}
	return out
}
