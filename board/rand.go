package board

// DefaultSparsity is the number of draws ANDed together by SparseUint64.
const DefaultSparsity = 3

// xorshift state must never be zero.
const fallbackSeed uint64 = 0x9E3779B97F4A7C15

type PseudoRand struct {
	s uint64
}

func NewPseudoRand(seed uint64) *PseudoRand {
	r := &PseudoRand{}
	r.Seed(seed)
	return r
}

func (r *PseudoRand) Seed(seed uint64) {
	if seed == 0 {
		seed = fallbackSeed
	}
	r.s = seed
}

func (r *PseudoRand) SparseUint64() uint64 {
	return r.SparseUint64N(DefaultSparsity)
}

// SparseUint64N ANDs n draws together, so each bit is set with probability 2^-n.
func (r *PseudoRand) SparseUint64N(n int) uint64 {
	v := r.Uint64()
	for i := 1; i < n; i++ {
		v &= r.Uint64()
	}
	return v
}

func (r *PseudoRand) Uint64() uint64 {
	r.s ^= r.s >> 12
	r.s ^= r.s << 25
	r.s ^= r.s >> 27
	return r.s * 2685821657736338717
}
