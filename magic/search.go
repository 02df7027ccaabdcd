package magic

import (
	"fmt"

	"github.com/daystram/magicgen/board"
	"github.com/daystram/magicgen/position"
)

const (
	// DefaultSeed makes searches reproducible unless a seed is given.
	DefaultSeed uint64 = 1

	// DefaultMaxAttempts caps the number of candidates drawn per square.
	DefaultMaxAttempts uint64 = 1 << 22
)

type searchConfig struct {
	rand        *board.PseudoRand
	sparsity    int
	maxAttempts uint64
	progress    func(*Entry)
}

type SearchOption func(*searchConfig)

// WithSeed seeds a fresh generator for the search.
func WithSeed(seed uint64) SearchOption {
	return func(cfg *searchConfig) {
		cfg.rand = board.NewPseudoRand(seed)
	}
}

// WithRand draws candidates from r. r must not be shared between goroutines.
func WithRand(r *board.PseudoRand) SearchOption {
	return func(cfg *searchConfig) {
		cfg.rand = r
	}
}

// WithSparsity sets how many random draws are ANDed into one candidate.
func WithSparsity(n int) SearchOption {
	return func(cfg *searchConfig) {
		cfg.sparsity = n
	}
}

// WithMaxAttempts caps the candidates tried per square; 0 searches forever.
func WithMaxAttempts(n uint64) SearchOption {
	return func(cfg *searchConfig) {
		cfg.maxAttempts = n
	}
}

// WithProgress registers a callback invoked with every completed entry. With
// GenerateParallel it is called from several goroutines.
func WithProgress(f func(*Entry)) SearchOption {
	return func(cfg *searchConfig) {
		cfg.progress = f
	}
}

func newSearchConfig(opts []SearchOption) *searchConfig {
	cfg := &searchConfig{
		sparsity:    board.DefaultSparsity,
		maxAttempts: DefaultMaxAttempts,
	}
	for _, f := range opts {
		f(cfg)
	}
	if cfg.rand == nil {
		cfg.rand = board.NewPseudoRand(DefaultSeed)
	}
	return cfg
}

// Find searches a magic number for a slider on pos moving along dirs, hashing
// into a table of 2^bits slots.
func Find(pos position.Pos, dirs []position.Direction, bits uint8, opts ...SearchOption) (*Entry, error) {
	return find(newSearchConfig(opts), pos, dirs, bits)
}

func find(cfg *searchConfig, pos position.Pos, dirs []position.Direction, bits uint8) (*Entry, error) {
	if len(dirs) == 0 {
		return nil, ErrNoDirections
	}
	if bits > MaxBits {
		return nil, fmt.Errorf("%w: %d exceeds %d", ErrInvalidBits, bits, MaxBits)
	}
	if cfg.sparsity < 1 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidSparsity, cfg.sparsity)
	}

	occupancies := board.GenerateOccupancies(pos, dirs...)
	attacks := make([]board.Bitboard, len(occupancies))
	distinct := make(map[board.Bitboard]struct{})
	for k, occupancy := range occupancies {
		attacks[k] = board.Attack(pos, occupancy, dirs...)
		distinct[attacks[k]] = struct{}{}
	}
	if uint64(len(distinct)) > uint64(1)<<bits {
		return nil, fmt.Errorf("%w: %s needs %d slots, have %d", ErrBitsTooSmall, pos, len(distinct), uint64(1)<<bits)
	}

	t := newTable(bits)
	for attempt := uint64(1); cfg.maxAttempts == 0 || attempt <= cfg.maxAttempts; attempt++ {
		candidate := cfg.rand.SparseUint64N(cfg.sparsity)
		if !t.fill(occupancies, attacks, candidate, bits) {
			continue
		}
		e := &Entry{
			Pos:        pos,
			Directions: append([]position.Direction(nil), dirs...),
			Bits:       bits,
			Number:     candidate,
			Mask:       board.Mask(pos, dirs...),
			Table:      t.snapshot(),
			Attempts:   attempt,
		}
		if cfg.progress != nil {
			cfg.progress(e)
		}
		return e, nil
	}
	return nil, fmt.Errorf("%w: %s after %d attempts", ErrSearchExhausted, pos, cfg.maxAttempts)
}
