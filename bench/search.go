package bench

import (
	"context"
	"fmt"
	"runtime"
	"sync/atomic"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/daystram/magicgen/magic"
	"github.com/daystram/magicgen/position"
)

// Stats summarises one whole-board search.
type Stats struct {
	Squares  int
	Slots    uint64
	Attempts uint64
	Elapsed  time.Duration
}

func (s Stats) String() string {
	return message.NewPrinter(language.English).
		Sprintf("squares=%d slots=%d attempts=%d rate=%da/s (%.3fs elapsed)",
			s.Squares, s.Slots, s.Attempts, int(float64(s.Attempts)/s.Elapsed.Seconds()), s.Elapsed.Seconds())
}

// Search runs the magic search for every square along dirs and streams a
// summary line, plus one line per square when verbose, to out.
func Search(dirs []position.Direction, seed uint64, parallel, verbose bool, out chan string) (Stats, error) {
	var run searchFunc
	if parallel {
		run = runSearchParallel
	} else {
		run = runSearch
	}

	var attempts, slots uint64
	progress := func(e *magic.Entry) {
		atomic.AddUint64(&attempts, e.Attempts)
		atomic.AddUint64(&slots, uint64(len(e.Table)))
		if verbose {
			out <- fmt.Sprintf("%s: magic=0x%016x bits=%d attempts=%d", e.Pos, e.Number, e.Bits, e.Attempts)
		}
	}

	start := time.Now()
	entries, err := run(dirs, magic.WithSeed(seed), magic.WithProgress(progress))
	end := time.Now()
	if err != nil {
		return Stats{}, err
	}

	st := Stats{
		Squares:  len(entries),
		Slots:    atomic.LoadUint64(&slots),
		Attempts: atomic.LoadUint64(&attempts),
		Elapsed:  end.Sub(start),
	}
	out <- st.String()
	return st, nil
}

type searchFunc func(dirs []position.Direction, opts ...magic.SearchOption) ([]*magic.Entry, error)

func runSearch(dirs []position.Direction, opts ...magic.SearchOption) ([]*magic.Entry, error) {
	return magic.Generate(dirs, opts...)
}

func runSearchParallel(dirs []position.Direction, opts ...magic.SearchOption) ([]*magic.Entry, error) {
	return magic.GenerateParallel(context.Background(), dirs, runtime.NumCPU(), opts...)
}
