package main

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/google/uuid"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/daystram/magicgen/bench"
	"github.com/daystram/magicgen/board"
	"github.com/daystram/magicgen/magic"
	"github.com/daystram/magicgen/position"
)

var (
	okStr   = color.New(color.FgGreen).SprintFunc()
	failStr = color.New(color.FgRed, color.Bold).SprintFunc()
)

type runConfig struct {
	id     string
	name   string
	dirs   []position.Direction
	square *position.Pos
	seed   uint64
	opts   []magic.SearchOption
}

func newRunConfig() (*runConfig, error) {
	dirs, err := position.ParseDirections(*piece)
	if err != nil {
		return nil, err
	}
	cfg := &runConfig{
		id:   uuid.NewString(),
		name: pieceName(*piece),
		dirs: dirs,
		seed: *seed,
		opts: []magic.SearchOption{
			magic.WithSeed(*seed),
			magic.WithSparsity(*sparsity),
			magic.WithMaxAttempts(*maxAttempts),
		},
	}
	if *square != "" {
		pos, err := position.NewPosFromNotation(*square)
		if err != nil {
			return nil, fmt.Errorf("square %q: %w", *square, err)
		}
		cfg.square = &pos
	}
	return cfg, nil
}

func pieceName(s string) string {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "rook":
		return "Rook"
	case "bishop":
		return "Bishop"
	case "queen":
		return "Queen"
	default:
		return "Slider"
	}
}

func dirsString(dirs []position.Direction) string {
	names := make([]string, 0, len(dirs))
	for _, d := range dirs {
		names = append(names, d.String())
	}
	return strings.Join(names, ",")
}

func searchSquare(cfg *runConfig, pos position.Pos, bits int) (*magic.Entry, error) {
	log.Printf("============ search %s %s [%s] run=%s\n", cfg.name, pos, dirsString(cfg.dirs), cfg.id)
	if bits < 0 {
		bits = board.RelevantBits(pos, cfg.dirs...)
	}
	if bits > magic.MaxBits {
		return nil, fmt.Errorf("%w: %d exceeds %d", magic.ErrInvalidBits, bits, magic.MaxBits)
	}

	start := time.Now()
	e, err := magic.Find(pos, cfg.dirs, uint8(bits), cfg.opts...)
	end := time.Now()
	if err != nil {
		log.Println(failStr("FAIL"), err)
		return nil, err
	}
	log.Println(message.NewPrinter(language.English).
		Sprintf("%s %s magic=0x%016x bits=%d attempts=%d (%.3fs elapsed)",
			okStr("OK"), e.Pos, e.Number, e.Bits, e.Attempts, end.Sub(start).Seconds()))
	return e, nil
}

func searchBoard(cfg *runConfig, parallel bool, workers int) ([]*magic.Entry, error) {
	log.Printf("============ search %s [%s] run=%s parallel=%v\n", cfg.name, dirsString(cfg.dirs), cfg.id, parallel)
	opts := make([]magic.SearchOption, 0, len(cfg.opts)+1)
	opts = append(opts, cfg.opts...)
	opts = append(opts, magic.WithProgress(func(e *magic.Entry) {
		log.Println(message.NewPrinter(language.English).
			Sprintf("%s %s magic=0x%016x bits=%d attempts=%d", okStr("OK"), e.Pos, e.Number, e.Bits, e.Attempts))
	}))

	start := time.Now()
	var (
		entries []*magic.Entry
		err     error
	)
	if parallel {
		entries, err = magic.GenerateParallel(context.Background(), cfg.dirs, workers, opts...)
	} else {
		entries, err = magic.Generate(cfg.dirs, opts...)
	}
	end := time.Now()
	if err != nil {
		log.Println(failStr("FAIL"), err)
		return nil, err
	}

	var slots, attempts uint64
	for _, e := range entries {
		slots += uint64(len(e.Table))
		attempts += e.Attempts
	}
	log.Println(message.NewPrinter(language.English).
		Sprintf("squares=%d slots=%d attempts=%d (%.3fs elapsed)", len(entries), slots, attempts, end.Sub(start).Seconds()))
	return entries, nil
}

func runBench(cfg *runConfig, parallel bool) error {
	log.Printf("============ bench %s [%s] run=%s\n", cfg.name, dirsString(cfg.dirs), cfg.id)
	out := make(chan string)
	done := make(chan struct{})
	go func() {
		defer close(done)
		for l := range out {
			log.Println(l)
		}
	}()
	_, err := bench.Search(cfg.dirs, cfg.seed, parallel, true, out)
	close(out)
	<-done
	return err
}
