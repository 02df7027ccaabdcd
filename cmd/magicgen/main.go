package main

import (
	"flag"
	"fmt"
	"log"
	"net/http"
	_ "net/http/pprof"
	"os"
	"runtime"

	"github.com/daystram/magicgen/board"
	"github.com/daystram/magicgen/magic"
)

const (
	exitOK = iota
	exitErr
)

var (
	profile = flag.Bool("profile", false, "serve pprof endpoint")

	piece       = flag.String("piece", "rook", "rook, bishop, queen or a comma separated direction list (e.g. N,E,SW)")
	square      = flag.String("square", "", "search a single square (e.g. e4) instead of the whole board")
	bits        = flag.Int("bits", -1, "table bits for -square, defaults to the relevant square count")
	seed        = flag.Uint64("seed", magic.DefaultSeed, "search seed")
	sparsity    = flag.Int("sparsity", board.DefaultSparsity, "random draws ANDed into one candidate")
	maxAttempts = flag.Uint64("maxattempts", magic.DefaultMaxAttempts, "candidates per square before giving up, 0 for unbounded")
	parallel    = flag.Bool("parallel", false, "search squares in parallel")
	workers     = flag.Int("workers", runtime.NumCPU(), "worker count in parallel mode")

	benchRun  = flag.Bool("bench", false, "run the search benchmark over all squares")
	verifyRun = flag.Bool("verify", false, "cross-check tables against an independent move generator")

	emitRun     = flag.Bool("emit", false, "emit Go source for the generated tables")
	emitOut     = flag.String("emit.out", "", "emit destination file, defaults to stdout")
	emitPackage = flag.String("emit.package", "magics", "package name of the emitted source")

	drawOut = flag.String("draw", "", "write an SVG diagram of the -square mask to this file")
	dumpRun = flag.Bool("dump", false, "print the -square mask and open attack")
)

func main() {
	flag.Parse()

	if *profile {
		runProfiler()
	}

	err := realMain(flag.Args())
	if err != nil {
		log.Println(err)
		os.Exit(exitErr)
	}
	os.Exit(exitOK)
}

func runProfiler() {
	go func() {
		addr := "localhost:6060"
		log.Printf("starting pprof endpoint: http://%s/debug/pprof\n", addr)
		_ = http.ListenAndServe(addr, nil)
	}()
}

func realMain(args []string) error {
	if len(args) > 0 {
		return fmt.Errorf("unexpected arguments: %v", args)
	}

	cfg, err := newRunConfig()
	if err != nil {
		return err
	}
	if *benchRun {
		return runBench(cfg, *parallel)
	}

	var entries []*magic.Entry
	if cfg.square != nil {
		if *drawOut != "" {
			if err := draw(*drawOut, *cfg.square, cfg.dirs); err != nil {
				return err
			}
		}
		if *dumpRun {
			dump(*cfg.square, cfg.dirs)
		}
		e, err := searchSquare(cfg, *cfg.square, *bits)
		if err != nil {
			return err
		}
		entries = []*magic.Entry{e}
	} else {
		entries, err = searchBoard(cfg, *parallel, *workers)
		if err != nil {
			return err
		}
	}

	if *verifyRun {
		if err := verify(cfg, entries); err != nil {
			return err
		}
	}
	if *emitRun {
		return emitTo(*emitOut, *emitPackage, cfg, entries)
	}
	return nil
}
