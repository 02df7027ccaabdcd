package main

import (
	"errors"
	"fmt"
	"log"

	"github.com/dylhunn/dragontoothmg"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/daystram/magicgen/board"
	"github.com/daystram/magicgen/magic"
	"github.com/daystram/magicgen/position"
)

var errVerify = errors.New("verification failed")

type oracleFunc func(sq uint8, occupied uint64) uint64

// oracleFor returns an independent attack generator for the standard sliders.
func oracleFor(dirs []position.Direction) (oracleFunc, bool) {
	switch {
	case sameDirections(dirs, position.RookDirections):
		return dragontoothmg.CalculateRookMoveBitboard, true
	case sameDirections(dirs, position.BishopDirections):
		return dragontoothmg.CalculateBishopMoveBitboard, true
	case sameDirections(dirs, position.QueenDirections):
		return func(sq uint8, occupied uint64) uint64 {
			return dragontoothmg.CalculateRookMoveBitboard(sq, occupied) |
				dragontoothmg.CalculateBishopMoveBitboard(sq, occupied)
		}, true
	default:
		return nil, false
	}
}

func sameDirections(a, b []position.Direction) bool {
	set := make(map[position.Direction]bool, len(a))
	for _, d := range a {
		set[d] = true
	}
	if len(set) != len(b) {
		return false
	}
	for _, d := range b {
		if !set[d] {
			return false
		}
	}
	return true
}

func verify(cfg *runConfig, entries []*magic.Entry) error {
	log.Printf("============ verify %s [%s] run=%s\n", cfg.name, dirsString(cfg.dirs), cfg.id)
	oracle, ok := oracleFor(cfg.dirs)
	if !ok {
		log.Println("no independent generator for these directions, checking round trip only")
	}

	var checked int
	for _, e := range entries {
		if err := e.Verify(); err != nil {
			log.Println(failStr("FAIL"), err)
			return fmt.Errorf("%w: %s", errVerify, err)
		}
		if !ok {
			continue
		}
		for _, occupancy := range board.GenerateOccupancies(e.Pos, e.Directions...) {
			want := board.Bitboard(oracle(uint8(e.Pos), uint64(occupancy)))
			if got := e.Attacks(occupancy); got != want {
				log.Println(failStr("FAIL"), e.Pos)
				return fmt.Errorf("%w: %s occupancy=%s got=%s want=%s", errVerify, e.Pos, occupancy, got, want)
			}
			checked++
		}
	}
	log.Println(message.NewPrinter(language.English).
		Sprintf("%s squares=%d occupancies=%d", okStr("OK"), len(entries), checked))
	return nil
}
