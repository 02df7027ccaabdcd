package main

import (
	"fmt"
	"log"
	"os"

	"github.com/daystram/magicgen/board"
	"github.com/daystram/magicgen/position"
)

func draw(path string, pos position.Pos, dirs []position.Direction) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	board.Mask(pos, dirs...).DrawSVG(f, pos)
	if err := f.Close(); err != nil {
		return err
	}
	log.Printf("relevant mask of %s written to %s\n", pos, path)
	return nil
}

func dump(pos position.Pos, dirs []position.Direction) {
	fmt.Println("relevant mask:", pos, dirsString(dirs))
	fmt.Println(board.Mask(pos, dirs...).Dump())
	fmt.Println("open attack:")
	fmt.Println(board.Attack(pos, board.Empty, dirs...).Dump())
}
