package board

import (
	"github.com/daystram/magicgen/position"
)

const (
	Width      = position.MaxComponentScalar
	Height     = position.MaxComponentScalar
	TotalCells = Width * Height
)

var (
	maskCol = [Width]Bitboard{
		0x_01_01_01_01_01_01_01_01,
		0x_02_02_02_02_02_02_02_02,
		0x_04_04_04_04_04_04_04_04,
		0x_08_08_08_08_08_08_08_08,
		0x_10_10_10_10_10_10_10_10,
		0x_20_20_20_20_20_20_20_20,
		0x_40_40_40_40_40_40_40_40,
		0x_80_80_80_80_80_80_80_80,
	}
	maskRow = [Height]Bitboard{
		0x_00_00_00_00_00_00_00_FF,
		0x_00_00_00_00_00_00_FF_00,
		0x_00_00_00_00_00_FF_00_00,
		0x_00_00_00_00_FF_00_00_00,
		0x_00_00_00_FF_00_00_00_00,
		0x_00_00_FF_00_00_00_00_00,
		0x_00_FF_00_00_00_00_00_00,
		0x_FF_00_00_00_00_00_00_00,
	}
	maskCell [TotalCells]Bitboard

	// maskEdge is the board rim; a blocker there never shortens a ray.
	maskEdge = maskRow[0] | maskRow[Height-1] | maskCol[0] | maskCol[Width-1]
)

func init() {
	initMask()
}

func initMask() {
	for pos := position.Pos(0); pos < TotalCells; pos++ {
		maskCell[pos] = 1 << pos
	}
}

func Row(row position.Pos) Bitboard {
	return maskRow[row]
}

func Col(col position.Pos) Bitboard {
	return maskCol[col]
}
