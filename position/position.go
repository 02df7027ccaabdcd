package position

import (
	"errors"
	"fmt"
)

const (
	// MaxComponentScalar is the maximum component scalar the position system supports.
	MaxComponentScalar Pos = 8

	// TotalCells is the number of squares on the board.
	TotalCells = MaxComponentScalar * MaxComponentScalar

	// OutOfBounds is returned by Next when a step leaves the board.
	OutOfBounds Pos = -1
)

var (
	// ErrInvalidNotation represents an invalid notation error.
	ErrInvalidNotation = errors.New("invalid notation")
)

// Pos is a row-major square index: a1 is 0, h1 is 7, a8 is 56.
type Pos int8

func NewPos(row, col int) Pos {
	return Pos(row)*MaxComponentScalar + Pos(col)
}

func NewPosFromNotation(n string) (Pos, error) {
	col, row, err := notationToColRow(n)
	if err != nil {
		return 0, err
	}
	return MaxComponentScalar*row + col, nil
}

func (p Pos) String() string {
	return p.Notation()
}

func (p Pos) Notation() string {
	if !p.Valid() {
		return ""
	}
	return string(rune('a'+p.Col())) + string(rune('1'+p.Row()))
}

func (p Pos) Valid() bool {
	return 0 <= p && p < TotalCells
}

func (p Pos) Row() Pos {
	return p / MaxComponentScalar
}

func (p Pos) Col() Pos {
	return p % MaxComponentScalar
}

// Next returns the square one step away in direction d, or OutOfBounds.
func (p Pos) Next(d Direction) Pos {
	p.mustBeValid()
	dRow, dCol := d.Delta()
	row, col := p.Row()+dRow, p.Col()+dCol
	if row < 0 || row >= MaxComponentScalar || col < 0 || col >= MaxComponentScalar {
		return OutOfBounds
	}
	return row*MaxComponentScalar + col
}

// EdgeDistance returns the number of steps from p to the board edge along d.
func (p Pos) EdgeDistance(d Direction) int {
	p.mustBeValid()
	inv := func(x Pos) Pos { return MaxComponentScalar - 1 - x }
	row, col := p.Row(), p.Col()

	var dist Pos
	switch d {
	case North:
		dist = inv(row)
	case South:
		dist = row
	case East:
		dist = inv(col)
	case West:
		dist = col
	case NorthEast:
		dist = min(inv(row), inv(col))
	case NorthWest:
		dist = min(inv(row), col)
	case SouthEast:
		dist = min(row, inv(col))
	case SouthWest:
		dist = min(row, col)
	default:
		panic(fmt.Sprintf("position: unknown direction %d", d))
	}
	if dist < 0 || dist >= MaxComponentScalar {
		panic(fmt.Sprintf("position: edge distance %d out of range for %s %s", dist, p, d))
	}
	return int(dist)
}

func (p Pos) mustBeValid() {
	if !p.Valid() {
		panic(fmt.Sprintf("position: square %d off board", p))
	}
}

func notationToColRow(n string) (Pos, Pos, error) {
	if len(n) != 2 {
		return 0, 0, ErrInvalidNotation
	}
	pCol, err := notationToCol(n[0])
	if err != nil {
		return 0, 0, err
	}
	pRow, err := notationToRow(n[1])
	if err != nil {
		return 0, 0, err
	}
	return pCol, pRow, nil
}

func notationToCol(x byte) (Pos, error) {
	pX := Pos(x - 'a')
	if pX < 0 || MaxComponentScalar <= pX {
		return 0, ErrInvalidNotation
	}
	return pX, nil
}

func notationToRow(y byte) (Pos, error) {
	pY := Pos(y-'0') - 1
	if pY < 0 || MaxComponentScalar <= pY {
		return 0, ErrInvalidNotation
	}
	return pY, nil
}

func (p Pos) NotationComponentCol() string {
	if p < 0 || MaxComponentScalar <= p {
		return ""
	}
	return string(rune('a' + p))
}

func (p Pos) NotationComponentRow() string {
	if p < 0 || MaxComponentScalar <= p {
		return ""
	}
	return string(rune('0' + p + 1))
}
