package position

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrInvalidDirection represents an unrecognised direction or piece name.
	ErrInvalidDirection = errors.New("invalid direction")
)

type Direction uint8

const (
	North Direction = iota
	South
	East
	West
	NorthEast
	NorthWest
	SouthEast
	SouthWest
)

var (
	// Directions lists every ray direction.
	Directions = []Direction{North, South, East, West, NorthEast, NorthWest, SouthEast, SouthWest}

	RookDirections   = []Direction{North, South, East, West}
	BishopDirections = []Direction{NorthEast, NorthWest, SouthEast, SouthWest}
	QueenDirections  = Directions
)

func (d Direction) String() string {
	switch d {
	case North:
		return "N"
	case South:
		return "S"
	case East:
		return "E"
	case West:
		return "W"
	case NorthEast:
		return "NE"
	case NorthWest:
		return "NW"
	case SouthEast:
		return "SE"
	case SouthWest:
		return "SW"
	default:
		return ""
	}
}

// Delta returns the (row, col) step of d.
func (d Direction) Delta() (Pos, Pos) {
	switch d {
	case North:
		return 1, 0
	case South:
		return -1, 0
	case East:
		return 0, 1
	case West:
		return 0, -1
	case NorthEast:
		return 1, 1
	case NorthWest:
		return 1, -1
	case SouthEast:
		return -1, 1
	case SouthWest:
		return -1, -1
	default:
		panic(fmt.Sprintf("position: unknown direction %d", d))
	}
}

func ParseDirection(s string) (Direction, error) {
	for _, d := range Directions {
		if strings.EqualFold(s, d.String()) {
			return d, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidDirection, s)
}

// ParseDirections accepts a piece name (rook, bishop, queen) or a comma
// separated list of directions such as "N,E,SW".
func ParseDirections(s string) ([]Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "rook":
		return RookDirections, nil
	case "bishop":
		return BishopDirections, nil
	case "queen":
		return QueenDirections, nil
	}

	var dirs []Direction
	seen := make(map[Direction]bool)
	for _, part := range strings.Split(s, ",") {
		d, err := ParseDirection(strings.TrimSpace(part))
		if err != nil {
			return nil, err
		}
		if seen[d] {
			continue
		}
		seen[d] = true
		dirs = append(dirs, d)
	}
	return dirs, nil
}
