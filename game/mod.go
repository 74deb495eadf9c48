package game

import "errors"

var (
	ErrInvalidSides    = errors.New("invalid board side length")
	ErrInvalidPosition = errors.New("position outside the board")
	ErrOccupied        = errors.New("cell already occupied")
)

type Player int

const (
	PlayerA Player = iota
	PlayerB
)

func (p Player) Opponent() Player {
	if p == PlayerA {
		return PlayerB
	}
	return PlayerA
}

func (p Player) String() string {
	if p == PlayerA {
		return "A"
	}
	return "B"
}

// Color of a single cell. Colors only ever move away from Unpainted.
type Color uint8

const (
	Unpainted Color = iota
	PaintedA
	PaintedB
	Blocked
)

func (p Player) color() Color {
	if p == PlayerA {
		return PaintedA
	}
	return PaintedB
}

// delta is the score change when p paints a cell (zero-sum, A positive).
func (p Player) delta() int {
	if p == PlayerA {
		return 1
	}
	return -1
}
