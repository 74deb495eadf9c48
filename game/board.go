package game

import (
	"fmt"
	"math"

	"painters/meta"
)

// Position addresses a cell by 1-indexed row and column.
type Position struct {
	Row int
	Col int
}

func (p Position) String() string {
	return fmt.Sprintf("(%d, %d)", p.Row, p.Col)
}

// Board is an equilateral triangle of side Sides cut into Sides² unit triangles.
// Row r holds the cell indices [(r-1)², r²).
type Board struct {
	Sides int
}

// NewBoard returns a board with the given side length.
func NewBoard(sides int) (Board, error) {
	if sides < meta.MIN_SIDES || sides > meta.MAX_SIDES {
		return Board{}, fmt.Errorf("%w: %d not in [%d, %d]", ErrInvalidSides, sides, meta.MIN_SIDES, meta.MAX_SIDES)
	}
	return Board{Sides: sides}, nil
}

func (b Board) Cells() int {
	return b.Sides * b.Sides
}

// PositionOf converts a cell index to its (row, col) position.
func (b Board) PositionOf(index int) Position {
	row := int(math.Sqrt(float64(index))) + 1
	// Guard against float rounding on perfect squares
	for (row-1)*(row-1) > index {
		row--
	}
	for row*row <= index {
		row++
	}
	prev := row - 1
	return Position{Row: row, Col: index - prev*prev + 1}
}

// IndexOf converts a position to its cell index.
func (b Board) IndexOf(p Position) int {
	prev := p.Row - 1
	return prev*prev + p.Col - 1
}

// PointsUp reports the orientation of the cell at index.
func (b Board) PointsUp(index int) bool {
	if b.PositionOf(index).Row%2 == 1 {
		return index%2 == 0
	}
	return index%2 == 1
}

func (b Board) IsValid(p Position) bool {
	if p.Row < 1 || p.Row > b.Sides || p.Col < 1 {
		return false
	}
	return p.Col <= rowLength(p.Row)
}

func rowLength(row int) int {
	prev := row - 1
	return row*row - prev*prev
}

// neighbors returns the edge-sharing positions of index in left, right, vertical order.
// Positions may lie outside the board.
func (b Board) neighbors(index int) [3]Position {
	p := b.PositionOf(index)
	vertical := Position{Row: p.Row - 1, Col: p.Col - 1}
	if b.PointsUp(index) {
		vertical = Position{Row: p.Row + 1, Col: p.Col + 1}
	}
	return [3]Position{
		{Row: p.Row, Col: p.Col - 1},
		{Row: p.Row, Col: p.Col + 1},
		vertical,
	}
}
