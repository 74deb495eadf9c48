package game

import (
	"fmt"
	"strings"
)

// State is an immutable snapshot of a game. Transitions always return a new State.
type State struct {
	board     Board
	positions [2]int  // Cell index per player
	score     int     // A's paints minus B's paints
	turn      Player  // The mover
	colors    []Color // Never written after construction
}

// NewState builds the initial state with A to move.
func NewState(board Board, a, b Position, blocked []Position) (*State, error) {
	if !board.IsValid(a) {
		return nil, fmt.Errorf("player A at %s: %w", a, ErrInvalidPosition)
	}
	if !board.IsValid(b) {
		return nil, fmt.Errorf("player B at %s: %w", b, ErrInvalidPosition)
	}
	if a == b {
		return nil, fmt.Errorf("players share cell %s: %w", a, ErrOccupied)
	}

	s := &State{
		board:     board,
		positions: [2]int{board.IndexOf(a), board.IndexOf(b)},
		turn:      PlayerA,
		colors:    make([]Color, board.Cells()),
	}
	s.colors[s.positions[PlayerA]] = PaintedA
	s.colors[s.positions[PlayerB]] = PaintedB

	for _, p := range blocked {
		if !board.IsValid(p) {
			return nil, fmt.Errorf("blocked cell %s: %w", p, ErrInvalidPosition)
		}
		i := board.IndexOf(p)
		if s.colors[i] == PaintedA || s.colors[i] == PaintedB {
			return nil, fmt.Errorf("blocked cell %s holds a player: %w", p, ErrOccupied)
		}
		s.colors[i] = Blocked
	}
	return s, nil
}

func (s *State) Board() Board {
	return s.board
}

func (s *State) Turn() Player {
	return s.turn
}

func (s *State) Score() int {
	return s.score
}

// Position returns the cell index the player currently stands on.
func (s *State) Position(p Player) int {
	return s.positions[p]
}

func (s *State) Color(index int) Color {
	return s.colors[index]
}

// Painted counts the cells carrying the player's color, including the start cell.
func (s *State) Painted(p Player) int {
	n := 0
	for _, c := range s.colors {
		if c == p.color() {
			n++
		}
	}
	return n
}

// PaintableNeighbors lists the unpainted cells sharing an edge with index.
func (s *State) PaintableNeighbors(index int) []int {
	var result []int
	for _, p := range s.board.neighbors(index) {
		if !s.board.IsValid(p) {
			continue
		}
		if i := s.board.IndexOf(p); s.colors[i] == Unpainted {
			result = append(result, i)
		}
	}
	return result
}

func (s *State) CanMove(p Player) bool {
	return len(s.PaintableNeighbors(s.positions[p])) > 0
}

// IsTerminal reports whether neither player can paint anymore.
func (s *State) IsTerminal() bool {
	return !s.CanMove(PlayerA) && !s.CanMove(PlayerB)
}

// Successors expands the mover's options. A mover without paintable neighbors
// yields a single pass that only hands over the turn.
func (s *State) Successors() []*State {
	neighbors := s.PaintableNeighbors(s.positions[s.turn])
	if len(neighbors) == 0 {
		pass := *s
		pass.turn = s.turn.Opponent()
		return []*State{&pass}
	}

	succs := make([]*State, 0, len(neighbors))
	for _, n := range neighbors {
		succs = append(succs, s.paint(n))
	}
	return succs
}

func (s *State) paint(index int) *State {
	colors := make([]Color, len(s.colors))
	copy(colors, s.colors)
	colors[index] = s.turn.color()

	positions := s.positions
	positions[s.turn] = index

	return &State{
		board:     s.board,
		positions: positions,
		score:     s.score + s.turn.delta(),
		turn:      s.turn.Opponent(),
		colors:    colors,
	}
}

func (s *State) String() string {
	var sb strings.Builder
	for row := 1; row <= s.board.Sides; row++ {
		sb.WriteString(strings.Repeat(" ", s.board.Sides-row))
		for col := 1; col <= rowLength(row); col++ {
			switch s.colors[s.board.IndexOf(Position{Row: row, Col: col})] {
			case PaintedA:
				sb.WriteByte('A')
			case PaintedB:
				sb.WriteByte('B')
			case Blocked:
				sb.WriteByte('#')
			default:
				sb.WriteByte('.')
			}
		}
		sb.WriteByte('\n')
	}
	fmt.Fprintf(&sb, "turn=%s score=%d", s.turn, s.score)
	return sb.String()
}
