package game

import "fmt"

// Position is a 0-indexed board intersection.
type Position struct {
	X int
	Y int
}

func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// neighbors returns the orthogonally adjacent positions of p that lie
// on a size×size board, at most four.
func (p Position) neighbors(size int) []Position {
	candidates := [4]Position{
		{p.X - 1, p.Y},
		{p.X + 1, p.Y},
		{p.X, p.Y - 1},
		{p.X, p.Y + 1},
	}
	adjacent := make([]Position, 0, 4)
	for _, n := range candidates {
		if n.X >= 0 && n.X < size && n.Y >= 0 && n.Y < size {
			adjacent = append(adjacent, n)
		}
	}
	return adjacent
}

// Move is a stone placement or a pass by one color.
type Move struct {
	Pos   Position
	Color Color
	Pass  bool
}

// NewMove returns a stone placement at p by color c.
func NewMove(c Color, p Position) Move {
	return Move{Pos: p, Color: c}
}

// NewPass returns a pass by color c. A pass carries no position.
func NewPass(c Color) Move {
	return Move{Color: c, Pass: true}
}

func (m Move) String() string {
	if m.Pass {
		return fmt.Sprintf("%v pass", m.Color)
	}
	return fmt.Sprintf("%v %v", m.Color, m.Pos)
}
