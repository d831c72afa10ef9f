package game

// Color is the content of one board intersection. Empty marks an
// unoccupied intersection and is not a playable color.
type Color int8

const (
	Empty Color = iota
	Black
	White
)

func (c Color) String() string {
	switch c {
	case Black:
		return "Black"
	case White:
		return "White"
	default:
		return "Empty"
	}
}

// Valid reports whether c is a playable stone color.
func (c Color) Valid() bool {
	return c == Black || c == White
}

// Opponent returns the other playing color. Empty has no opponent and
// is returned unchanged.
func (c Color) Opponent() Color {
	switch c {
	case Black:
		return White
	case White:
		return Black
	default:
		return Empty
	}
}
