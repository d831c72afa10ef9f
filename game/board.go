package game

import (
	"encoding/binary"
	"fmt"
	"hash/fnv"
	"strings"
)

const (
	minSize = 2
	maxSize = 25
)

// BoardHash is a 64-bit digest of a board position, used to
// pre-screen ko comparisons before the structural check.
type BoardHash uint64

// Board is an immutable size×size grid of intersections. Every
// transition produces a new Board value; no method mutates the
// receiver, so a Board may be shared freely across concurrent
// validations.
type Board struct {
	size  int
	cells []Color
}

// NewBoard returns an empty board. The engine accepts any size in
// [2,25]; product-level size restrictions belong to the caller.
func NewBoard(size int) (*Board, error) {
	if size < minSize || size > maxSize {
		return nil, fmt.Errorf("%w: got %[2]dx%[2]d", ErrBoardSize, size)
	}
	return &Board{
		size:  size,
		cells: make([]Color, size*size),
	}, nil
}

// Size returns the board's side length.
func (b *Board) Size() int {
	return b.size
}

func (b *Board) contains(p Position) bool {
	return p.X >= 0 && p.X < b.size && p.Y >= 0 && p.Y < b.size
}

func (b *Board) index(p Position) int {
	return p.Y*b.size + p.X
}

// at returns the content of an in-bounds position without checking.
func (b *Board) at(p Position) Color {
	return b.cells[b.index(p)]
}

// Get returns the content of the intersection at p.
func (b *Board) Get(p Position) (Color, error) {
	if !b.contains(p) {
		return Empty, fmt.Errorf("%w: %v on %dx%d board", ErrOutOfBounds, p, b.size, b.size)
	}
	return b.at(p), nil
}

func (b *Board) copyCells() []Color {
	cells := make([]Color, len(b.cells))
	copy(cells, b.cells)
	return cells
}

// WithStone returns a new board with a stone of color c placed at p.
// The receiver is left untouched.
func (b *Board) WithStone(p Position, c Color) (*Board, error) {
	if !c.Valid() {
		return nil, fmt.Errorf("%w: got %v", ErrColor, c)
	}
	if !b.contains(p) {
		return nil, fmt.Errorf("%w: %v on %dx%d board", ErrOutOfBounds, p, b.size, b.size)
	}
	if b.at(p) != Empty {
		return nil, fmt.Errorf("%w: %v holds %v", ErrOccupied, p, b.at(p))
	}
	cells := b.copyCells()
	cells[b.index(p)] = c
	return &Board{size: b.size, cells: cells}, nil
}

// WithRemoved returns a new board with every given position set to
// Empty. Removal happens in a single batch so that intermediate
// states never exist.
func (b *Board) WithRemoved(positions []Position) (*Board, error) {
	cells := b.copyCells()
	for _, p := range positions {
		if !b.contains(p) {
			return nil, fmt.Errorf("%w: %v on %dx%d board", ErrOutOfBounds, p, b.size, b.size)
		}
		cells[b.index(p)] = Empty
	}
	return &Board{size: b.size, cells: cells}, nil
}

// Equal reports structural equality: same size and every intersection
// matching. This is the comparison ko detection relies on.
func (b *Board) Equal(other *Board) bool {
	if other == nil || b.size != other.size {
		return false
	}
	for i, c := range b.cells {
		if other.cells[i] != c {
			return false
		}
	}
	return true
}

// Hash returns an FNV-64a digest of the position. Equal boards hash
// equally; unequal boards almost never collide, so callers compare
// hashes first and confirm with Equal.
func (b *Board) Hash() BoardHash {
	hasher := fnv.New64a()
	binary.Write(hasher, binary.LittleEndian, int64(b.size))
	for _, c := range b.cells {
		binary.Write(hasher, binary.LittleEndian, int64(c))
	}
	return BoardHash(hasher.Sum64())
}

// Stones returns the number of stones of color c on the board.
func (b *Board) Stones(c Color) int {
	count := 0
	for _, cell := range b.cells {
		if cell == c {
			count++
		}
	}
	return count
}

// Neighbors returns the orthogonally adjacent positions of p that lie
// on the board.
func (b *Board) Neighbors(p Position) []Position {
	return p.neighbors(b.size)
}

// String renders the board as one diagram row per line, using '.' for
// empty, 'B' for black and 'W' for white.
func (b *Board) String() string {
	var sb strings.Builder
	for y := 0; y < b.size; y++ {
		for x := 0; x < b.size; x++ {
			switch b.at(Position{x, y}) {
			case Black:
				sb.WriteByte('B')
			case White:
				sb.WriteByte('W')
			default:
				sb.WriteByte('.')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// ParseBoard builds a board from the diagram form produced by String.
// Spaces within rows and blank lines are ignored; rows must be square.
func ParseBoard(diagram string) (*Board, error) {
	var rows []string
	for _, line := range strings.Split(diagram, "\n") {
		line = strings.ReplaceAll(strings.TrimSpace(line), " ", "")
		if line != "" {
			rows = append(rows, line)
		}
	}
	board, err := NewBoard(len(rows))
	if err != nil {
		return nil, err
	}
	for y, row := range rows {
		if len(row) != len(rows) {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrBoardSize, y, len(row), len(rows))
		}
		for x, cell := range row {
			var c Color
			switch cell {
			case 'B', 'X':
				c = Black
			case 'W', 'O':
				c = White
			case '.':
				continue
			default:
				return nil, fmt.Errorf("unknown cell %q at %v", cell, Position{x, y})
			}
			board.cells[board.index(Position{x, y})] = c
		}
	}
	return board, nil
}
