package game

import (
	"fmt"

	"golang.org/x/exp/maps"
)

// Group is a maximal set of same-colored stones connected by
// orthogonal adjacency, together with its liberties. Groups are
// derived from a board on demand, never stored.
type Group struct {
	Color     Color
	Stones    map[Position]struct{}
	Liberties map[Position]struct{}
}

// Size returns the number of stones in the group.
func (g *Group) Size() int {
	return len(g.Stones)
}

// LibertyCount returns the number of distinct empty intersections
// adjacent to the group.
func (g *Group) LibertyCount() int {
	return len(g.Liberties)
}

// Positions returns the group's member positions in no particular
// order.
func (g *Group) Positions() []Position {
	return maps.Keys(g.Stones)
}

// Contains reports whether p is a member of the group.
func (g *Group) Contains(p Position) bool {
	_, ok := g.Stones[p]
	return ok
}

// GroupAt flood-fills the group containing the stone at p. The result
// depends only on the board contents, so two calls on equal boards
// return equal groups.
func GroupAt(b *Board, p Position) (*Group, error) {
	c, err := b.Get(p)
	if err != nil {
		return nil, err
	}
	if c == Empty {
		return nil, fmt.Errorf("%w: %v", ErrEmptyPosition, p)
	}

	group := &Group{
		Color:     c,
		Stones:    make(map[Position]struct{}),
		Liberties: make(map[Position]struct{}),
	}
	queue := []Position{p}
	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		if _, visited := group.Stones[current]; visited {
			continue
		}
		group.Stones[current] = struct{}{}

		for _, adj := range current.neighbors(b.size) {
			switch b.at(adj) {
			case c:
				if _, visited := group.Stones[adj]; !visited {
					queue = append(queue, adj)
				}
			case Empty:
				group.Liberties[adj] = struct{}{}
			}
		}
	}
	return group, nil
}
