package game

import (
	"fmt"

	"golang.org/x/exp/maps"
)

// MoveResult is the outcome of a legal move: the board after captures
// and the positions removed from it. A pass returns the board
// unchanged with no captures.
type MoveResult struct {
	Board    *Board
	Captures []Position
}

// Validate checks a proposed move against board and history and, when
// legal, returns the resulting board plus captured positions. Checks
// run in a fixed order and short-circuit on the first violation:
// bounds, occupancy, capture resolution, suicide, ko.
//
// Neither board nor history is mutated; committing the result is the
// caller's job.
func Validate(board *Board, history *History, move Move) (*MoveResult, error) {
	if move.Pass {
		return &MoveResult{Board: board}, nil
	}
	if !move.Color.Valid() {
		return nil, fmt.Errorf("%w: got %v", ErrColor, move.Color)
	}

	occupant, err := board.Get(move.Pos)
	if err != nil {
		return nil, err
	}
	if occupant != Empty {
		return nil, fmt.Errorf("%w: %v holds %v", ErrOccupied, move.Pos, occupant)
	}

	placed, err := board.WithStone(move.Pos, move.Color)
	if err != nil {
		return nil, err
	}

	resolved, captured := ResolveCaptures(placed, move.Pos, move.Color)

	// A capture always opens a liberty for the new stone, so only a
	// captureless move can be suicide.
	own, err := GroupAt(resolved, move.Pos)
	if err != nil {
		return nil, err
	}
	if own.LibertyCount() == 0 {
		return nil, fmt.Errorf("%w: %v", ErrSuicide, move)
	}

	// Whole-board ko: the result must not recreate the position from
	// immediately before the opponent's last move. Hash first, then
	// confirm structurally.
	if history != nil {
		if prev, prevHash, ok := history.Previous(); ok {
			if resolved.Hash() == prevHash && resolved.Equal(prev) {
				return nil, fmt.Errorf("%w: %v", ErrKo, move)
			}
		}
	}

	return &MoveResult{Board: resolved, Captures: captured}, nil
}

// ResolveCaptures removes every opponent group adjacent to the stone
// just placed at pos that has no liberties left, in one batch so that
// co-captured groups cannot affect each other's liberty counts. The
// mover's own color is never removed here; self-capture is the
// suicide check's concern.
func ResolveCaptures(board *Board, pos Position, color Color) (*Board, []Position) {
	opponent := color.Opponent()
	captured := make(map[Position]struct{})
	flooded := make(map[Position]struct{})

	for _, adj := range pos.neighbors(board.size) {
		if board.at(adj) != opponent {
			continue
		}
		// Two neighbors can belong to one group; flood it once.
		if _, done := flooded[adj]; done {
			continue
		}
		group, err := GroupAt(board, adj)
		if err != nil {
			continue
		}
		for stone := range group.Stones {
			flooded[stone] = struct{}{}
		}
		if group.LibertyCount() == 0 {
			for stone := range group.Stones {
				captured[stone] = struct{}{}
			}
		}
	}

	if len(captured) == 0 {
		return board, nil
	}
	positions := maps.Keys(captured)
	next, err := board.WithRemoved(positions)
	if err != nil {
		// Captured positions come from the board itself.
		panic(fmt.Sprintf("removing captured stones: %v", err))
	}
	return next, positions
}
