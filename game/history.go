package game

// History is the append-only log of board snapshots for one game,
// seeded with the initial board. Snapshots are immutable once
// appended; only the log's length changes. History itself is not safe
// for concurrent writers: one game has one logical writer.
type History struct {
	boards []*Board
	hashes []BoardHash
}

// NewHistory starts a log at the given initial board (empty or
// handicap-seeded).
func NewHistory(initial *Board) *History {
	return &History{
		boards: []*Board{initial},
		hashes: []BoardHash{initial.Hash()},
	}
}

// Len returns the number of snapshots, always MoveCount()+1.
func (h *History) Len() int {
	return len(h.boards)
}

// MoveCount returns the number of moves applied since the initial
// board.
func (h *History) MoveCount() int {
	return len(h.boards) - 1
}

// At returns the snapshot after i moves. i must be in [0, Len()).
func (h *History) At(i int) *Board {
	return h.boards[i]
}

// Current returns the latest snapshot.
func (h *History) Current() *Board {
	return h.boards[len(h.boards)-1]
}

// Previous returns the snapshot from immediately before the
// opponent's last move (the ko comparison target) along with its
// hash. ok is false while the log holds fewer than two snapshots.
func (h *History) Previous() (board *Board, hash BoardHash, ok bool) {
	if len(h.boards) < 2 {
		return nil, 0, false
	}
	i := len(h.boards) - 2
	return h.boards[i], h.hashes[i], true
}

// Append records the board resulting from one applied move.
func (h *History) Append(b *Board) {
	h.boards = append(h.boards, b)
	h.hashes = append(h.hashes, b.Hash())
}

// Undo drops the newest snapshot and returns the board that becomes
// current. Undoing at the initial board fails with ErrNoMoves.
func (h *History) Undo() (*Board, error) {
	if len(h.boards) < 2 {
		return nil, ErrNoMoves
	}
	h.boards = h.boards[:len(h.boards)-1]
	h.hashes = h.hashes[:len(h.hashes)-1]
	return h.Current(), nil
}
