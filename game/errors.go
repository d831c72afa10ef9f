package game

import "errors"

var (
	// ErrBoardSize occurs when NewBoard is called with a size outside
	// the supported range.
	ErrBoardSize = errors.New("board size is out of range")
	// ErrOutOfBounds occurs when a position lies outside the board.
	ErrOutOfBounds = errors.New("position is out of bounds")
	// ErrOccupied occurs when a stone is placed on a non-empty
	// intersection.
	ErrOccupied = errors.New("the position is occupied")
	// ErrEmptyPosition occurs when a group is requested at an empty
	// intersection.
	ErrEmptyPosition = errors.New("no stone at position")
	// ErrColor occurs when a move carries a non-playable color.
	ErrColor = errors.New("only black and white stones allowed")
	// ErrSuicide occurs when a move would leave its own group without
	// liberties while capturing nothing.
	ErrSuicide = errors.New("suicide: move leaves its own group without liberties")
	// ErrKo occurs when a move would recreate the board position from
	// immediately before the opponent's last move.
	ErrKo = errors.New("ko: move recreates the previous board position")
	// ErrHandicap occurs when a handicap stone count is unsupported.
	ErrHandicap = errors.New("handicap stone count is out of range")
	// ErrNoMoves occurs when undoing past the initial board.
	ErrNoMoves = errors.New("no moves to undo")
)
