// Package gamemaster owns the authoritative board and history for
// active games. It is the single logical writer the rules engine
// expects: every incoming move, human or AI proposed alike, goes
// through game.Validate before it is committed.
package gamemaster

import (
	"errors"
	"fmt"
	"sync"

	"baduk/game"
	"baduk/scoring"

	"github.com/rs/zerolog/log"
)

var (
	// ErrGameOver occurs when playing after two consecutive passes
	// ended the game.
	ErrGameOver = errors.New("game is over - no moves allowed")
	// ErrWrongTurn occurs when a move arrives out of turn.
	ErrWrongTurn = errors.New("not this color's turn")
	// ErrGameRunning occurs when scoring is requested before the game
	// has ended.
	ErrGameRunning = errors.New("game is still running")
)

// Update describes one committed move for external broadcast layers.
type Update struct {
	Move     game.Move
	Board    *game.Board
	Captures []game.Position
}

// UpdateGetter drains at most one pending update without blocking.
type UpdateGetter func() (Update, bool)

const updateBuffer = 16

type moveRecord struct {
	move         game.Move
	captures     int
	passesBefore int
}

// LocalGame serializes commits for one game. Board values handed out
// are immutable, so readers never need the lock the writer holds.
type LocalGame struct {
	mu       sync.Mutex
	cfg      Config
	history  *game.History
	moves    []moveRecord
	next     game.Color
	passes   int
	over     bool
	captures scoring.Captures
	updateCh chan Update
}

// NewLocalGame seeds the initial board (empty or with handicap
// stones) and starts the history log. With a handicap, White moves
// first.
func NewLocalGame(cfg Config) (*LocalGame, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	board, err := game.NewBoard(cfg.BoardSize)
	if err != nil {
		return nil, err
	}
	next := game.Black
	if cfg.Handicap > 0 {
		board, err = game.SeedHandicap(board, cfg.Handicap)
		if err != nil {
			return nil, err
		}
		next = game.White
	}

	log.Info().
		Str("rules", cfg.Rules.Name).
		Int("size", cfg.BoardSize).
		Int("handicap", cfg.Handicap).
		Msg("game started")

	return &LocalGame{
		cfg:      cfg,
		history:  game.NewHistory(board),
		next:     next,
		updateCh: make(chan Update, updateBuffer),
	}, nil
}

// Board returns the current authoritative board.
func (g *LocalGame) Board() *game.Board {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.history.Current()
}

// ToPlay returns the color to move next.
func (g *LocalGame) ToPlay() game.Color {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.next
}

// Over reports whether two consecutive passes have ended the game.
func (g *LocalGame) Over() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.over
}

// MoveCount returns the number of committed moves, passes included.
func (g *LocalGame) MoveCount() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return len(g.moves)
}

// Captures returns the prisoners taken by each color so far.
func (g *LocalGame) Captures() scoring.Captures {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.captures
}

// Play validates and commits one move. Legality failures come back as
// the engine's sentinel errors; the caller rejects the move and
// prompts for another.
func (g *LocalGame) Play(move game.Move) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.over {
		return fmt.Errorf("%w: %v rejected", ErrGameOver, move)
	}
	if move.Color != g.next {
		return fmt.Errorf("%w: got %v, want %v", ErrWrongTurn, move.Color, g.next)
	}

	result, err := game.Validate(g.history.Current(), g.history, move)
	if err != nil {
		log.Debug().Err(err).Msgf("move %v rejected", move)
		return err
	}

	record := moveRecord{move: move, captures: len(result.Captures), passesBefore: g.passes}
	if move.Pass {
		g.passes++
	} else {
		g.passes = 0
		switch move.Color {
		case game.Black:
			g.captures.Black += len(result.Captures)
		case game.White:
			g.captures.White += len(result.Captures)
		}
	}

	g.history.Append(result.Board)
	g.moves = append(g.moves, record)
	g.next = move.Color.Opponent()

	log.Info().
		Int("move", len(g.moves)).
		Stringer("played", move).
		Int("captures", len(result.Captures)).
		Msg("move committed")

	if g.passes >= 2 {
		g.over = true
		log.Info().Int("moves", len(g.moves)).Msg("game over: two consecutive passes")
	}

	g.publish(Update{Move: move, Board: result.Board, Captures: result.Captures})
	return nil
}

// Undo rolls back the latest committed move, reopening a game that
// two passes had ended.
func (g *LocalGame) Undo() error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if len(g.moves) == 0 {
		return game.ErrNoMoves
	}
	if _, err := g.history.Undo(); err != nil {
		return err
	}

	record := g.moves[len(g.moves)-1]
	g.moves = g.moves[:len(g.moves)-1]
	g.passes = record.passesBefore
	g.over = false
	g.next = record.move.Color
	if !record.move.Pass {
		switch record.move.Color {
		case game.Black:
			g.captures.Black -= record.captures
		case game.White:
			g.captures.White -= record.captures
		}
	}

	log.Info().Stringer("undone", record.move).Msg("move undone")
	return nil
}

// Score runs the scoring engine once the game is over, using the
// dead-stone marking collected by the scoring phase.
func (g *LocalGame) Score(dead scoring.DeadStones) (scoring.Result, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if !g.over {
		return scoring.Result{}, ErrGameRunning
	}
	result, err := scoring.Score(g.history.Current(), dead, g.cfg.Rules, g.captures)
	if err != nil {
		return scoring.Result{}, err
	}

	log.Info().
		Float64("black", result.Black).
		Float64("white", result.White).
		Stringer("winner", result.Winner).
		Msg("game scored")
	return result, nil
}

// Updates returns a non-blocking getter over committed moves, in
// order, for whatever broadcast layer sits above.
func (g *LocalGame) Updates() UpdateGetter {
	return func() (Update, bool) {
		select {
		case u := <-g.updateCh:
			return u, true
		default:
			return Update{}, false
		}
	}
}

func (g *LocalGame) publish(u Update) {
	select {
	case g.updateCh <- u:
	default:
		// Consumer lagged; drop the oldest update to keep Play
		// non-blocking.
		select {
		case <-g.updateCh:
		default:
		}
		g.updateCh <- u
	}
}
