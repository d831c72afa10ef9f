package gamemaster

import (
	"fmt"

	"baduk/game"
	"baduk/scoring"
)

// Config holds the settings for starting a game. The engine itself is
// size-agnostic; the platform supports the five standard sizes.
type Config struct {
	BoardSize int
	Rules     scoring.Ruleset
	Handicap  int // 0 for an even game, otherwise 2..9 black stones
}

// DefaultConfig returns an even 19x19 game under Japanese rules.
func DefaultConfig() Config {
	return Config{
		BoardSize: 19,
		Rules:     scoring.Japanese(),
	}
}

var supportedSizes = map[int]bool{9: true, 13: true, 15: true, 19: true, 21: true}

func (c Config) validate() error {
	if !supportedSizes[c.BoardSize] {
		return fmt.Errorf("%w: got %d, want one of 9, 13, 15, 19, 21", game.ErrBoardSize, c.BoardSize)
	}
	if c.Handicap != 0 && (c.Handicap < 2 || c.Handicap > 9) {
		return fmt.Errorf("%w: got %d", game.ErrHandicap, c.Handicap)
	}
	return nil
}
