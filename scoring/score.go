package scoring

import (
	"errors"
	"fmt"

	"baduk/game"
)

var (
	// ErrIncompleteDeadStones occurs when a dead-stone marking names
	// a point that is empty or off the board. Stones left unmarked
	// are simply treated as alive.
	ErrIncompleteDeadStones = errors.New("dead-stone marking names a point without a stone")
	// ErrOpenDame occurs under DameMustBeFilled while a neutral
	// region remains on the board.
	ErrOpenDame = errors.New("neutral points remain unfilled")
)

// Captures counts prisoners taken by each color during play. Dead
// stones marked at game end are added on top by Score.
type Captures struct {
	Black int // stones White lost to Black
	White int // stones Black lost to White
}

// DeadStones marks stones the players agreed are dead at game end.
// Positions mapped to false are equivalent to absent.
type DeadStones map[game.Position]bool

// Result is a final score under one rule set.
type Result struct {
	Black  float64
	White  float64
	Winner game.Color // Empty on a draw
	Margin float64
}

// Tally is the per-color breakdown behind a Result, reported for
// audit by scoring UIs.
type Tally struct {
	TerritoryBlack int
	TerritoryWhite int
	Dame           int
	DeadBlack      int
	DeadWhite      int
}

// Score computes the final score of a finished board. Marked dead
// stones are removed as if captured by the opponent, empty regions
// are assigned as territory or dame, and the rule set's method and
// komi compose the totals.
func Score(board *game.Board, dead DeadStones, rules Ruleset, captures Captures) (Result, error) {
	result, _, err := ScoreDetail(board, dead, rules, captures)
	return result, err
}

// ScoreDetail is Score plus the audit tally.
func ScoreDetail(board *game.Board, dead DeadStones, rules Ruleset, captures Captures) (Result, Tally, error) {
	var tally Tally

	removals := make([]game.Position, 0, len(dead))
	for p, isDead := range dead {
		if !isDead {
			continue
		}
		c, err := board.Get(p)
		if err != nil || c == game.Empty {
			return Result{}, Tally{}, fmt.Errorf("%w: %v", ErrIncompleteDeadStones, p)
		}
		if c == game.Black {
			tally.DeadBlack++
		} else {
			tally.DeadWhite++
		}
		removals = append(removals, p)
	}
	cleared, err := board.WithRemoved(removals)
	if err != nil {
		return Result{}, Tally{}, err
	}

	for _, region := range game.EmptyRegions(cleared) {
		switch region.TerritoryOf() {
		case game.Black:
			tally.TerritoryBlack += region.Size()
		case game.White:
			tally.TerritoryWhite += region.Size()
		default:
			tally.Dame += region.Size()
		}
	}
	if rules.Dame == DameMustBeFilled && tally.Dame > 0 {
		return Result{}, Tally{}, fmt.Errorf("%w: %d under %s rules", ErrOpenDame, tally.Dame, rules.Name)
	}

	var black, white float64
	switch rules.Method {
	case AreaScoring:
		black = float64(cleared.Stones(game.Black) + tally.TerritoryBlack)
		white = float64(cleared.Stones(game.White) + tally.TerritoryWhite)
	case TerritoryScoring:
		// A dead white stone is a prisoner for Black, and vice versa.
		black = float64(tally.TerritoryBlack + captures.Black + tally.DeadWhite)
		white = float64(tally.TerritoryWhite + captures.White + tally.DeadBlack)
	}
	white += rules.Komi

	result := Result{Black: black, White: white, Margin: black - white}
	switch {
	case black > white:
		result.Winner = game.Black
	case white > black:
		result.Winner = game.White
		result.Margin = white - black
	default:
		// Possible only with an integer komi; a draw, not an error.
		result.Winner = game.Empty
		result.Margin = 0
	}
	return result, tally, nil
}
