package scoring

import (
	"testing"

	"baduk/game"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustParse(t *testing.T, diagram string) *game.Board {
	t.Helper()
	b, err := game.ParseBoard(diagram)
	require.NoError(t, err)
	return b
}

// Black wall on the left, white wall on the right, one shared column
// of dame in the middle.
const walls = `
	. B . W .
	. B . W .
	. B . W .
	. B . W .
	. B . W .
`

func TestScoreArea(t *testing.T) {
	board := mustParse(t, walls)

	result, tally, err := ScoreDetail(board, nil, Chinese().WithKomi(0), Captures{})
	require.NoError(t, err)

	assert.Equal(t, 5, tally.TerritoryBlack)
	assert.Equal(t, 5, tally.TerritoryWhite)
	assert.Equal(t, 5, tally.Dame)

	// Area: stones plus territory; dame scores to neither side.
	assert.Equal(t, 10.0, result.Black)
	assert.Equal(t, 10.0, result.White)
	assert.Equal(t, game.Empty, result.Winner, "zero komi makes this a draw")
	assert.Equal(t, 0.0, result.Margin)

	// Every intersection is accounted for.
	total := int(result.Black+result.White) + tally.Dame
	assert.Equal(t, board.Size()*board.Size(), total)
}

func TestScoreAreaKomiDecides(t *testing.T) {
	board := mustParse(t, walls)

	result, err := Score(board, nil, Chinese(), Captures{})
	require.NoError(t, err)
	assert.Equal(t, game.White, result.Winner)
	assert.Equal(t, 7.5, result.Margin)

	result, err = Score(board, nil, Ing(), Captures{})
	require.NoError(t, err)
	assert.Equal(t, 18.0, result.White, "Ing komi is 8")
}

func TestScoreTerritory(t *testing.T) {
	board := mustParse(t, walls)

	// Japanese counting: stones on the board are not scored, but
	// prisoners taken during play are.
	result, err := Score(board, nil, Japanese().WithKomi(0), Captures{Black: 3, White: 1})
	require.NoError(t, err)
	assert.Equal(t, 8.0, result.Black)
	assert.Equal(t, 6.0, result.White)
	assert.Equal(t, game.Black, result.Winner)
	assert.Equal(t, 2.0, result.Margin)

	// Korean rules count the same way.
	korean, err := Score(board, nil, Korean().WithKomi(0), Captures{Black: 3, White: 1})
	require.NoError(t, err)
	assert.Equal(t, result, korean)
}

func TestScoreDeadStones(t *testing.T) {
	// A lone white stone inside Black's sphere; everything else is
	// Black's once it is marked dead.
	board := mustParse(t, `
		W . B . .
		. . B . .
		. . B . .
		. . B . .
		. . B . .
	`)
	dead := DeadStones{{X: 0, Y: 0}: true}

	t.Run("area", func(t *testing.T) {
		result, tally, err := ScoreDetail(board, dead, Chinese().WithKomi(0), Captures{})
		require.NoError(t, err)
		assert.Equal(t, 1, tally.DeadWhite)
		assert.Equal(t, 20, tally.TerritoryBlack)
		assert.Equal(t, 25.0, result.Black)
		assert.Equal(t, 0.0, result.White)
	})

	t.Run("territory counts the dead stone as a prisoner", func(t *testing.T) {
		result, err := Score(board, dead, Japanese().WithKomi(0), Captures{})
		require.NoError(t, err)
		assert.Equal(t, 21.0, result.Black)
		assert.Equal(t, 0.0, result.White)
	})

	t.Run("unmarked stones are treated as alive", func(t *testing.T) {
		result, tally, err := ScoreDetail(board, nil, Chinese().WithKomi(0), Captures{})
		require.NoError(t, err)
		assert.Equal(t, 0, tally.DeadWhite)
		// The left region now borders both colors and goes neutral;
		// the right one is still Black's.
		assert.Equal(t, 9, tally.Dame)
		assert.Equal(t, 10, tally.TerritoryBlack)
		assert.Equal(t, 15.0, result.Black)
		assert.Equal(t, 1.0, result.White)
	})

	t.Run("false markings are ignored", func(t *testing.T) {
		result, err := Score(board, DeadStones{{X: 0, Y: 0}: false}, Chinese().WithKomi(0), Captures{})
		require.NoError(t, err)
		assert.Equal(t, 15.0, result.Black)
	})
}

func TestScoreIncompleteDeadStoneMarking(t *testing.T) {
	board := mustParse(t, walls)

	_, err := Score(board, DeadStones{{X: 0, Y: 0}: true}, Japanese(), Captures{})
	require.ErrorIs(t, err, ErrIncompleteDeadStones, "marked point holds no stone")

	_, err = Score(board, DeadStones{{X: 9, Y: 9}: true}, Japanese(), Captures{})
	require.ErrorIs(t, err, ErrIncompleteDeadStones, "marked point is off the board")
}

func TestScoreDamePolicy(t *testing.T) {
	board := mustParse(t, walls)

	_, err := Score(board, nil, Japanese().WithDamePolicy(DameMustBeFilled), Captures{})
	require.ErrorIs(t, err, ErrOpenDame)

	// No neutral region left once the middle column is filled.
	filled := board
	var perr error
	for y, c := range []game.Color{game.Black, game.White, game.Black, game.White, game.Black} {
		filled, perr = filled.WithStone(game.Position{X: 2, Y: y}, c)
		require.NoError(t, perr)
	}
	_, err = Score(filled, nil, Japanese().WithDamePolicy(DameMustBeFilled), Captures{})
	require.NoError(t, err)
}

func TestScoreEmptyBoard(t *testing.T) {
	board, err := game.NewBoard(9)
	require.NoError(t, err)

	// A fully empty board is one neutral region: nobody scores
	// anything beyond komi.
	result, tally, err := ScoreDetail(board, nil, Chinese().WithKomi(0), Captures{})
	require.NoError(t, err)
	assert.Equal(t, 81, tally.Dame)
	assert.Equal(t, 0.0, result.Black)
	assert.Equal(t, 0.0, result.White)
	assert.Equal(t, game.Empty, result.Winner)
}

func TestRulesetDefaults(t *testing.T) {
	cases := []struct {
		rules  Ruleset
		method Method
		komi   float64
	}{
		{Japanese(), TerritoryScoring, 6.5},
		{Korean(), TerritoryScoring, 6.5},
		{Chinese(), AreaScoring, 7.5},
		{AGA(), AreaScoring, 7.5},
		{Ing(), AreaScoring, 8},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.method, tc.rules.Method, tc.rules.Name)
		assert.Equal(t, tc.komi, tc.rules.Komi, tc.rules.Name)
		assert.Equal(t, DameNeutral, tc.rules.Dame, tc.rules.Name)
	}

	custom := Japanese().WithKomi(0.5).WithDamePolicy(DameMustBeFilled)
	assert.Equal(t, 0.5, custom.Komi)
	assert.Equal(t, DameMustBeFilled, custom.Dame)
	assert.Equal(t, "Japanese", custom.Name)
}
