package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandicapStones(t *testing.T) {
	t.Run("19x19 star points", func(t *testing.T) {
		stones, err := HandicapStones(19, 4)
		require.NoError(t, err)
		assert.ElementsMatch(t,
			[]Position{{3, 3}, {15, 3}, {3, 15}, {15, 15}},
			stones)

		stones, err = HandicapStones(19, 9)
		require.NoError(t, err)
		require.Len(t, stones, 9)
		assert.Contains(t, stones, Position{9, 9}, "nine stones include the center")
	})

	t.Run("9x9 uses the tighter edge offset", func(t *testing.T) {
		stones, err := HandicapStones(9, 2)
		require.NoError(t, err)
		assert.ElementsMatch(t, []Position{{6, 2}, {2, 6}}, stones)
	})

	t.Run("counts per handicap", func(t *testing.T) {
		for n := 2; n <= 9; n++ {
			stones, err := HandicapStones(13, n)
			require.NoError(t, err)
			require.Len(t, stones, n, "handicap %d", n)

			seen := make(map[Position]struct{}, n)
			for _, p := range stones {
				seen[p] = struct{}{}
			}
			require.Len(t, seen, n, "handicap %d placements must be distinct", n)
		}
	})

	t.Run("rejects bad input", func(t *testing.T) {
		for _, n := range []int{-1, 0, 1, 10} {
			_, err := HandicapStones(19, n)
			require.ErrorIs(t, err, ErrHandicap, "count %d", n)
		}
		_, err := HandicapStones(6, 2)
		require.ErrorIs(t, err, ErrHandicap, "even size has no star points")
	})
}

func TestSeedHandicap(t *testing.T) {
	board, err := NewBoard(9)
	require.NoError(t, err)

	seeded, err := SeedHandicap(board, 5)
	require.NoError(t, err)
	assert.Equal(t, 5, seeded.Stones(Black))
	assert.Equal(t, 0, seeded.Stones(White))
	assert.Equal(t, 0, board.Stones(Black), "source board stays empty")
}
