package game

import "fmt"

// HandicapStones returns the standard star-point placement for n
// black handicap stones on a size×size board, in the conventional
// order: opposing corners, remaining corners, then side and center
// points. n must be in [2,9] and the board large enough to carry
// distinct star points.
func HandicapStones(size, n int) ([]Position, error) {
	if n < 2 || n > 9 {
		return nil, fmt.Errorf("%w: got %d, want 2..9", ErrHandicap, n)
	}
	if size < 7 || size%2 == 0 {
		return nil, fmt.Errorf("%w: no star points on a %dx%d board", ErrHandicap, size, size)
	}

	edge := 3
	if size < 13 {
		edge = 2
	}
	low, high, mid := edge, size-1-edge, (size-1)/2

	corners := []Position{
		{high, low},
		{low, high},
		{low, low},
		{high, high},
	}
	sides := []Position{
		{low, mid},
		{high, mid},
		{mid, low},
		{mid, high},
	}
	center := Position{mid, mid}

	switch n {
	case 2, 3, 4:
		return corners[:n], nil
	case 5:
		return append(corners[:4:4], center), nil
	case 6:
		return append(corners[:4:4], sides[:2]...), nil
	case 7:
		return append(append(corners[:4:4], sides[:2]...), center), nil
	case 8:
		return append(corners[:4:4], sides...), nil
	default: // 9
		return append(append(corners[:4:4], sides...), center), nil
	}
}

// SeedHandicap places n handicap stones on an empty board.
func SeedHandicap(b *Board, n int) (*Board, error) {
	stones, err := HandicapStones(b.Size(), n)
	if err != nil {
		return nil, err
	}
	seeded := b
	for _, p := range stones {
		seeded, err = seeded.WithStone(p, Black)
		if err != nil {
			return nil, err
		}
	}
	return seeded, nil
}
