package game

// Region is a maximal connected area of empty intersections together
// with the set of stone colors bordering it. A region bordered by
// exactly one color is that color's territory; any other region is
// neutral.
type Region struct {
	Points  map[Position]struct{}
	Borders map[Color]struct{}
}

// Size returns the number of empty intersections in the region.
func (r *Region) Size() int {
	return len(r.Points)
}

// TerritoryOf returns the owning color of the region, or Empty when
// the region is neutral (bordered by both colors or by none).
func (r *Region) TerritoryOf() Color {
	if len(r.Borders) != 1 {
		return Empty
	}
	for c := range r.Borders {
		return c
	}
	return Empty
}

// EmptyRegions flood-fills every maximal empty area of the board.
// Together the regions partition the board's empty intersections.
func EmptyRegions(b *Board) []*Region {
	visited := make(map[Position]struct{})
	var regions []*Region

	for y := 0; y < b.size; y++ {
		for x := 0; x < b.size; x++ {
			start := Position{x, y}
			if b.at(start) != Empty {
				continue
			}
			if _, seen := visited[start]; seen {
				continue
			}

			region := &Region{
				Points:  make(map[Position]struct{}),
				Borders: make(map[Color]struct{}),
			}
			queue := []Position{start}
			for len(queue) > 0 {
				current := queue[0]
				queue = queue[1:]

				if _, seen := visited[current]; seen {
					continue
				}
				visited[current] = struct{}{}
				region.Points[current] = struct{}{}

				for _, adj := range current.neighbors(b.size) {
					if c := b.at(adj); c != Empty {
						region.Borders[c] = struct{}{}
						continue
					}
					if _, seen := visited[adj]; !seen {
						queue = append(queue, adj)
					}
				}
			}
			regions = append(regions, region)
		}
	}
	return regions
}
