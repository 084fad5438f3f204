package maze

import (
	"math/rand/v2"

	"horton/pkg/grid"
)

const (
	setExterior uint8 = iota
	setFrontier
	setInterior
)

func neighboursInSet(g *grid.Grid[Cell], states *grid.Grid[uint8], at grid.Coordinate, want uint8) []grid.Coordinate {
	var out []grid.Coordinate
	for _, off := range cardinalOffsets {
		n := grid.Coordinate{X: at.X + off.X, Y: at.Y + off.Y}
		if _, err := g.Get(n.X, n.Y); err != nil {
			continue
		}
		if states.GetOrDefault(n.X, n.Y, setExterior) == want {
			out = append(out, n)
		}
	}
	return out
}

// GeneratePrim carves a perfect maze using the randomized Prim variant: grow
// an interior region by repeatedly connecting a random frontier cell to a
// random interior neighbour.
func GeneratePrim(w, h int, rng *rand.Rand) (*grid.Grid[Cell], error) {
	g, err := grid.NewWith(w, h, DefaultCell)
	if err != nil {
		return nil, err
	}
	states, err := grid.New[uint8](w, h)
	if err != nil {
		return nil, err
	}

	coords := g.Coordinates()
	start := coords[rng.IntN(len(coords))]
	states.Set(start.X, start.Y, setInterior)

	var frontier []grid.Coordinate
	for _, n := range neighboursInSet(g, states, start, setExterior) {
		states.Set(n.X, n.Y, setFrontier)
		frontier = append(frontier, n)
	}

	for len(frontier) > 0 {
		i := rng.IntN(len(frontier))
		cell := frontier[i]
		frontier = append(frontier[:i], frontier[i+1:]...)

		interior := neighboursInSet(g, states, cell, setInterior)
		removeWallBetween(g, interior[rng.IntN(len(interior))], cell)
		states.Set(cell.X, cell.Y, setInterior)
		markVisited(g, cell)

		for _, n := range neighboursInSet(g, states, cell, setExterior) {
			states.Set(n.X, n.Y, setFrontier)
			frontier = append(frontier, n)
		}
	}
	markVisited(g, start)
	return g, nil
}
