// Package maze carves perfect mazes over a grid of walled cells and
// translates them into tile maps. All generation takes an explicit random
// source so a seed fully determines the layout.
package maze

import (
	"math/rand/v2"

	"horton/pkg/grid"
)

// Cell is one maze location with a wall on each cardinal side. A freshly
// allocated cell has all four walls up and is unvisited.
type Cell struct {
	North, South, East, West bool

	Visited bool
}

// DefaultCell returns a cell with all walls up.
func DefaultCell() Cell {
	return Cell{North: true, South: true, East: true, West: true}
}

var cardinalOffsets = [4]grid.Coordinate{
	{X: 0, Y: -1},
	{X: 1, Y: 0},
	{X: 0, Y: 1},
	{X: -1, Y: 0},
}

func unvisitedNeighbours(g *grid.Grid[Cell], at grid.Coordinate) []grid.Coordinate {
	var out []grid.Coordinate
	for _, off := range cardinalOffsets {
		n := grid.Coordinate{X: at.X + off.X, Y: at.Y + off.Y}
		cell, err := g.Get(n.X, n.Y)
		if err != nil || cell.Visited {
			continue
		}
		out = append(out, n)
	}
	return out
}

// removeWallBetween opens the shared wall of two orthogonally adjacent cells.
func removeWallBetween(g *grid.Grid[Cell], src, dst grid.Coordinate) {
	sc, _ := g.Get(src.X, src.Y)
	dc, _ := g.Get(dst.X, dst.Y)

	switch {
	case src.X == dst.X && src.Y > dst.Y:
		sc.North, dc.South = false, false
	case src.X == dst.X:
		sc.South, dc.North = false, false
	case src.Y == dst.Y && src.X > dst.X:
		sc.West, dc.East = false, false
	case src.Y == dst.Y:
		sc.East, dc.West = false, false
	}

	g.Set(src.X, src.Y, sc)
	g.Set(dst.X, dst.Y, dc)
}

func markVisited(g *grid.Grid[Cell], at grid.Coordinate) {
	cell, _ := g.Get(at.X, at.Y)
	cell.Visited = true
	g.Set(at.X, at.Y, cell)
}

// Generate carves a perfect maze of the given dimensions using the
// depth-first backtracker.
func Generate(w, h int, rng *rand.Rand) (*grid.Grid[Cell], error) {
	c, err := NewCarver(w, h, rng)
	if err != nil {
		return nil, err
	}
	for c.Step() {
	}
	return c.Grid(), nil
}
