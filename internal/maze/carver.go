package maze

import (
	"math/rand/v2"

	"horton/pkg/grid"
)

// Carver runs the depth-first backtracker one carve at a time so callers can
// animate the maze as it grows.
type Carver struct {
	g       *grid.Grid[Cell]
	rng     *rand.Rand
	stack   []grid.Coordinate
	current grid.Coordinate
	done    bool
}

// NewCarver allocates a fully walled grid and picks a random starting cell.
func NewCarver(w, h int, rng *rand.Rand) (*Carver, error) {
	g, err := grid.NewWith(w, h, DefaultCell)
	if err != nil {
		return nil, err
	}
	coords := g.Coordinates()
	start := coords[rng.IntN(len(coords))]
	markVisited(g, start)
	return &Carver{
		g:       g,
		rng:     rng,
		stack:   []grid.Coordinate{start},
		current: start,
	}, nil
}

// Grid exposes the maze under construction.
func (c *Carver) Grid() *grid.Grid[Cell] { return c.g }

// Current returns the cell at the head of the carve.
func (c *Carver) Current() grid.Coordinate { return c.current }

// Done reports whether the maze is complete.
func (c *Carver) Done() bool { return c.done }

// Step either carves into a random unvisited neighbour or backtracks one
// cell. It returns false once every cell has been visited.
func (c *Carver) Step() bool {
	if c.done {
		return false
	}
	if len(c.stack) == 0 {
		c.done = true
		return false
	}
	if ns := unvisitedNeighbours(c.g, c.current); len(ns) > 0 {
		next := ns[c.rng.IntN(len(ns))]
		removeWallBetween(c.g, c.current, next)
		c.stack = append(c.stack, c.current)
		c.current = next
		markVisited(c.g, next)
		return true
	}
	c.current = c.stack[len(c.stack)-1]
	c.stack = c.stack[:len(c.stack)-1]
	return true
}
