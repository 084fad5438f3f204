// Package conway implements the Game of Life generation transition as a
// pure transform over a grid of 0/1 cells.
package conway

import (
	"iter"

	"horton/pkg/grid"
)

// Neighbors counts the live cells among the eight axis and diagonal
// neighbors of (x, y). Neighbor lookups always wrap toroidally, whether or
// not the grid itself was declared as wrapping.
func Neighbors(g *grid.Grid[uint8], x, y int) int {
	w, h := g.Dimensions()
	n := 0
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			nx := (x + dx + w) % w
			ny := (y + dy + h) % h
			if g.GetOrDefault(nx, ny, 0) != 0 {
				n++
			}
		}
	}
	return n
}

// Step computes the next generation. A live cell survives with two or three
// live neighbors; a dead cell is born with exactly three. The input grid is
// never mutated and the result shares no storage with it.
func Step(g *grid.Grid[uint8]) *grid.Grid[uint8] {
	next := g.Clone()
	for c, v := range g.All() {
		n := Neighbors(g, c.X, c.Y)
		alive := v != 0
		var out uint8
		if (alive && (n == 2 || n == 3)) || (!alive && n == 3) {
			out = 1
		}
		next.Set(c.X, c.Y, out)
	}
	return next
}

// Generations returns a lazy sequence of exactly n (index, grid) pairs
// starting from seed: index 0 pairs with a copy of the seed itself and each
// following index with one further application of Step. The seed is never
// mutated; each range over the sequence restarts from a fresh copy.
func Generations(n int, seed *grid.Grid[uint8]) iter.Seq2[int, *grid.Grid[uint8]] {
	return func(yield func(int, *grid.Grid[uint8]) bool) {
		world := seed.Clone()
		for i := 0; i < n; i++ {
			if !yield(i, world) {
				return
			}
			world = Step(world)
		}
	}
}
