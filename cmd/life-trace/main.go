// Command life-trace prints successive Game of Life generations as text.
// It is the headless companion to cmd/ca, useful for eyeballing a pattern's
// evolution or piping generations into other tools.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"horton/internal/core"
	"horton/pkg/conway"
	"horton/pkg/grid"
)

var patternOffsets = map[string][]grid.Coordinate{
	"blinker": {{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 2, Y: 0}},
	"glider":  {{X: 1, Y: 0}, {X: 2, Y: 1}, {X: 0, Y: 2}, {X: 1, Y: 2}, {X: 2, Y: 2}},
	"block":   {{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 0, Y: 1}, {X: 1, Y: 1}},
}

func seedGrid(w, h int, pattern string, seed int64, density float64) (*grid.Grid[uint8], error) {
	if pattern == "random" {
		cells := make([]uint8, w*h)
		core.FillDensity(core.NewRNG(seed).Source(), cells, density)
		return grid.FromSlice(w, h, cells)
	}

	offsets, ok := patternOffsets[pattern]
	if !ok {
		return nil, fmt.Errorf("unknown pattern %q", pattern)
	}
	g, err := grid.New[uint8](w, h)
	if err != nil {
		return nil, err
	}
	// Center the pattern on the board.
	for _, off := range offsets {
		if err := g.Set(w/2-1+off.X, h/2-1+off.Y, 1); err != nil {
			return nil, fmt.Errorf("pattern %q does not fit a %dx%d board: %w", pattern, w, h, err)
		}
	}
	return g, nil
}

func main() {
	w := flag.Int("w", 16, "board width")
	h := flag.Int("h", 16, "board height")
	n := flag.Int("n", 8, "number of generations to print")
	seed := flag.Int64("seed", 42, "seed for the random pattern")
	density := flag.Float64("density", 0.3, "live-cell density for the random pattern")
	pattern := flag.String("pattern", "random", "seed pattern: random, blinker, glider or block")
	flag.Parse()

	world, err := seedGrid(*w, *h, *pattern, *seed, *density)
	if err != nil {
		log.Fatal(err)
	}

	for i, g := range conway.Generations(*n, world) {
		fmt.Printf("generation %d\n", i)
		if err := g.Dump(os.Stdout); err != nil {
			log.Fatal(err)
		}
		fmt.Println()
	}
}
