// Package life adapts the conway stepper to the simulation registry.
package life

import (
	"strconv"

	"horton/internal/core"
	"horton/pkg/conway"
	"horton/pkg/grid"
)

// Config holds parameters for the Life simulation.
type Config struct {
	Width   int
	Height  int
	Density float64
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{Width: 256, Height: 256, Density: 0.5}
}

// FromMap populates a Config from a string map.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["w"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Width = parsed
		}
	}
	if v, ok := cfg["h"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Height = parsed
		}
	}
	if v, ok := cfg["density"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 && parsed <= 1 {
			c.Density = parsed
		}
	}
	return c
}

// Life runs Conway's Game of Life over a wrapped grid.
type Life struct {
	w, h    int
	density float64
	world   *grid.Grid[uint8]
	display []uint8
	gen     int
}

// New returns a Life simulation with the provided dimensions.
func New(w, h int, density float64) *Life {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	world, _ := grid.New[uint8](w, h)
	return &Life{w: w, h: h, density: density, world: world, display: make([]uint8, w*h)}
}

// Name returns the simulation identifier.
func (l *Life) Name() string { return "life" }

// Size returns the grid dimensions.
func (l *Life) Size() core.Size { return core.Size{W: l.w, H: l.h} }

// Cells exposes the current display buffer.
func (l *Life) Cells() []uint8 { return l.display }

// Generation returns the number of steps since the last reset.
func (l *Life) Generation() int { return l.gen }

// World exposes the live board.
func (l *Life) World() *grid.Grid[uint8] { return l.world }

// Reset randomizes the board using the provided seed.
func (l *Life) Reset(seed int64) {
	rng := core.NewRNG(seed).Source()
	core.FillDensity(rng, l.display, l.density)
	world, _ := grid.FromSlice(l.w, l.h, l.display)
	l.world = world
	l.gen = 0
}

// Seed replaces the board with the given grid, which must match the
// configured dimensions.
func (l *Life) Seed(g *grid.Grid[uint8]) bool {
	w, h := g.Dimensions()
	if w != l.w || h != l.h {
		return false
	}
	l.world = g.Clone()
	l.gen = 0
	l.sync()
	return true
}

// Step advances the simulation by one generation.
func (l *Life) Step() {
	l.world = conway.Step(l.world)
	l.gen++
	l.sync()
}

func (l *Life) sync() {
	copy(l.display, l.world.Values())
}

func init() {
	core.Register("life", func(cfg map[string]string) core.Sim {
		c := FromMap(cfg)
		return New(c.Width, c.Height, c.Density)
	})
}
