// Package maze adapts the maze carver to the simulation registry so the
// carve can be watched as it grows.
package maze

import (
	"strconv"

	"horton/internal/core"
	"horton/internal/maze"
	"horton/pkg/grid"
)

// Config holds parameters for the maze visualizer.
type Config struct {
	Width  int
	Height int
	Prim   bool
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{Width: 40, Height: 40}
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
	if v, ok := cfg["algo"]; ok {
		c.Prim = v == "prim"
	}
	return c
}

// Sim animates maze generation. The depth-first carver advances one carve
// per Step; the Prim variant builds the whole maze on Reset.
type Sim struct {
	w, h    int
	prim    bool
	carver  *maze.Carver
	display []uint8
}

// New returns a maze visualizer for a w-by-h cell maze.
func New(w, h int, prim bool) *Sim {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	s := &Sim{w: w, h: h, prim: prim}
	s.display = make([]uint8, s.tileW()*s.tileH())
	return s
}

func (s *Sim) tileW() int { return 2*s.w + 1 }
func (s *Sim) tileH() int { return 2*s.h + 1 }

// Name returns the simulation identifier.
func (s *Sim) Name() string { return "maze" }

// Size returns the tile-map dimensions.
func (s *Sim) Size() core.Size { return core.Size{W: s.tileW(), H: s.tileH()} }

// Cells exposes the tile display buffer.
func (s *Sim) Cells() []uint8 { return s.display }

// Reset restarts the carve from a fresh fully walled grid.
func (s *Sim) Reset(seed int64) {
	rng := core.NewRNG(seed).Source()
	if s.prim {
		s.carver = nil
		m, err := maze.GeneratePrim(s.w, s.h, rng)
		if err != nil {
			return
		}
		s.syncTiles(maze.TileMaze(m))
		return
	}
	carver, err := maze.NewCarver(s.w, s.h, rng)
	if err != nil {
		return
	}
	s.carver = carver
	s.syncTiles(maze.TileMaze(carver.Grid()))
}

// Step advances the carve by one cell.
func (s *Sim) Step() {
	if s.carver == nil || s.carver.Done() {
		return
	}
	s.carver.Step()
	tiles := maze.TileMaze(s.carver.Grid())
	s.syncTiles(tiles)
	if !s.carver.Done() {
		head := s.carver.Current()
		s.display[(2*head.Y+1)*s.tileW()+(2*head.X+1)] = 2
	}
}

func (s *Sim) syncTiles(tiles *grid.Grid[maze.Tile]) {
	w := s.tileW()
	for c, t := range tiles.All() {
		var v uint8
		if t.Passable() {
			v = 1
		}
		s.display[c.Y*w+c.X] = v
	}
}

func init() {
	core.Register("maze", func(cfg map[string]string) core.Sim {
		c := FromMap(cfg)
		return New(c.Width, c.Height, c.Prim)
	})
}
