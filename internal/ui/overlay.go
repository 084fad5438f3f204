//go:build ebiten

package ui

import (
	"fmt"
	"image/color"

	"horton/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

type generationProvider interface {
	Generation() int
}

// Overlay draws a small status line (sim name, generation, pause state) on
// top of the simulation view. H toggles visibility.
type Overlay struct {
	sim     core.Sim
	visible bool
	paused  bool
}

// NewOverlay constructs a new overlay instance.
func NewOverlay(sim core.Sim) *Overlay {
	return &Overlay{sim: sim, visible: true}
}

// SetPaused records the pause state shown in the status line.
func (o *Overlay) SetPaused(paused bool) {
	o.paused = paused
}

// Update handles the visibility toggle.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		o.visible = !o.visible
	}
}

// Draw renders the status line onto the provided screen.
func (o *Overlay) Draw(screen *ebiten.Image) {
	if !o.visible || o.sim == nil {
		return
	}
	line := o.sim.Name()
	if provider, ok := o.sim.(generationProvider); ok {
		line = fmt.Sprintf("%s  gen %d", line, provider.Generation())
	}
	if o.paused {
		line += "  [paused]"
	}
	text.Draw(screen, line, basicfont.Face7x13, 4, 14, color.White)
}
