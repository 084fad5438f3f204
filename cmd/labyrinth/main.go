//go:build ebiten

package main

import (
	"errors"
	"flag"
	"image/color"
	"log"
	"math/rand/v2"

	"horton/internal/core"
	"horton/internal/labyrinth"
	"horton/internal/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

var levelPalette = []color.RGBA{
	labyrinth.DisplayWall:   {R: 0, G: 0, B: 0, A: 255},
	labyrinth.DisplayFloor:  {R: 180, G: 180, B: 180, A: 255},
	labyrinth.DisplayPlayer: {R: 0, G: 255, B: 0, A: 255},
	labyrinth.DisplayEnemy:  {R: 255, G: 0, B: 0, A: 255},
}

type crawl struct {
	level   *labyrinth.Level
	painter *render.GridPainter
	rng     *rand.Rand
	ticker  *core.FixedStep

	mazeW, mazeH int
	depth        int
	scale        int
}

func newCrawl(mazeW, mazeH, scale, enemyTPS int, seed int64) (*crawl, error) {
	c := &crawl{
		rng:    core.NewRNG(seed).Source(),
		ticker: core.NewFixedStep(enemyTPS),
		mazeW:  mazeW,
		mazeH:  mazeH,
		depth:  1,
		scale:  scale,
	}
	if err := c.descend(1); err != nil {
		return nil, err
	}
	return c, nil
}

// descend regenerates the level at the given depth.
func (c *crawl) descend(depth int) error {
	level, err := labyrinth.GenerateLevel(c.mazeW, c.mazeH, depth, c.rng)
	if err != nil {
		return err
	}
	c.depth = depth
	c.level = level
	w, h := level.Tiles.Dimensions()
	c.painter = render.NewGridPainter(w, h)
	return nil
}

func (c *crawl) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyW) || inpututil.IsKeyJustPressed(ebiten.KeyUp) {
		c.level.MovePlayer(labyrinth.North)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) || inpututil.IsKeyJustPressed(ebiten.KeyDown) {
		c.level.MovePlayer(labyrinth.South)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyD) || inpututil.IsKeyJustPressed(ebiten.KeyRight) {
		c.level.MovePlayer(labyrinth.East)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyA) || inpututil.IsKeyJustPressed(ebiten.KeyLeft) {
		c.level.MovePlayer(labyrinth.West)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyG) {
		return c.descend(c.depth + 1)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		return c.descend(c.depth)
	}

	if c.ticker.ShouldStep() {
		c.level.UpdateEnemies(c.rng)
	}
	if c.level.CaughtPlayer() {
		// Perma-death: back to the first floor.
		return c.descend(1)
	}
	return nil
}

func (c *crawl) Draw(screen *ebiten.Image) {
	c.painter.BlitPalette(screen, c.level.Display(), levelPalette, c.scale)
}

func (c *crawl) Layout(outsideWidth, outsideHeight int) (int, int) {
	w, h := c.level.Tiles.Dimensions()
	return w * c.scale, h * c.scale
}

func main() {
	mazeW := flag.Int("w", 10, "maze width in cells")
	mazeH := flag.Int("h", 10, "maze height in cells")
	scale := flag.Int("scale", 24, "pixel scale multiplier")
	enemyTPS := flag.Int("enemy-tps", 4, "enemy moves per second")
	seed := flag.Int64("seed", 42, "level generation seed")
	flag.Parse()

	game, err := newCrawl(*mazeW, *mazeH, *scale, *enemyTPS, *seed)
	if err != nil {
		log.Fatal(err)
	}

	w, h := game.level.Tiles.Dimensions()
	ebiten.SetWindowTitle("labyrinth — beware ye who enter!")
	ebiten.SetWindowSize(w*game.scale, h*game.scale)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
