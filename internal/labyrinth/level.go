// Package labyrinth builds dungeon levels out of carved mazes and runs the
// crawl: a player exploring tile corridors stalked by enemies.
package labyrinth

import (
	"math/rand/v2"

	"horton/internal/maze"
	"horton/pkg/grid"
)

// depthFactor scales how many enemies deeper levels can spawn.
const depthFactor = 3

// aggroRadiusSq is the squared tile distance at which an enemy notices the
// player.
const aggroRadiusSq = 36

// Direction names a cardinal movement.
type Direction uint8

const (
	North Direction = iota
	South
	East
	West
)

var directionOffsets = [4][2]int{
	North: {0, -1},
	South: {0, 1},
	East:  {1, 0},
	West:  {-1, 0},
}

// Level is one floor of the dungeon: a tile map plus the entities on it.
type Level struct {
	Tiles   *grid.Grid[maze.Tile]
	Player  *Player
	Enemies []*Enemy
	Depth   int

	display []uint8
}

// Display palette indices emitted by Render.
const (
	DisplayWall uint8 = iota
	DisplayFloor
	DisplayPlayer
	DisplayEnemy
)

// GenerateLevel carves a w-by-h maze, tiles it, and populates it with
// enemies scaled by depth plus a player placed on the edge tile furthest
// from all of them.
func GenerateLevel(w, h, depth int, rng *rand.Rand) (*Level, error) {
	m, err := maze.Generate(w, h, rng)
	if err != nil {
		return nil, err
	}
	l := &Level{Tiles: maze.TileMaze(m), Depth: depth}
	l.Enemies = enemiesForDepth(depth, rng)
	l.placeEnemies(rng)
	l.placePlayerAtStart()
	return l, nil
}

func enemiesForDepth(depth int, rng *rand.Rand) []*Enemy {
	if depth < 1 {
		depth = 1
	}
	n := 1 + rng.IntN(depth*(depthFactor-1)+1)
	enemies := make([]*Enemy, n)
	for i := range enemies {
		enemies[i] = &Enemy{}
	}
	return enemies
}

// passable reports whether (x, y) is open ground.
func (l *Level) passable(x, y int) bool {
	return l.Tiles.GetOrDefault(x, y, maze.TileWall).Passable()
}

func (l *Level) occupied(x, y int) bool {
	if l.Player != nil && l.Player.X == x && l.Player.Y == y {
		return true
	}
	for _, e := range l.Enemies {
		if e.X == x && e.Y == y {
			return true
		}
	}
	return false
}

// placeEnemies drops each enemy onto a random passable, unoccupied tile away
// from the outer border.
func (l *Level) placeEnemies(rng *rand.Rand) {
	w, h := l.Tiles.Dimensions()
	for _, e := range l.Enemies {
		for {
			x := 1 + rng.IntN(w-2)
			y := 1 + rng.IntN(h-2)
			if l.passable(x, y) && !l.occupied(x, y) {
				e.X, e.Y = x, y
				break
			}
		}
	}
}

// placePlayerAtStart puts the player on the passable tile just inside the
// border that maximizes the summed squared distance from every enemy, so
// each run starts as far from trouble as the maze allows.
func (l *Level) placePlayerAtStart() {
	w, h := l.Tiles.Dimensions()
	var edges []grid.Coordinate
	for x := 1; x < w-1; x++ {
		for _, y := range [2]int{1, h - 2} {
			if l.passable(x, y) && !l.occupied(x, y) {
				edges = append(edges, grid.Coordinate{X: x, Y: y})
			}
		}
	}
	for y := 1; y < h-1; y++ {
		for _, x := range [2]int{1, w - 2} {
			if l.passable(x, y) && !l.occupied(x, y) {
				edges = append(edges, grid.Coordinate{X: x, Y: y})
			}
		}
	}
	if len(edges) == 0 {
		// Fallback for degenerate mazes: first open tile.
		for c, t := range l.Tiles.All() {
			if t.Passable() {
				l.Player = &Player{X: c.X, Y: c.Y}
				return
			}
		}
		return
	}

	best := edges[0]
	bestScore := -1
	for _, c := range edges {
		score := 0
		for _, e := range l.Enemies {
			score += distanceSq(c.X, c.Y, e.X, e.Y)
		}
		if score > bestScore {
			best, bestScore = c, score
		}
	}
	l.Player = &Player{X: best.X, Y: best.Y}
}

// MovePlayer advances the player one tile in the given direction. It returns
// false when a wall or an enemy blocks the move.
func (l *Level) MovePlayer(dir Direction) bool {
	if l.Player == nil {
		return false
	}
	off := directionOffsets[dir]
	nx, ny := l.Player.X+off[0], l.Player.Y+off[1]
	if !l.passable(nx, ny) || l.occupied(nx, ny) {
		return false
	}
	l.Player.X, l.Player.Y = nx, ny
	return true
}

// UpdateEnemies gives every enemy one move. Passive enemies wander; an enemy
// within aggro range turns aggressive and steps toward the player.
func (l *Level) UpdateEnemies(rng *rand.Rand) {
	for _, e := range l.Enemies {
		if l.Player != nil && distanceSq(e.X, e.Y, l.Player.X, l.Player.Y) <= aggroRadiusSq {
			e.State = StateAggressive
		}
		switch e.State {
		case StateAggressive:
			l.stepToward(e, rng)
		default:
			l.wander(e, rng)
		}
	}
}

func (l *Level) stepToward(e *Enemy, rng *rand.Rand) {
	if l.Player == nil {
		l.wander(e, rng)
		return
	}
	best := -1
	bestDist := distanceSq(e.X, e.Y, l.Player.X, l.Player.Y)
	for i, off := range directionOffsets {
		nx, ny := e.X+off[0], e.Y+off[1]
		if !l.passable(nx, ny) || l.occupied(nx, ny) {
			continue
		}
		if d := distanceSq(nx, ny, l.Player.X, l.Player.Y); d < bestDist {
			best, bestDist = i, d
		}
	}
	if best >= 0 {
		off := directionOffsets[best]
		e.X += off[0]
		e.Y += off[1]
	}
}

func (l *Level) wander(e *Enemy, rng *rand.Rand) {
	dirs := rng.Perm(len(directionOffsets))
	for _, i := range dirs {
		off := directionOffsets[i]
		nx, ny := e.X+off[0], e.Y+off[1]
		if l.passable(nx, ny) && !l.occupied(nx, ny) {
			e.X, e.Y = nx, ny
			return
		}
	}
}

// CaughtPlayer reports whether any enemy shares a tile edge with the player.
func (l *Level) CaughtPlayer() bool {
	if l.Player == nil {
		return false
	}
	for _, e := range l.Enemies {
		if distanceSq(e.X, e.Y, l.Player.X, l.Player.Y) <= 1 {
			return true
		}
	}
	return false
}

// Display returns a palette-indexed row-major buffer of the level suitable
// for the grid painter. The buffer is reused across calls.
func (l *Level) Display() []uint8 {
	w, h := l.Tiles.Dimensions()
	if len(l.display) != w*h {
		l.display = make([]uint8, w*h)
	}
	for c, t := range l.Tiles.All() {
		v := DisplayWall
		if t.Passable() {
			v = DisplayFloor
		}
		l.display[c.Y*w+c.X] = v
	}
	for _, e := range l.Enemies {
		l.display[e.Y*w+e.X] = DisplayEnemy
	}
	if l.Player != nil {
		l.display[l.Player.Y*w+l.Player.X] = DisplayPlayer
	}
	return l.display
}
