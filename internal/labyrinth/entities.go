package labyrinth

import "fmt"

// EnemyState describes how an enemy behaves toward the player.
type EnemyState uint8

const (
	// StatePassive enemies wander at random.
	StatePassive EnemyState = iota
	// StateAggressive enemies walk toward the player.
	StateAggressive
)

// Player is the controllable entity, positioned in tile coordinates.
type Player struct {
	X, Y int
}

// Position returns the player's tile coordinate pair.
func (p *Player) Position() (int, int) { return p.X, p.Y }

func (p *Player) String() string {
	return fmt.Sprintf("<Player at (%d, %d)>", p.X, p.Y)
}

// Enemy is a hostile entity. Enemies spawn passive and turn aggressive when
// the player comes near.
type Enemy struct {
	X, Y  int
	State EnemyState
}

// Position returns the enemy's tile coordinate pair.
func (e *Enemy) Position() (int, int) { return e.X, e.Y }

func (e *Enemy) String() string {
	return fmt.Sprintf("<Enemy at (%d, %d)>", e.X, e.Y)
}

// distanceSq returns the squared distance between two tile coordinates.
func distanceSq(x1, y1, x2, y2 int) int {
	dx := x1 - x2
	dy := y1 - y2
	return dx*dx + dy*dy
}
