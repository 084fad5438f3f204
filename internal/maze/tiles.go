package maze

import "horton/pkg/grid"

// Tile is one square of a tile map derived from a walled maze.
type Tile uint8

const (
	// TileWall blocks movement.
	TileWall Tile = iota
	// TileFloor is open ground.
	TileFloor
)

// Passable reports whether an entity can occupy the tile.
func (t Tile) Passable() bool { return t == TileFloor }

// TileMaze translates a cell-based maze into a (2w+1)x(2h+1) tile map. Every
// maze cell becomes a floor tile at (2x+1, 2y+1); each missing wall opens the
// tile between two adjacent cells.
func TileMaze(m *grid.Grid[Cell]) *grid.Grid[Tile] {
	w, h := m.Dimensions()
	tiles, err := grid.New[Tile](2*w+1, 2*h+1)
	if err != nil {
		return nil
	}
	for c, cell := range m.All() {
		tx, ty := 2*c.X+1, 2*c.Y+1
		tiles.Set(tx, ty, TileFloor)
		if !cell.North {
			tiles.Set(tx, ty-1, TileFloor)
		}
		if !cell.South {
			tiles.Set(tx, ty+1, TileFloor)
		}
		if !cell.East {
			tiles.Set(tx+1, ty, TileFloor)
		}
		if !cell.West {
			tiles.Set(tx-1, ty, TileFloor)
		}
	}
	return tiles
}
