// Package world provides the tile grid and the line-of-sight walk over it.
package world

// Tile represents the occupancy of a single grid cell.
type Tile uint8

const (
	// TileEmpty is an open cell.
	TileEmpty Tile = 0
	// TileObstacle blocks line of sight.
	TileObstacle Tile = 1
)

// IsObstacle returns true if the tile blocks sight. Any nonzero value does.
func (t Tile) IsObstacle() bool {
	return t != TileEmpty
}

// Rune returns the tile's display character.
func (t Tile) Rune() rune {
	if t.IsObstacle() {
		return '#'
	}
	return '.'
}
