package world

import (
	"context"
	"math/rand"

	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/fieldsim/internal/telemetry"
)

const (
	// Grid dimensions
	Width  = 16
	Height = 16

	cellCount = Width * Height
)

// Grid is the fixed-size tile map, stored row-major.
type Grid struct {
	tiles [cellCount]Tile
}

// InBounds returns true if the cell lies within the grid.
func InBounds(x, y int) bool {
	return x >= 0 && x < Width && y >= 0 && y < Height
}

// TileAt returns the tile at the given cell.
// Cells outside the grid read as obstacles.
func (g *Grid) TileAt(x, y int) Tile {
	if !InBounds(x, y) {
		return TileObstacle
	}
	return g.tiles[y*Width+x]
}

// SetTile stores a tile. Writes outside the grid are ignored.
func (g *Grid) SetTile(x, y int, t Tile) {
	if !InBounds(x, y) {
		return
	}
	g.tiles[y*Width+x] = t
}

// Randomize makes every cell an obstacle independently with probability chance.
func (g *Grid) Randomize(ctx context.Context, rng *rand.Rand, chance float64) {
	_, span := telemetry.Tracer("world").Start(ctx, "grid.randomize")
	defer span.End()

	for i := range g.tiles {
		if rng.Float64() < chance {
			g.tiles[i] = TileObstacle
		} else {
			g.tiles[i] = TileEmpty
		}
	}

	span.SetAttributes(
		attribute.Int("grid.width", Width),
		attribute.Int("grid.height", Height),
		attribute.Float64("grid.obstacle_chance", chance),
		attribute.Int("grid.obstacles", g.Obstacles()),
	)
}

// Obstacles returns the number of obstacle cells.
func (g *Grid) Obstacles() int {
	n := 0
	for _, t := range g.tiles {
		if t.IsObstacle() {
			n++
		}
	}
	return n
}
