package world

import (
	"context"
	"math/rand"
	"testing"
)

func TestGridDimensions(t *testing.T) {
	if Width != 16 || Height != 16 {
		t.Fatalf("grid is %dx%d, want 16x16", Width, Height)
	}
}

func TestTileRune(t *testing.T) {
	if got := TileEmpty.Rune(); got != '.' {
		t.Errorf("TileEmpty.Rune() = %q, want '.'", got)
	}
	if got := TileObstacle.Rune(); got != '#' {
		t.Errorf("TileObstacle.Rune() = %q, want '#'", got)
	}
}

func TestGridRandomizeOccupancy(t *testing.T) {
	var g Grid
	g.Randomize(context.Background(), rand.New(rand.NewSource(7)), 0.25)

	for y := 0; y < Height; y++ {
		for x := 0; x < Width; x++ {
			if tile := g.TileAt(x, y); tile != TileEmpty && tile != TileObstacle {
				t.Errorf("TileAt(%d,%d) = %d, want 0 or 1", x, y, tile)
			}
		}
	}

	// 256 cells at 25%: expect roughly 64 obstacles.
	if n := g.Obstacles(); n < 30 || n > 100 {
		t.Errorf("Obstacles() = %d, want roughly 64", n)
	}
}

func TestGridRandomizeReproducible(t *testing.T) {
	var g1, g2 Grid
	ctx := context.Background()
	g1.Randomize(ctx, rand.New(rand.NewSource(12345)), 0.25)
	g2.Randomize(ctx, rand.New(rand.NewSource(12345)), 0.25)

	if g1 != g2 {
		t.Error("grids from the same seed should be identical")
	}
}

func TestGridOutOfRange(t *testing.T) {
	var g Grid

	tests := []struct{ x, y int }{
		{-1, 0}, {0, -1}, {Width, 0}, {0, Height}, {Width + 1, Height + 1},
	}
	for _, tt := range tests {
		if InBounds(tt.x, tt.y) {
			t.Errorf("InBounds(%d,%d) = true, want false", tt.x, tt.y)
		}
		if got := g.TileAt(tt.x, tt.y); got != TileObstacle {
			t.Errorf("TileAt(%d,%d) = %d, want obstacle", tt.x, tt.y, got)
		}
		g.SetTile(tt.x, tt.y, TileObstacle)
	}

	if n := g.Obstacles(); n != 0 {
		t.Errorf("out-of-range SetTile wrote %d cells", n)
	}
}

func TestLineOfSightEmptyGrid(t *testing.T) {
	var g Grid

	for fy := 0; fy < Height; fy++ {
		for fx := 0; fx < Width; fx++ {
			for ty := fy; ty < Height; ty++ {
				for tx := fx; tx < Width; tx++ {
					if !LineOfSight(&g, fx, fy, tx, ty) {
						t.Fatalf("LineOfSight(%d,%d -> %d,%d) = false on empty grid", fx, fy, tx, ty)
					}
				}
			}
		}
	}
}

func TestLineOfSightStopsAtObstacle(t *testing.T) {
	var g Grid
	g.SetTile(1, 1, TileObstacle)
	g.SetTile(1, 2, TileObstacle)

	path, visible := Walk(&g, 0, 0, 5, 5)
	if visible {
		t.Fatal("Walk through (1,1) should be blocked")
	}
	want := []Point{{0, 1}, {1, 1}}
	if len(path) != len(want) {
		t.Fatalf("path = %v, want %v", path, want)
	}
	for i := range want {
		if path[i] != want[i] {
			t.Errorf("path[%d] = %v, want %v", i, path[i], want[i])
		}
	}
	if LineOfSight(&g, 0, 0, 5, 5) {
		t.Error("LineOfSight should agree with Walk")
	}
}

func TestLineOfSightStopsOnEitherCoordinate(t *testing.T) {
	var g Grid
	// The walk from (0,0) toward (3,5) halts at (3,3) once x matches,
	// so obstacles past that point are never seen.
	g.SetTile(3, 4, TileObstacle)
	g.SetTile(3, 5, TileObstacle)

	path, visible := Walk(&g, 0, 0, 3, 5)
	if !visible {
		t.Fatal("walk should stop before reaching the obstacles")
	}
	want := []Point{{0, 1}, {1, 1}, {1, 2}, {2, 2}, {2, 3}, {3, 3}}
	if len(path) != len(want) {
		t.Fatalf("path = %v, want %v", path, want)
	}
	for i := range want {
		if path[i] != want[i] {
			t.Errorf("path[%d] = %v, want %v", i, path[i], want[i])
		}
	}
}

func TestLineOfSightSharedCoordinate(t *testing.T) {
	var g Grid
	g.SetTile(5, 0, TileObstacle)
	g.SetTile(3, 0, TileObstacle)

	// Same row: the loop never runs, even though obstacles sit on the row.
	if !LineOfSight(&g, 0, 0, 5, 0) {
		t.Error("LineOfSight along a shared row should be true")
	}
	if !LineOfSight(&g, 4, 4, 4, 4) {
		t.Error("LineOfSight to self should be true")
	}
}

func TestLineOfSightMonotonicWalk(t *testing.T) {
	rng := rand.New(rand.NewSource(99))
	var g Grid
	g.Randomize(context.Background(), rng, 0.25)

	for i := 0; i < 500; i++ {
		fx, fy := rng.Intn(Width), rng.Intn(Height)
		tx, ty := fx+rng.Intn(Width-fx), fy+rng.Intn(Height-fy)

		path, visible := Walk(&g, fx, fy, tx, ty)
		px, py := fx, fy
		for j, p := range path {
			if p.X < px || p.Y < py {
				t.Fatalf("walk %d,%d -> %d,%d moved backwards at step %d: %v", fx, fy, tx, ty, j, path)
			}
			if (p.X-px)+(p.Y-py) != 1 {
				t.Fatalf("walk %d,%d -> %d,%d took a non-unit step at %d: %v", fx, fy, tx, ty, j, path)
			}
			if j < len(path)-1 && g.TileAt(p.X, p.Y).IsObstacle() {
				t.Fatalf("walk continued past obstacle at %v", p)
			}
			px, py = p.X, p.Y
		}
		if len(path) > 0 {
			last := path[len(path)-1]
			if visible == g.TileAt(last.X, last.Y).IsObstacle() {
				t.Fatalf("visible = %v but last cell %v obstacle = %v", visible, last, !visible)
			}
		}
	}
}

func TestLineOfSightReversedRunsOffGrid(t *testing.T) {
	var g Grid
	// The walk never moves -x/-y, so it leaves the grid and reports blocked.
	if LineOfSight(&g, 5, 5, 2, 2) {
		t.Error("LineOfSight toward smaller coordinates should report blocked")
	}
	// Targets beyond the grid edge are blocked by the edge.
	if LineOfSight(&g, 0, 0, Width+1, Height+1) {
		t.Error("LineOfSight beyond the grid should report blocked")
	}
}
