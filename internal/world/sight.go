package world

// Point is an integer grid cell.
type Point struct {
	X, Y int
}

// stepScore is the walk's pseudo-distance from c to t. It is not Euclidean.
func stepScore(cx, cy, tx, ty int) int {
	return (cx*cx - tx*tx) + (cy*cy - ty*ty)
}

// LineOfSight reports whether the greedy walk from one cell toward another
// reaches its stopping point without entering an obstacle.
//
// The walk only steps +x or +y, picking whichever step has the lower
// stepScore (ties go to +y). It stops as soon as either coordinate equals the
// target's, so it can end short of the target. Callers must pass
// toX >= fromX and toY >= fromY for the answer to mean anything; otherwise the
// walk runs off the grid and reports blocked.
func LineOfSight(g *Grid, fromX, fromY, toX, toY int) bool {
	return walk(g, fromX, fromY, toX, toY, nil)
}

// Walk returns the cells LineOfSight enters, in order, up to and including the
// first blocked one, and whether sight was clear.
func Walk(g *Grid, fromX, fromY, toX, toY int) ([]Point, bool) {
	var path []Point
	visible := walk(g, fromX, fromY, toX, toY, func(p Point) {
		path = append(path, p)
	})
	return path, visible
}

func walk(g *Grid, fromX, fromY, toX, toY int, visit func(Point)) bool {
	x, y := fromX, fromY
	for x != toX && y != toY {
		if stepScore(x+1, y, toX, toY) < stepScore(x, y+1, toX, toY) {
			x++
		} else {
			y++
		}

		if visit != nil {
			visit(Point{X: x, Y: y})
		}
		if g.TileAt(x, y).IsObstacle() {
			return false
		}
	}
	return true
}

// CanSee reports LineOfSight across g.
func (g *Grid) CanSee(fromX, fromY, toX, toY int) bool {
	return LineOfSight(g, fromX, fromY, toX, toY)
}
