package entity

import (
	"math/rand"

	"github.com/samdwyer/fieldsim/internal/gamedata"
	"github.com/samdwyer/fieldsim/internal/world"
)

// Sight answers line-of-sight queries between grid cells.
type Sight interface {
	CanSee(fromX, fromY, toX, toY int) bool
}

// Rand is the subset of *rand.Rand used by decision updates.
type Rand interface {
	Intn(n int) int
}

// Enemy is an autonomous agent with a continuous position and a target.
type Enemy struct {
	X, Y             float64 // Current position
	TargetX, TargetY float64 // Point the enemy moves toward while Wander or Chase
	State            State
}

// Randomize places the enemy uniformly within the grid.
func (e *Enemy) Randomize(rng *rand.Rand) {
	e.X = rng.Float64() * world.Width
	e.Y = rng.Float64() * world.Height
}

// Cell returns the grid cell the enemy occupies, truncating its position.
func (e *Enemy) Cell() (int, int) {
	return int(e.X), int(e.Y)
}

// Reach is the squared-difference metric used for every radius check:
// (x-px)² - (y-py)². It is not a distance and can be negative.
func Reach(x, y, px, py float64) float64 {
	dx := x - px
	dy := y - py
	return dx*dx - dy*dy
}

// Tick advances the enemy's position by delta seconds. The enemy closes
// speed*delta of the remaining gap to its target while Wander or Chase.
func (e *Enemy) Tick(delta, speed float64) {
	if !e.State.Moving() {
		return
	}
	e.X += (e.TargetX - e.X) * speed * delta
	e.Y += (e.TargetY - e.Y) * speed * delta
}

// Decide runs one decision update and returns the transition it made.
func (e *Enemy) Decide(sight Sight, player Player, rng Rand, b gamedata.EnemyBehavior) Transition {
	t := Transition{From: e.State}

	switch e.State {
	case StateStop:
		e.decideStop(sight, player, rng, b)
	case StateWander:
		e.decideWander(sight, player, b)
	case StateChase:
		if e.notices(sight, player, b.Radius.ChaseSearch) {
			e.retarget(player)
		} else {
			e.State = StateSearch
		}
	case StateSearch:
		if e.notices(sight, player, b.Radius.SearchSearch) {
			e.retarget(player)
			e.State = StateChase
		} else {
			e.State = StateStop
		}
	}

	t.To = e.State
	return t
}

func (e *Enemy) decideStop(sight Sight, player Player, rng Rand, b gamedata.EnemyBehavior) {
	if e.notices(sight, player, b.Radius.StopSearch) {
		e.retarget(player)
		e.State = StateChase
		return
	}

	// The new target is kept even when it cannot be seen; the next
	// decision draws another one.
	e.TargetX = clamp(e.X+offset(rng, b.WanderOffset), 0, world.Width+1)
	e.TargetY = clamp(e.Y+offset(rng, b.WanderOffset), 0, world.Height+1)

	x, y := e.Cell()
	if sight.CanSee(x, y, int(e.TargetX), int(e.TargetY)) {
		e.State = StateWander
	}
}

func (e *Enemy) decideWander(sight Sight, player Player, b gamedata.EnemyBehavior) {
	if e.notices(sight, player, b.Radius.StopSearch) {
		e.retarget(player)
		e.State = StateChase
	}

	// Checked after the chase test, against whatever the target now is.
	if Reach(e.X, e.Y, e.TargetX, e.TargetY) < b.Radius.WanderStop {
		e.State = StateStop
	}
}

// notices reports whether the player is within radius and visible.
func (e *Enemy) notices(sight Sight, player Player, radius float64) bool {
	reach := Reach(e.X, e.Y, player.X, player.Y)
	x, y := e.Cell()
	px, py := player.Cell()
	canSee := sight.CanSee(x, y, px, py)
	return reach < radius && canSee
}

func (e *Enemy) retarget(player Player) {
	e.TargetX = player.X
	e.TargetY = player.Y
}

// offset draws a whole number in [-limit, limit].
func offset(rng Rand, limit int) float64 {
	return float64(rng.Intn(2*limit+1) - limit)
}

func clamp(v, lo, hi float64) float64 {
	return min(max(v, lo), hi)
}
