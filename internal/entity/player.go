package entity

// Player is the single static player. Health is carried but unused by the simulation.
type Player struct {
	X, Y   float64
	Health float64
}

// NewPlayer creates the player at its starting cell.
func NewPlayer() Player {
	return Player{X: 1, Y: 1, Health: 1}
}

// Cell returns the grid cell the player occupies.
func (p Player) Cell() (int, int) {
	return int(p.X), int(p.Y)
}
