// Package game provides the real-time loop that drives and displays the field.
package game

// State represents whether the simulation is advancing.
type State int

const (
	// StateRunning advances the field every frame.
	StateRunning State = iota
	// StatePaused keeps drawing but stops feeding time to the field.
	StatePaused
)

// String returns a human-readable state name.
func (s State) String() string {
	switch s {
	case StateRunning:
		return "running"
	case StatePaused:
		return "paused"
	default:
		return "unknown"
	}
}
