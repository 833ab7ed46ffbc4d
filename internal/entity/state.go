// Package entity provides the enemy agents and the player.
package entity

// State is an enemy's behavioural state.
type State int

const (
	// StateStop is idle: the enemy holds still and looks for a wander target.
	StateStop State = iota
	// StateWander moves toward a random nearby target.
	StateWander
	// StateChase moves toward the player's last seen position.
	StateChase
	// StateSearch holds still after losing the player, then gives up or re-acquires.
	StateSearch
)

// States lists every state in declaration order.
var States = [...]State{StateStop, StateWander, StateChase, StateSearch}

// String returns a human-readable state name.
func (s State) String() string {
	switch s {
	case StateStop:
		return "stop"
	case StateWander:
		return "wander"
	case StateChase:
		return "chase"
	case StateSearch:
		return "search"
	default:
		return "unknown"
	}
}

// Moving returns true for states in which Tick changes position.
func (s State) Moving() bool {
	return s == StateWander || s == StateChase
}

// Transition records the outcome of one decision update.
type Transition struct {
	From, To State
}

// Changed returns true if the decision moved the enemy to another state.
func (t Transition) Changed() bool {
	return t.From != t.To
}
