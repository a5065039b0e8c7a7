// Package state holds the viewer's run modes.
package state

// GameState is what the playing scene does with each tick.
type GameState int

const (
	StatePlaying   GameState = iota // keyboard drives the simulation
	StateReplaying                  // a recording drives the simulation
	StatePaused                     // no ticks run
	StateFinished                   // the recording ran out
)

// String returns the string representation of the game state
func (s GameState) String() string {
	switch s {
	case StatePlaying:
		return "Playing"
	case StateReplaying:
		return "Replaying"
	case StatePaused:
		return "Paused"
	case StateFinished:
		return "Finished"
	default:
		return "Unknown"
	}
}

// Running reports whether ticks advance in this state.
func (s GameState) Running() bool {
	return s == StatePlaying || s == StateReplaying
}
