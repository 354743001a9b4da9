package state

// GameState represents the current state of the game
type GameState int

const (
	StatePlaying GameState = iota
	StatePaused
	StateGameOver
	StateVictory
)

// String returns the string representation of the game state
func (s GameState) String() string {
	switch s {
	case StatePlaying:
		return "Playing"
	case StatePaused:
		return "Paused"
	case StateGameOver:
		return "GameOver"
	case StateVictory:
		return "Victory"
	default:
		return "Unknown"
	}
}

// IsOver reports whether the run has ended
func (s GameState) IsOver() bool {
	return s == StateGameOver || s == StateVictory
}
