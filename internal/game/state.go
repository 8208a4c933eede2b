// Package game provides the exploration loop over a loaded world.
package game

// MoveResult is the outcome of an attempted move.
type MoveResult int

const (
	// MoveOK means the explorer walked into the destination room.
	MoveOK MoveResult = iota
	// MoveBlocked means the exit exists but leads nowhere yet.
	MoveBlocked
	// MoveNoExit means the room has no exit in that direction.
	MoveNoExit
)

// String returns a human-readable result name.
func (m MoveResult) String() string {
	switch m {
	case MoveOK:
		return "ok"
	case MoveBlocked:
		return "blocked"
	case MoveNoExit:
		return "no_exit"
	default:
		return "unknown"
	}
}
