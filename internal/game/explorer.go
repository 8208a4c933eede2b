package game

import (
	"errors"

	"github.com/zyedidia/generic/mapset"

	"github.com/samdwyer/roomcrawl/internal/world"
)

// ErrNoStartRoom is returned when a world has no resolvable start room.
var ErrNoStartRoom = errors.New("world has no start room")

// Explorer walks the room graph. It never modifies the rooms it visits.
type Explorer struct {
	current *world.Room
	visited mapset.Set[*world.Room]
	moves   int
}

// NewExplorer places an explorer in the start room.
func NewExplorer(start *world.Room) (*Explorer, error) {
	if start == nil {
		return nil, ErrNoStartRoom
	}
	visited := mapset.New[*world.Room]()
	visited.Put(start)
	return &Explorer{current: start, visited: visited}, nil
}

// Current returns the room the explorer is in.
func (e *Explorer) Current() *world.Room {
	return e.current
}

// Moves returns the number of successful moves so far.
func (e *Explorer) Moves() int {
	return e.moves
}

// HasVisited reports whether the explorer has been in room.
func (e *Explorer) HasVisited(room *world.Room) bool {
	return e.visited.Has(room)
}

// VisitedCount returns the number of distinct rooms visited, the start
// room included.
func (e *Explorer) VisitedCount() int {
	return e.visited.Size()
}

// Move follows the exit in direction. The explorer only changes rooms when
// the result is MoveOK.
func (e *Explorer) Move(direction string) MoveResult {
	dest, ok := e.current.Exit(direction)
	if !ok {
		return MoveNoExit
	}
	if dest == nil {
		return MoveBlocked
	}
	e.current = dest
	e.visited.Put(dest)
	e.moves++
	return MoveOK
}
