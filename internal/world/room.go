// Package world builds the room graph of a game world from its definition.
//
// Loading runs in two passes. The first creates a Room for every well-formed
// room definition and indexes it by ID in a Repository. The second resolves
// each declared exit against that index, so exits may point at rooms defined
// later in the file. Problems with individual rooms, exits or the start room
// are reported as Diagnostics and never stop the load.
package world

import (
	"slices"
	"strings"
)

// Room is a single location in the world graph.
//
// An exit direction is in one of three states: absent from Exits (no exit),
// present with a nil destination (a blocked exit), or present with a
// destination room.
type Room struct {
	Name        string
	Description string
	Color       string // Optional hex color, empty if unset
	Exits       map[string]*Room
}

func newRoom(name, description string) *Room {
	return &Room{
		Name:        name,
		Description: description,
		Exits:       make(map[string]*Room),
	}
}

// Exit returns the destination in the given direction. ok is false when the
// room has no exit that way; a nil destination with ok true is a blocked exit.
func (r *Room) Exit(direction string) (dest *Room, ok bool) {
	dest, ok = r.Exits[direction]
	return dest, ok
}

// compassRank orders the common directions ahead of any custom label.
var compassRank = map[string]int{
	"north": 0,
	"south": 1,
	"east":  2,
	"west":  3,
	"up":    4,
	"down":  5,
}

// Directions returns the room's exit labels, compass directions first and
// the rest alphabetically.
func (r *Room) Directions() []string {
	dirs := make([]string, 0, len(r.Exits))
	for dir := range r.Exits {
		dirs = append(dirs, dir)
	}
	slices.SortFunc(dirs, func(a, b string) int {
		ra, aok := compassRank[a]
		rb, bok := compassRank[b]
		switch {
		case aok && bok:
			return ra - rb
		case aok:
			return -1
		case bok:
			return 1
		default:
			return strings.Compare(a, b)
		}
	})
	return dirs
}
