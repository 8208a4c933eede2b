package gamedata

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// tomlRoom is the TOML form of a room entry. TOML has no null, so a blocked
// exit is written as an empty string.
type tomlRoom struct {
	Name        string            `toml:"name"`
	Description string            `toml:"description"`
	Color       string            `toml:"color"`
	Exits       map[string]string `toml:"exits"`
}

type tomlWorld struct {
	StartRoom string              `toml:"start_room"`
	Rooms     map[string]tomlRoom `toml:"rooms"`
}

func decodeTOML(content []byte) (*WorldDef, error) {
	var raw tomlWorld
	md, err := toml.Decode(string(content), &raw)
	if err != nil {
		return nil, parseError(err)
	}
	if !md.IsDefined("rooms") {
		return nil, ErrNoRooms
	}

	// The decoded maps are unordered; MetaData keeps document order.
	var roomOrder []string
	exitOrder := make(map[string][]string)
	seen := make(map[string]bool)
	for _, key := range md.Keys() {
		if len(key) < 2 || key[0] != "rooms" {
			continue
		}
		id := key[1]
		if !seen[id] {
			seen[id] = true
			roomOrder = append(roomOrder, id)
		}
		if len(key) == 4 && key[2] == "exits" {
			exitOrder[id] = append(exitOrder[id], key[3])
		}
	}

	def := &WorldDef{StartRoom: raw.StartRoom}
	for _, id := range roomOrder {
		entry, ok := raw.Rooms[id]
		if !ok {
			return nil, parseError(fmt.Errorf("room %q: expected a table", id))
		}
		room := RoomDef{
			ID:          id,
			Name:        entry.Name,
			Description: entry.Description,
			Color:       entry.Color,
		}
		for _, direction := range exitOrder[id] {
			room.Exits = append(room.Exits, ExitDef{
				Direction: direction,
				Target:    entry.Exits[direction],
			})
		}
		def.Rooms = append(def.Rooms, room)
	}
	return def, nil
}
