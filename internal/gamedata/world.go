package gamedata

// WorldDef is the parsed form of a world file.
//
// A world file has a required "rooms" mapping keyed by room ID and an
// optional "start_room" ID:
//
//	{
//	  "start_room": "hall",
//	  "rooms": {
//	    "hall": {
//	      "name": "Hall",
//	      "description": "A long hall.",
//	      "exits": {"north": "kitchen", "south": null}
//	    },
//	    "kitchen": {"name": "Kitchen", "description": "Pots and pans."}
//	  }
//	}
//
// Rooms keep the order in which they appear in the file.
type WorldDef struct {
	StartRoom string    // Empty when the file names no start room
	Rooms     []RoomDef // Document order, duplicates included
}

// RoomDef is one entry of the rooms mapping.
type RoomDef struct {
	ID          string    // Key of the entry in the rooms mapping
	Name        string    // Display name; empty if missing
	Description string    // Long description; empty if missing
	Color       string    // Optional hex color for the room name (e.g., "#E0C080")
	Exits       []ExitDef // Document order
}

// ExitDef declares one direction of a room's exit table.
type ExitDef struct {
	Direction string // Label such as "north" or "trapdoor"
	Target    string // Destination room ID; empty for a blocked exit
}

// Blocked reports whether the exit was declared with no destination.
func (e ExitDef) Blocked() bool {
	return e.Target == ""
}
