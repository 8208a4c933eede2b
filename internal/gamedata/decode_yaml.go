package gamedata

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

func decodeYAML(content []byte) (*WorldDef, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(content, &doc); err != nil {
		return nil, parseError(err)
	}
	if doc.Kind != yaml.DocumentNode || len(doc.Content) == 0 {
		return nil, ErrNoRooms
	}
	top := doc.Content[0]
	if top.Kind != yaml.MappingNode {
		return nil, parseError(fmt.Errorf("line %d: expected a mapping at top level", top.Line))
	}

	def := &WorldDef{}
	var rooms *yaml.Node
	for i := 0; i+1 < len(top.Content); i += 2 {
		key, value := top.Content[i], top.Content[i+1]
		switch key.Value {
		case "rooms":
			rooms = value
		case "start_room":
			def.StartRoom = yamlText(value)
		}
	}
	if rooms == nil || isYAMLNull(rooms) {
		return nil, ErrNoRooms
	}
	if rooms.Kind != yaml.MappingNode {
		return nil, parseError(fmt.Errorf("line %d: rooms must be a mapping", rooms.Line))
	}

	for i := 0; i+1 < len(rooms.Content); i += 2 {
		id := rooms.Content[i].Value
		def.Rooms = append(def.Rooms, decodeYAMLRoom(id, rooms.Content[i+1]))
	}
	return def, nil
}

// decodeYAMLRoom reads one entry of the rooms mapping. Fields that are not
// strings are left empty, so a room that is not a mapping comes back with no
// name or description.
func decodeYAMLRoom(id string, node *yaml.Node) RoomDef {
	room := RoomDef{ID: id}
	if node.Kind != yaml.MappingNode {
		return room
	}

	for i := 0; i+1 < len(node.Content); i += 2 {
		key, value := node.Content[i], node.Content[i+1]
		switch key.Value {
		case "name":
			room.Name = yamlString(value)
		case "description":
			room.Description = yamlString(value)
		case "color":
			room.Color = yamlString(value)
		case "exits":
			room.Exits = decodeYAMLExits(value)
		}
	}
	return room
}

// decodeYAMLExits reads an exits mapping in document order. A null
// destination is a blocked exit. A destination that is not a scalar keeps its
// YAML text as the target, which names no room.
func decodeYAMLExits(node *yaml.Node) []ExitDef {
	if node.Kind != yaml.MappingNode {
		return nil
	}
	var exits []ExitDef
	for i := 0; i+1 < len(node.Content); i += 2 {
		direction, target := node.Content[i].Value, node.Content[i+1]
		exits = append(exits, ExitDef{Direction: direction, Target: yamlText(target)})
	}
	return exits
}

// yamlText returns node as an ID: "" for null, the value of a scalar, or the
// YAML text of a collection.
func yamlText(node *yaml.Node) string {
	switch {
	case isYAMLNull(node):
		return ""
	case node.Kind == yaml.ScalarNode:
		return node.Value
	}
	text, err := yaml.Marshal(node)
	if err != nil {
		return fmt.Sprintf("line %d", node.Line)
	}
	return strings.TrimSpace(string(text))
}

// yamlString returns the value of a string scalar, or "" for anything else.
func yamlString(node *yaml.Node) string {
	if node.Kind != yaml.ScalarNode || node.ShortTag() != "!!str" {
		return ""
	}
	return node.Value
}

func isYAMLNull(node *yaml.Node) bool {
	return node.Kind == yaml.ScalarNode && node.ShortTag() == "!!null"
}
