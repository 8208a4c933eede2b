package gamedata

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
)

// jsonWorld is the wire form of a world file. Rooms are decoded as a token
// stream because a Go map would lose document order.
type jsonWorld struct {
	StartRoom json.RawMessage `json:"start_room"`
	Rooms     json.RawMessage `json:"rooms"`
}

func decodeJSON(content []byte) (*WorldDef, error) {
	var raw jsonWorld
	if err := json.Unmarshal(content, &raw); err != nil {
		return nil, parseError(err)
	}
	if isJSONNull(raw.Rooms) {
		return nil, ErrNoRooms
	}

	def := &WorldDef{StartRoom: jsonText(raw.StartRoom)}

	err := eachJSONMember(raw.Rooms, func(id string, dec *json.Decoder) error {
		var value json.RawMessage
		if err := dec.Decode(&value); err != nil {
			return fmt.Errorf("room %q: %w", id, err)
		}
		room, err := decodeJSONRoom(id, value)
		if err != nil {
			return fmt.Errorf("room %q: %w", id, err)
		}
		def.Rooms = append(def.Rooms, room)
		return nil
	})
	if err != nil {
		return nil, parseError(err)
	}
	return def, nil
}

// decodeJSONRoom reads one entry of the rooms object. Fields of the wrong
// type are left empty, so a room that is not an object, or whose name or
// description is not a string, comes back without them.
func decodeJSONRoom(id string, value json.RawMessage) (RoomDef, error) {
	room := RoomDef{ID: id}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(value, &fields); err != nil || fields == nil {
		return room, nil
	}
	room.Name = jsonString(fields["name"])
	room.Description = jsonString(fields["description"])
	room.Color = jsonString(fields["color"])

	exits, err := decodeJSONExits(fields["exits"])
	if err != nil {
		return RoomDef{}, err
	}
	room.Exits = exits
	return room, nil
}

// decodeJSONExits reads an exits object in document order. A null
// destination is a blocked exit. A destination that is not a string keeps
// its JSON text as the target, which names no room.
func decodeJSONExits(raw json.RawMessage) ([]ExitDef, error) {
	if isJSONNull(raw) || !isJSONObject(raw) {
		return nil, nil
	}
	var exits []ExitDef
	err := eachJSONMember(raw, func(direction string, dec *json.Decoder) error {
		var target json.RawMessage
		if err := dec.Decode(&target); err != nil {
			return fmt.Errorf("exit %q: %w", direction, err)
		}
		exits = append(exits, ExitDef{Direction: direction, Target: jsonText(target)})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("exits: %w", err)
	}
	return exits, nil
}

// eachJSONMember calls fn for every member of the JSON object in raw, in
// document order. fn must consume exactly one value from dec.
func eachJSONMember(raw json.RawMessage, fn func(key string, dec *json.Decoder) error) error {
	dec := json.NewDecoder(bytes.NewReader(raw))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return errors.New("expected an object")
	}

	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		key, ok := tok.(string)
		if !ok {
			return fmt.Errorf("unexpected token %v", tok)
		}
		if err := fn(key, dec); err != nil {
			return err
		}
	}

	_, err = dec.Token()
	return err
}

// jsonString returns raw as a string, or "" if raw is not a JSON string.
func jsonString(raw json.RawMessage) string {
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return ""
	}
	return s
}

// jsonText returns raw as an ID: "" for null, the value of a string, or the
// JSON text of any other value.
func jsonText(raw json.RawMessage) string {
	if isJSONNull(raw) {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return string(bytes.TrimSpace(raw))
	}
	return s
}

func isJSONNull(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null"))
}

func isJSONObject(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) > 0 && trimmed[0] == '{'
}
