package geometry

import (
	"encoding/json"
	"fmt"
	"os"
)

// DoorDefinition is the JSON form of a door
type DoorDefinition struct {
	Position Vec3 `json:"position"`
	Forward  Vec2 `json:"forward"`
}

// RoomDefinition is the JSON form of a room prefab
type RoomDefinition struct {
	ID         string           `json:"id"`
	Name       string           `json:"name"`
	Dimensions Vec3             `json:"dimensions"`
	Doors      []DoorDefinition `json:"doors"`
}

// LoadRoomFromFile loads a room definition from a JSON file
func LoadRoomFromFile(filepath string) (*RoomDefinition, error) {
	data, err := os.ReadFile(filepath)
	if err != nil {
		return nil, fmt.Errorf("failed to read room file: %w", err)
	}
	return ParseRoomDefinition(data)
}

// ParseRoomDefinition decodes a room definition from JSON
func ParseRoomDefinition(data []byte) (*RoomDefinition, error) {
	var def RoomDefinition
	if err := json.Unmarshal(data, &def); err != nil {
		return nil, fmt.Errorf("failed to parse room JSON: %w", err)
	}
	return &def, nil
}

// Room converts the definition into an immutable Room, validating every door
func (def *RoomDefinition) Room() (Room, error) {
	doors := make([]Door, 0, len(def.Doors))
	for i, d := range def.Doors {
		door, err := NewDoor(d.Position, d.Forward)
		if err != nil {
			return Room{}, fmt.Errorf("room %q door %d: %w", def.ID, i, err)
		}
		doors = append(doors, door)
	}
	return NewRoom(def.Dimensions, doors), nil
}
