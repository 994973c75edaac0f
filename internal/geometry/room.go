package geometry

import (
	"errors"
	"fmt"
)

var ErrZeroDirection = errors.New("door direction cannot be zero")

// Door is a door prefab placement in a room's local space. Forward points out
// of the room and is always unit length.
type Door struct {
	position Vec3
	forward  Vec2
}

func NewDoor(position Vec3, forward Vec2) (Door, error) {
	length := forward.Length()
	if length == 0 {
		return Door{}, fmt.Errorf("%w: door at %v has forward %v", ErrZeroDirection, position, forward)
	}
	return Door{position: position, forward: forward.Scale(1 / length)}, nil
}

func (d Door) Position() Vec3 { return d.position }

func (d Door) Forward() Vec2 { return d.forward }

// ExteriorCell returns the cell just outside the door, for a room whose
// minimum corner sits at origin. The door position is pushed half a cell
// forward before flooring, which also absorbs float error on the wall line.
func (d Door) ExteriorCell(origin Point, conv CellUnitConverter) Point {
	hall := d.position.XY().Add(d.forward.Scale(conv.MetersPerCell() / 2))
	return origin.Add(conv.PositionToCell(hall))
}

// Room is an immutable room prefab description: a world-space footprint and
// its doors.
type Room struct {
	dimensions Vec3
	doors      []Door
}

func NewRoom(dimensions Vec3, doors []Door) Room {
	return Room{dimensions: dimensions, doors: append([]Door(nil), doors...)}
}

func (r Room) Dimensions() Vec3 { return r.dimensions }

// Doors returns a copy of the door list.
func (r Room) Doors() []Door { return append([]Door(nil), r.doors...) }

func (r Room) DoorCount() int { return len(r.doors) }

// CellSize is the room footprint in cells.
func (r Room) CellSize(conv CellUnitConverter) Point {
	return conv.SizeToCells(r.dimensions.XY())
}

// FourDoorRoom builds a square room with one door centered on each wall.
func FourDoorRoom(side, height float64) Room {
	half := side / 2
	doors := make([]Door, 0, 4)
	for _, d := range []struct {
		pos Vec3
		fwd Vec2
	}{
		{Vec3{X: half, Y: 0}, Vec2{X: 0, Y: -1}},
		{Vec3{X: half, Y: side}, Vec2{X: 0, Y: 1}},
		{Vec3{X: 0, Y: half}, Vec2{X: -1, Y: 0}},
		{Vec3{X: side, Y: half}, Vec2{X: 1, Y: 0}},
	} {
		door, _ := NewDoor(d.pos, d.fwd)
		doors = append(doors, door)
	}
	return NewRoom(Vec3{X: side, Y: side, Z: height}, doors)
}
