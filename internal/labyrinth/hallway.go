package labyrinth

import (
	"fmt"
	"math"

	"github.com/Ko-stant/labyrinth-engine/internal/geometry"
)

// connect carves a hallway from the nearest door of the room at origin back
// to the existing network and returns the number of cells on it.
func (st *buildState) connect(origin geometry.Point) (int, error) {
	start, err := st.nearestDoor(origin)
	if err != nil {
		return 0, err
	}
	path, err := descend(st.field, start)
	if err != nil {
		return 0, err
	}
	for _, p := range path {
		if st.field.At(p).Kind != geometry.KindHall {
			st.field.Set(p, geometry.HallCell)
		}
		st.addSeed(p)
	}
	return len(path), nil
}

// nearestDoor picks the door exterior cell with the lowest distance. The
// first door wins a tie.
func (st *buildState) nearestDoor(origin geometry.Point) (geometry.Point, error) {
	doors := st.cfg.Room.Doors()
	if len(doors) == 0 {
		return geometry.Point{}, fmt.Errorf("%w: room at %v", ErrNoDoors, origin)
	}

	var best geometry.Point
	bestValue := math.MaxInt
	for _, door := range doors {
		cell := door.ExteriorCell(origin, st.conv)
		c := st.field.At(cell)
		if !st.field.InBounds(cell) || !c.Finite() {
			continue
		}
		if v := c.Value(); v < bestValue {
			best, bestValue = cell, v
		}
	}
	if bestValue == math.MaxInt {
		return geometry.Point{}, errNoReachableDoor
	}
	return best, nil
}

// descend follows the steepest descent of the field from start until it
// reaches a cell at distance 0. The returned path includes both ends.
func descend(field *geometry.DistanceField, start geometry.Point) ([]geometry.Point, error) {
	path := []geometry.Point{start}
	limit := field.Width() * field.Height()
	cur := start
	for field.At(cur).Value() > 0 {
		if len(path) > limit {
			return nil, fmt.Errorf("%w: hallway from %v longer than %d cells", ErrDisconnected, start, limit)
		}
		next := cur
		lowest := field.At(cur).Value()
		for _, off := range geometry.Orthogonal {
			n := cur.Add(off)
			if !field.InBounds(n) {
				continue
			}
			if v := field.At(n).Value(); v < lowest {
				next, lowest = n, v
			}
		}
		if next == cur {
			return nil, fmt.Errorf("%w: no downhill neighbor at %v", ErrDisconnected, cur)
		}
		path = append(path, next)
		cur = next
	}
	return path, nil
}
