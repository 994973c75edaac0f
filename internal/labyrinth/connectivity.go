package labyrinth

import (
	"github.com/Ko-stant/labyrinth-engine/internal/geometry"
)

func isHall(c geometry.Cell) bool { return c.Kind == geometry.KindHall }

// unreachableRooms returns the indexes of rooms that cannot be reached from
// room 0 by walking halls and passing through rooms via their doors.
func unreachableRooms(field *geometry.DistanceField, room geometry.Room, conv geometry.CellUnitConverter, rooms []geometry.Rect) []int {
	if len(rooms) < 2 {
		return nil
	}
	rm := geometry.BuildRegionMap(field, isHall)

	// Rooms and hall regions form a bipartite graph joined at door cells.
	regionRooms := make(map[int][]int)
	roomRegions := make([][]int, len(rooms))
	for i, rect := range rooms {
		for _, door := range room.Doors() {
			region := rm.RegionAt(door.ExteriorCell(rect.Min, conv))
			if region < 0 {
				continue
			}
			roomRegions[i] = append(roomRegions[i], region)
			regionRooms[region] = append(regionRooms[region], i)
		}
	}

	reached := make([]bool, len(rooms))
	reached[0] = true
	queue := []int{0}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, region := range roomRegions[cur] {
			for _, other := range regionRooms[region] {
				if !reached[other] {
					reached[other] = true
					queue = append(queue, other)
				}
			}
		}
	}

	var unreached []int
	for i, ok := range reached {
		if !ok {
			unreached = append(unreached, i)
		}
	}
	return unreached
}
