package labyrinth

import (
	"errors"
	"math"

	"github.com/Ko-stant/labyrinth-engine/internal/geometry"
)

// placeFirstRoom centers the first room on the grid and seeds its doors.
func (st *buildState) placeFirstRoom() {
	origin := geometry.Point{
		X: st.cfg.Width/2 - st.roomSize.X/2,
		Y: st.cfg.Height/2 - st.roomSize.Y/2,
	}
	rect := geometry.RectAt(origin, st.roomSize)
	st.field.Stamp(rect)
	st.rooms = append(st.rooms, rect)
	st.addDoorSeeds(origin)
	st.logger.Printf("placed room 0 at %v", rect)
}

// placeRoom searches random directions out from the center until the room
// fits somewhere with at least one reachable door, then connects it.
func (st *buildState) placeRoom(index int) error {
	for attempt := 1; attempt <= st.cfg.MaxPlacementAttempts; attempt++ {
		origin, ok := st.searchPath(st.randomDirection())
		if !ok {
			continue
		}
		rect := geometry.RectAt(origin, st.roomSize)
		st.field.Stamp(rect)
		st.field.Recalculate(st.seeds)

		hall, err := st.connect(origin)
		if errors.Is(err, errNoReachableDoor) {
			for p := range rect.Points() {
				st.field.Set(p, geometry.UncalculatedCell)
			}
			st.field.Recalculate(st.seeds)
			continue
		}
		st.rooms = append(st.rooms, rect)
		if err != nil {
			return err
		}

		st.addDoorSeeds(origin)
		st.field.Recalculate(st.seeds)
		st.logger.Printf("placed room %d at %v after %d attempts, hallway of %d cells", index, rect, attempt, hall)
		return nil
	}
	return &PlacementError{Room: index, Attempts: st.cfg.MaxPlacementAttempts}
}

// randomDirection draws both components uniformly from [-1, 1], skipping the
// zero vector.
func (st *buildState) randomDirection() geometry.Vec2 {
	for {
		dir := geometry.Vec2{X: st.rng.Float64()*2 - 1, Y: st.rng.Float64()*2 - 1}
		if dir.X != 0 || dir.Y != 0 {
			return dir
		}
	}
}

// searchPath walks from the grid center along dir one cell boundary at a
// time and returns the first origin where the room fits. It gives up once
// the origin leaves the grid.
func (st *buildState) searchPath(dir geometry.Vec2) (geometry.Point, bool) {
	unit := st.conv.MetersPerCell()
	pos := geometry.Vec2{
		X: float64(st.cfg.Width) * unit / 2,
		Y: float64(st.cfg.Height) * unit / 2,
	}
	maxSteps := 2*(st.cfg.Width+st.cfg.Height) + 8
	for range maxSteps {
		origin := st.conv.PositionToCell(pos)
		if !st.field.InBounds(origin) {
			return geometry.Point{}, false
		}
		if st.field.Fits(geometry.RectAt(origin, st.roomSize)) {
			return origin, true
		}
		pos = nextSearchPoint(pos, dir, math.Abs(unit))
	}
	return geometry.Point{}, false
}

// nextSearchPoint returns the next point along the line through pos with
// direction dir that lies on a cell boundary. For slanted lines it takes
// whichever of the next x or y boundary crossings is nearer, which walks the
// line as a staircase.
func nextSearchPoint(pos, dir geometry.Vec2, spacing float64) geometry.Vec2 {
	switch {
	case dir.X == 0:
		return geometry.Vec2{X: pos.X, Y: nextBoundary(pos.Y, dir.Y, spacing)}
	case dir.Y == 0:
		return geometry.Vec2{X: nextBoundary(pos.X, dir.X, spacing), Y: pos.Y}
	}

	// y = m*x + b
	m := dir.Y / dir.X
	b := pos.Y - m*pos.X

	nx := nextBoundary(pos.X, dir.X, spacing)
	alongX := geometry.Vec2{X: nx, Y: m*nx + b}
	ny := nextBoundary(pos.Y, dir.Y, spacing)
	alongY := geometry.Vec2{X: (ny - b) / m, Y: ny}

	if geometry.DistanceSquared(pos, alongX) <= geometry.DistanceSquared(pos, alongY) {
		return alongX
	}
	return alongY
}

// nextBoundary returns the next multiple of spacing strictly past v in the
// direction of sign(dir).
func nextBoundary(v, dir, spacing float64) float64 {
	const eps = 1e-9
	k := v / spacing
	if dir > 0 {
		return (math.Floor(k+eps) + 1) * spacing
	}
	return (math.Ceil(k-eps) - 1) * spacing
}
