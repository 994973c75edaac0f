package geometry

// RegionMap labels 4-connected components of a field. Cells outside every
// component hold -1.
type RegionMap struct {
	Width         int
	TileRegionIDs []int
	RegionsCount  int
}

func (rm RegionMap) RegionAt(p Point) int {
	if p.X < 0 || p.Y < 0 || p.X >= rm.Width {
		return -1
	}
	idx := p.Y*rm.Width + p.X
	if idx >= len(rm.TileRegionIDs) {
		return -1
	}
	return rm.TileRegionIDs[idx]
}

// BuildRegionMap groups the cells accepted by member into connected regions,
// scanning in row-major order so region ids are stable.
func BuildRegionMap(field *DistanceField, member func(Cell) bool) RegionMap {
	w := field.Width()
	h := field.Height()
	tileRegionIDs := make([]int, w*h)
	for i := range tileRegionIDs {
		tileRegionIDs[i] = -1
	}

	regionID := 0
	queue := make([]Point, 0, w*h)

	for y := range h {
		for x := range w {
			idx := y*w + x
			start := Point{X: x, Y: y}
			if tileRegionIDs[idx] != -1 || !member(field.At(start)) {
				continue
			}
			tileRegionIDs[idx] = regionID
			queue = append(queue[:0], start)

			for len(queue) > 0 {
				cur := queue[0]
				queue = queue[1:]
				for _, off := range Orthogonal {
					n := cur.Add(off)
					if !field.InBounds(n) {
						continue
					}
					nidx := n.Y*w + n.X
					if tileRegionIDs[nidx] != -1 || !member(field.At(n)) {
						continue
					}
					tileRegionIDs[nidx] = regionID
					queue = append(queue, n)
				}
			}
			regionID++
		}
	}

	return RegionMap{Width: w, TileRegionIDs: tileRegionIDs, RegionsCount: regionID}
}
