package geometry

// Relax runs a multi-source breadth-first relaxation from seeds. A neighbor
// takes distance+1 when it is on the grid, is not a room or hall, and
// currently holds a larger value. Values only ever go down.
func (f *DistanceField) Relax(seeds []Point) {
	queue := make([]Point, 0, len(seeds))
	for _, s := range seeds {
		if f.At(s).Finite() {
			queue = append(queue, s)
		}
	}

	for head := 0; head < len(queue); head++ {
		cur := queue[head]
		next := f.At(cur).Value() + 1
		for _, off := range Orthogonal {
			n := cur.Add(off)
			if !f.InBounds(n) {
				continue
			}
			c := f.At(n)
			if c.Kind == KindRoom || c.Kind == KindHall {
				continue
			}
			if c.Value() > next {
				f.Set(n, DistanceCell(next))
				queue = append(queue, n)
			}
		}
	}
}

// Recalculate rebuilds every distance from scratch: relaxed distances are
// cleared, seeds are pinned to 0 (halls keep their marker) and the field is
// relaxed again.
func (f *DistanceField) Recalculate(seeds []Point) {
	for i, c := range f.cells {
		if c.Kind == KindDistance && c.Dist > 0 {
			f.cells[i] = UncalculatedCell
		}
	}
	for _, s := range seeds {
		switch f.At(s).Kind {
		case KindRoom, KindHall:
		default:
			f.Set(s, DistanceCell(0))
		}
	}
	f.Relax(seeds)
}
