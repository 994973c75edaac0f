package geometry

import (
	"errors"
	"fmt"
	"iter"
	"math"
)

var ErrInvalidFieldSize = errors.New("distance field dimensions must be positive")

type CellKind uint8

const (
	// KindUncalculated is the zero value: nothing has propagated here yet.
	KindUncalculated CellKind = iota
	// KindRoom is impassable and owned by a placed room for life.
	KindRoom
	// KindHall is carved corridor. It acts as distance 0.
	KindHall
	// KindDistance carries a relaxed distance to the nearest seed.
	KindDistance
)

func (k CellKind) String() string {
	switch k {
	case KindUncalculated:
		return "uncalculated"
	case KindRoom:
		return "room"
	case KindHall:
		return "hall"
	case KindDistance:
		return "distance"
	}
	return fmt.Sprintf("CellKind(%d)", uint8(k))
}

// Cell is one distance field entry. Dist is only meaningful for KindDistance.
type Cell struct {
	Kind CellKind
	Dist int
}

var (
	UncalculatedCell = Cell{Kind: KindUncalculated}
	RoomCell         = Cell{Kind: KindRoom}
	HallCell         = Cell{Kind: KindHall}
)

func DistanceCell(n int) Cell { return Cell{Kind: KindDistance, Dist: n} }

// Value orders cells for relaxation and descent. Rooms rank above every
// other state, uncalculated cells rank above every real distance, and halls
// rank as 0.
func (c Cell) Value() int {
	switch c.Kind {
	case KindRoom:
		return math.MaxInt
	case KindUncalculated:
		return math.MaxInt - 1
	case KindHall:
		return 0
	}
	return max(c.Dist, 0)
}

// Finite reports whether the cell holds a usable distance.
func (c Cell) Finite() bool { return c.Kind == KindHall || c.Kind == KindDistance }

// Claimed reports whether the cell is part of the hallway network: a carved
// hall or a zero-distance door seed. Rooms may not be placed over these.
func (c Cell) Claimed() bool { return c.Finite() && c.Value() <= 0 }

// DistanceField is a row-major grid of cells.
type DistanceField struct {
	width  int
	height int
	cells  []Cell
}

// NewDistanceField returns a field with every cell uncalculated.
func NewDistanceField(width, height int) (*DistanceField, error) {
	if width < 1 || height < 1 {
		return nil, fmt.Errorf("%w: got width=%d height=%d", ErrInvalidFieldSize, width, height)
	}
	return &DistanceField{width: width, height: height, cells: make([]Cell, width*height)}, nil
}

func (f *DistanceField) Width() int  { return f.width }
func (f *DistanceField) Height() int { return f.height }

func (f *DistanceField) Bounds() Rect {
	return Rect{Max: Point{X: f.width, Y: f.height}}
}

func (f *DistanceField) InBounds(p Point) bool {
	return p.X >= 0 && p.Y >= 0 && p.X < f.width && p.Y < f.height
}

// At returns the cell at p, or a room cell for anything off the grid so
// callers treat the border as a wall.
func (f *DistanceField) At(p Point) Cell {
	if !f.InBounds(p) {
		return RoomCell
	}
	return f.cells[p.Y*f.width+p.X]
}

// Set writes c at p. Writes off the grid are ignored.
func (f *DistanceField) Set(p Point, c Cell) {
	if !f.InBounds(p) {
		return
	}
	f.cells[p.Y*f.width+p.X] = c
}

// Reset marks every cell uncalculated.
func (f *DistanceField) Reset() {
	clear(f.cells)
}

// Cells yields every cell with its coordinate in row-major order.
func (f *DistanceField) Cells() iter.Seq2[Point, Cell] {
	return func(yield func(Point, Cell) bool) {
		for i, c := range f.cells {
			if !yield(Point{X: i % f.width, Y: i / f.width}, c) {
				return
			}
		}
	}
}

// Count returns how many cells are of the given kind.
func (f *DistanceField) Count(kind CellKind) int {
	n := 0
	for _, c := range f.cells {
		if c.Kind == kind {
			n++
		}
	}
	return n
}

func (f *DistanceField) Clone() *DistanceField {
	return &DistanceField{width: f.width, height: f.height, cells: append([]Cell(nil), f.cells...)}
}

func (f *DistanceField) Equal(o *DistanceField) bool {
	if f.width != o.width || f.height != o.height {
		return false
	}
	for i := range f.cells {
		if f.cells[i] != o.cells[i] {
			return false
		}
	}
	return true
}

// Fits reports whether r is on the grid and free of rooms and claimed cells.
func (f *DistanceField) Fits(r Rect) bool {
	if !r.Within(f.Bounds()) {
		return false
	}
	for p := range r.Points() {
		c := f.At(p)
		if c.Kind == KindRoom || c.Claimed() {
			return false
		}
	}
	return true
}

// Stamp marks every cell of r as room.
func (f *DistanceField) Stamp(r Rect) {
	for p := range r.Points() {
		f.Set(p, RoomCell)
	}
}
