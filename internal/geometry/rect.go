package geometry

import (
	"fmt"
	"iter"
)

// Rect is an axis-aligned block of cells. Min is inclusive and Max is
// exclusive, so a room of size w*h at origin o is Rect{o, o+(w,h)}.
type Rect struct {
	Min Point `json:"min"`
	Max Point `json:"max"`
}

// RectAt builds the rectangle of the given size whose minimum corner is origin.
func RectAt(origin, size Point) Rect {
	return Rect{Min: origin, Max: origin.Add(size)}
}

func (r Rect) Size() Point { return r.Max.Sub(r.Min) }

func (r Rect) Empty() bool { return r.Min.X >= r.Max.X || r.Min.Y >= r.Max.Y }

func (r Rect) Contains(p Point) bool {
	return p.X >= r.Min.X && p.X < r.Max.X && p.Y >= r.Min.Y && p.Y < r.Max.Y
}

// Within reports whether r lies entirely inside outer.
func (r Rect) Within(outer Rect) bool {
	return r.Min.X >= outer.Min.X && r.Min.Y >= outer.Min.Y &&
		r.Max.X <= outer.Max.X && r.Max.Y <= outer.Max.Y
}

// Overlaps reports whether the two rectangles share at least one cell.
func (r Rect) Overlaps(o Rect) bool {
	if r.Empty() || o.Empty() {
		return false
	}
	return r.Min.X < o.Max.X && o.Min.X < r.Max.X &&
		r.Min.Y < o.Max.Y && o.Min.Y < r.Max.Y
}

// Points yields every cell of the rectangle in row-major order.
func (r Rect) Points() iter.Seq[Point] {
	return func(yield func(Point) bool) {
		for y := r.Min.Y; y < r.Max.Y; y++ {
			for x := r.Min.X; x < r.Max.X; x++ {
				if !yield(Point{X: x, Y: y}) {
					return
				}
			}
		}
	}
}

func (r Rect) String() string {
	return fmt.Sprintf("[%v-%v)", r.Min, r.Max)
}
