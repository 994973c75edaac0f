package geometry

import "fmt"

// Point is an integer cell coordinate. It doubles as a 2D offset.
type Point struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Pt is a convenience constructor for Point.
func Pt(x, y int) Point { return Point{X: x, Y: y} }

func (p Point) Add(o Point) Point { return Point{X: p.X + o.X, Y: p.Y + o.Y} }

func (p Point) Sub(o Point) Point { return Point{X: p.X - o.X, Y: p.Y - o.Y} }

func (p Point) String() string {
	return fmt.Sprintf("(%d, %d)", p.X, p.Y)
}

// Orthogonal holds the four neighbor offsets in the order the field is
// searched: +x, -x, +y, -y.
var Orthogonal = [4]Point{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}
