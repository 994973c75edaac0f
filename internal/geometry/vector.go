package geometry

import (
	"fmt"
	"math"
)

// Vec2 is a world-space vector in meters on the ground plane.
type Vec2 struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

func (v Vec2) Add(o Vec2) Vec2 { return Vec2{X: v.X + o.X, Y: v.Y + o.Y} }

func (v Vec2) Scale(s float64) Vec2 { return Vec2{X: v.X * s, Y: v.Y * s} }

func (v Vec2) Length() float64 { return math.Hypot(v.X, v.Y) }

// DistanceSquared returns the squared euclidean distance between a and b.
func DistanceSquared(a, b Vec2) float64 {
	dx := a.X - b.X
	dy := a.Y - b.Y
	return dx*dx + dy*dy
}

func (v Vec2) String() string {
	return fmt.Sprintf("(%f, %f)", v.X, v.Y)
}

// Vec3 is a world-space vector in meters. Z is up and is ignored by the
// labyrinth layout.
type Vec3 struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// XY drops the up axis.
func (v Vec3) XY() Vec2 { return Vec2{X: v.X, Y: v.Y} }

func (v Vec3) String() string {
	return fmt.Sprintf("(%f, %f, %f)", v.X, v.Y, v.Z)
}
