package util

import "fmt"

// Point is an integer coordinate in the plane. Coordinates fit in 32 bits so
// that products of two coordinate differences always fit in an int64.
type Point struct {
	X int32
	Y int32
}

func NewPoint(x int32, y int32) Point {
	return Point{
		X: x,
		Y: y,
	}
}

func (p Point) String() string {
	return fmt.Sprintf("{ %d, %d }", p.X, p.Y)
}

// Below reports whether p sorts before other when ordering by lowest Y,
// then lowest X.
func (p Point) Below(other Point) bool {
	if p.Y != other.Y {
		return p.Y < other.Y
	}
	return p.X < other.X
}

// BoundingBox returns the component-wise minimum and maximum of points.
// Returns zero points for an empty slice.
func BoundingBox(points []Point) (Point, Point) {
	if len(points) == 0 {
		return Point{}, Point{}
	}
	lo := points[0]
	hi := points[0]
	for _, p := range points[1:] {
		lo.X = Min(lo.X, p.X)
		lo.Y = Min(lo.Y, p.Y)
		hi.X = Max(hi.X, p.X)
		hi.Y = Max(hi.Y, p.Y)
	}
	return lo, hi
}
