package geometry

import (
	"github.com/kpfaulkner/quickhull-go/util"
)

// MaxCoordinate bounds the magnitude of any coordinate passed to the
// predicates. Differences then stay below 2^31 and every signed area below
// 2^63.
const MaxCoordinate = 1<<30 - 1

// Line is a directed line from Begin to End.
type Line struct {
	Begin util.Point
	End   util.Point
}

func NewLine(begin util.Point, end util.Point) Line {
	return Line{Begin: begin, End: end}
}

// SignedArea returns twice the signed area of the triangle (line.Begin,
// line.End, p). Positive when p is left of the directed line, negative when
// right of it and zero when p is on it.
func SignedArea(p util.Point, line Line) int64 {
	px, py := int64(p.X), int64(p.Y)
	return (int64(line.Begin.X)-px)*(int64(line.End.Y)-py) -
		(int64(line.End.X)-px)*(int64(line.Begin.Y)-py)
}

// IsRightOf reports whether p is strictly right of line. Points on the line
// are not right of it.
func IsRightOf(p util.Point, line Line) bool {
	return SignedArea(p, line) < 0
}

// Projection returns the dot product of (p - line.Begin) with the line
// direction. Larger values lie further along the line.
func Projection(p util.Point, line Line) int64 {
	return (int64(p.X)-int64(line.Begin.X))*(int64(line.End.X)-int64(line.Begin.X)) +
		(int64(p.Y)-int64(line.Begin.Y))*(int64(line.End.Y)-int64(line.Begin.Y))
}

// IsClockwise reports whether a, b, c make a clockwise turn.
func IsClockwise(a util.Point, b util.Point, c util.Point) bool {
	return orientation(a, b, c) < 0
}

// Collinear reports whether a, b, c lie on a single line.
func Collinear(a util.Point, b util.Point, c util.Point) bool {
	return orientation(a, b, c) == 0
}

func orientation(a util.Point, b util.Point, c util.Point) int64 {
	ax, ay := int64(a.X), int64(a.Y)
	bx, by := int64(b.X), int64(b.Y)
	cx, cy := int64(c.X), int64(c.Y)
	return ax*(by-cy) + bx*(cy-ay) + cx*(ay-by)
}
