package hull

import (
	"github.com/kpfaulkner/quickhull-go/geometry"
	"github.com/kpfaulkner/quickhull-go/util"
)

// partition reorders points[begin..end] (inclusive) so that every point
// right of line comes first. Returns the index of the first point that is
// not right of line; begin when there are none.
func partition(points []util.Point, begin int, end int, line geometry.Line) int {
	for begin <= end {
		for begin <= end && geometry.IsRightOf(points[begin], line) {
			begin++
		}
		for begin <= end && !geometry.IsRightOf(points[end], line) {
			end--
		}
		if begin <= end {
			util.Swap(points, begin, end)
			begin++
			end--
		}
	}
	return begin
}

// findFurthestPoint returns the index of the point in points[begin..end]
// that is furthest right of line, along with its negated signed area (the
// distance scaled by the line length). Zero means no point in the range is
// strictly right of line.
//
// Points tied for furthest lie on a parallel to line and only the two ends
// of that run are hull vertices, so ties go to the point projecting nearest
// to line.Begin.
func findFurthestPoint(points []util.Point, begin int, end int, line geometry.Line) (int, int64) {
	furthest := begin
	var maxDistance int64
	for i := begin; i <= end; i++ {
		distance := -geometry.SignedArea(points[i], line)
		closerTie := distance == maxDistance && distance > 0 &&
			geometry.Projection(points[i], line) < geometry.Projection(points[furthest], line)
		if distance > maxDistance || closerTie {
			furthest = i
			maxDistance = distance
		}
	}
	return furthest, maxDistance
}
