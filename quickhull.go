package quickhull

import (
	"io"

	"github.com/kpfaulkner/quickhull-go/hull"
	"github.com/kpfaulkner/quickhull-go/pointio"
	"github.com/kpfaulkner/quickhull-go/util"
)

// ConvexHull returns the hull vertices of points, counter-clockwise from the
// lowest point. points is not modified.
func ConvexHull(points []util.Point) []util.Point {
	working := append([]util.Point(nil), points...)

	// only fails on invalid options
	q, _ := hull.NewQuickHull(working)
	q.Calculate()
	return q.Hull()
}

// ConvexHullFromReader parses a point list from r and writes its hull to w
// in the same format.
func ConvexHullFromReader(r io.Reader, w io.Writer) error {
	points, err := pointio.ReadPoints(r)
	if err != nil {
		return err
	}
	return pointio.WritePoints(w, ConvexHull(points))
}
