package hull

import (
	"errors"
	"fmt"

	"github.com/kpfaulkner/quickhull-go/geometry"
	"github.com/kpfaulkner/quickhull-go/util"
)

var (
	ErrNotSubset    = errors.New("hull vertex is not an input point")
	ErrPointOutside = errors.New("input point lies outside the hull")
	ErrNotConvex    = errors.New("hull is not strictly convex and counter-clockwise")
)

// Verify checks that hull is the convex hull of input as produced by
// QuickHull: every vertex is an input point, no input point lies right of
// any edge when walked in order, and consecutive vertices turn strictly
// counter-clockwise. Hulls of fewer than three vertices are checked as a
// point or a segment covering every input point.
func Verify(input []util.Point, hull []util.Point) error {
	remaining := make(map[util.Point]int, len(input))
	for _, p := range input {
		remaining[p]++
	}
	for i, p := range hull {
		if remaining[p] == 0 {
			return fmt.Errorf("vertex %d %v: %w", i, p, ErrNotSubset)
		}
		remaining[p]--
	}

	switch len(hull) {
	case 0:
		if len(input) != 0 {
			return fmt.Errorf("empty hull for %d points: %w", len(input), ErrPointOutside)
		}
		return nil
	case 1:
		for _, p := range input {
			if p != hull[0] {
				return fmt.Errorf("point %v: %w", p, ErrPointOutside)
			}
		}
		return nil
	case 2:
		for _, p := range input {
			if !onSegment(p, hull[0], hull[1]) {
				return fmt.Errorf("point %v: %w", p, ErrPointOutside)
			}
		}
		return nil
	}

	n := len(hull)
	for i := 0; i < n; i++ {
		a, b, c := hull[i], hull[(i+1)%n], hull[(i+2)%n]
		if geometry.IsClockwise(a, b, c) || geometry.Collinear(a, b, c) {
			return fmt.Errorf("vertices %v %v %v: %w", a, b, c, ErrNotConvex)
		}
	}

	for i := 0; i < n; i++ {
		edge := geometry.NewLine(hull[i], hull[(i+1)%n])
		for _, p := range input {
			if geometry.IsRightOf(p, edge) {
				return fmt.Errorf("point %v right of edge %v -> %v: %w", p, edge.Begin, edge.End, ErrPointOutside)
			}
		}
	}
	return nil
}

func onSegment(p util.Point, a util.Point, b util.Point) bool {
	if !geometry.Collinear(a, b, p) {
		return false
	}
	lo, hi := util.BoundingBox([]util.Point{a, b})
	return p.X >= lo.X && p.X <= hi.X && p.Y >= lo.Y && p.Y <= hi.Y
}
