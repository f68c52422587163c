package testcommon

import (
	"path/filepath"
	"sort"
	"testing"

	"github.com/kpfaulkner/quickhull-go/generator"
	"github.com/kpfaulkner/quickhull-go/pointio"
	"github.com/kpfaulkner/quickhull-go/util"
)

// RandomPoints returns n seeded random points in [-limit, limit].
func RandomPoints(t testing.TB, n int, seed uint64, limit int32) []util.Point {
	g, err := generator.NewGenerator(generator.WithSeed(seed), generator.WithRange(-limit, limit))
	if err != nil {
		t.Fatalf("error creating generator : %v", err)
		return nil
	}
	return g.GeneratePoints(n)
}

// LoadPoints reads a point list from testdata relative to the calling package.
func LoadPoints(t testing.TB, name string) []util.Point {
	points, err := pointio.ReadPointsFromFile(filepath.Join("testdata", name))
	if err != nil {
		t.Fatalf("error reading test points : %v", err)
		return nil
	}
	return points
}

func cross(o util.Point, a util.Point, b util.Point) int64 {
	return (int64(a.X)-int64(o.X))*(int64(b.Y)-int64(o.Y)) - (int64(a.Y)-int64(o.Y))*(int64(b.X)-int64(o.X))
}

// ReferenceHull computes the hull vertices with Andrew's monotone chain,
// dropping collinear boundary points. Order is counter-clockwise but the
// starting vertex may differ from QuickHull's.
func ReferenceHull(points []util.Point) []util.Point {
	sorted := SortedCopy(points)

	// duplicates would otherwise survive as zero length edges
	unique := sorted[:0]
	for i, p := range sorted {
		if i == 0 || p != sorted[i-1] {
			unique = append(unique, p)
		}
	}
	if len(unique) <= 2 {
		return unique
	}

	var lower []util.Point
	for _, p := range unique {
		for len(lower) >= 2 && cross(lower[len(lower)-2], lower[len(lower)-1], p) <= 0 {
			lower = lower[:len(lower)-1]
		}
		lower = append(lower, p)
	}

	var upper []util.Point
	for i := len(unique) - 1; i >= 0; i-- {
		p := unique[i]
		for len(upper) >= 2 && cross(upper[len(upper)-2], upper[len(upper)-1], p) <= 0 {
			upper = upper[:len(upper)-1]
		}
		upper = append(upper, p)
	}

	return append(lower[:len(lower)-1], upper[:len(upper)-1]...)
}

// SortedCopy returns points ordered by X then Y, for order independent
// comparisons.
func SortedCopy(points []util.Point) []util.Point {
	sorted := append([]util.Point(nil), points...)
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].X == sorted[j].X {
			return sorted[i].Y < sorted[j].Y
		}
		return sorted[i].X < sorted[j].X
	})
	return sorted
}
