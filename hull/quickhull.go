package hull

import (
	"errors"
	"runtime"

	"github.com/kpfaulkner/quickhull-go/geometry"
	"github.com/kpfaulkner/quickhull-go/util"
	log "github.com/sirupsen/logrus"
)

// smallest range CalculateParallel hands to another goroutine by default
const defaultParallelThreshold = 4096

// QuickHullOption configures a QuickHull at construction.
type QuickHullOption func(q *QuickHull) error

// WithObserver attaches an observer that is notified of each construction
// step. A nil observer is the same as not setting one.
func WithObserver(observer Observer) QuickHullOption {
	return func(q *QuickHull) error {
		if observer == nil {
			observer = NoopObserver{}
		}
		q.observer = observer
		return nil
	}
}

// WithParallelism caps the number of goroutines CalculateParallel may use.
func WithParallelism(workers int) QuickHullOption {
	return func(q *QuickHull) error {
		if workers < 1 {
			return errors.New("parallelism must be at least 1")
		}
		q.workers = workers
		return nil
	}
}

// WithParallelThreshold sets the smallest subrange CalculateParallel will
// hand to another goroutine.
func WithParallelThreshold(n int) QuickHullOption {
	return func(q *QuickHull) error {
		if n < 1 {
			return errors.New("parallel threshold must be at least 1")
		}
		q.threshold = n
		return nil
	}
}

// QuickHull computes the convex hull of points in place. After Calculate
// returns, the first HullSize entries of Points are the hull vertices in
// counter-clockwise order starting at the lowest (then leftmost) point. The
// remaining entries are the other input points in no particular order.
type QuickHull struct {

	// working set, always a permutation of the input
	points []util.Point

	// number of hull vertices at the front of points
	hullSize int

	observer  Observer
	observing bool

	// CalculateParallel settings
	workers   int
	threshold int
}

// NewQuickHull takes ownership of points; the caller must not modify the
// slice until the hull has been calculated.
func NewQuickHull(points []util.Point, opts ...QuickHullOption) (*QuickHull, error) {
	q := &QuickHull{
		points:    points,
		observer:  NoopObserver{},
		workers:   runtime.GOMAXPROCS(0),
		threshold: defaultParallelThreshold,
	}

	for _, opt := range opts {
		if err := opt(q); err != nil {
			return nil, err
		}
	}

	_, noop := q.observer.(NoopObserver)
	q.observing = !noop
	return q, nil
}

func (q *QuickHull) Points() []util.Point {
	return q.points
}

func (q *QuickHull) HullSize() int {
	return q.hullSize
}

// Hull returns the hull prefix of Points. It shares storage with Points.
func (q *QuickHull) Hull() []util.Point {
	return q.points[:q.hullSize]
}

// Calculate builds the hull. Fewer than three points are all hull vertices
// and are left in input order.
func (q *QuickHull) Calculate() {
	length := len(q.points)
	q.hullSize = 0
	if length < 3 {
		q.hullSize = length
		return
	}

	last := q.seed()
	q.expand(1, length-2, geometry.NewLine(q.points[0], last))
	q.addPointToHull(length - 1)

	log.Debugf("quickhull: %d points, %d hull vertices", length, q.hullSize)
}

// seed moves the lowest point to the front of the hull and the point with
// the largest polar angle around it to the last index. Every other point is
// then right of, or on, the line between them. Returns the last point.
func (q *QuickHull) seed() util.Point {
	length := len(q.points)

	lowest := q.addPointToHull(q.findLowestPoint())
	nearest := q.findNearestPoint(lowest)
	q.notifyAddedToHull(q.points[lowest], q.points[nearest])

	util.Swap(q.points, nearest, length-1)
	return q.points[length-1]
}

// addPointToHull moves points[index] to the end of the hull prefix and
// returns its new index.
func (q *QuickHull) addPointToHull(index int) int {
	util.Swap(q.points, index, q.hullSize)
	if q.hullSize != 0 {
		q.notifyAddedToHull(q.points[q.hullSize-1], q.points[q.hullSize])
	}
	q.hullSize++
	return q.hullSize - 1
}

func (q *QuickHull) findLowestPoint() int {
	lowest := 0
	for i := 1; i < len(q.points); i++ {
		if q.points[i].Below(q.points[lowest]) {
			lowest = i
		}
	}
	return lowest
}

// findNearestPoint scans for the point making the largest counter-clockwise
// turn around points[origin]. Among collinear candidates the one furthest
// from the origin wins so the baseline always ends on a hull vertex.
func (q *QuickHull) findNearestPoint(origin int) int {
	o := q.points[origin]
	nearest := 1
	for i := 2; i < len(q.points); i++ {
		candidate := q.points[nearest]
		p := q.points[i]
		if geometry.IsClockwise(o, candidate, p) {
			continue
		}
		if geometry.Collinear(o, candidate, p) && distanceSquared(o, p) <= distanceSquared(o, candidate) {
			continue
		}
		nearest = i
	}
	return nearest
}

func distanceSquared(a util.Point, b util.Point) int64 {
	dx := int64(a.X) - int64(b.X)
	dy := int64(a.Y) - int64(b.Y)
	return dx*dx + dy*dy
}

func (q *QuickHull) notifyAddedToHull(from util.Point, to util.Point) {
	if q.observing {
		q.observer.AddedToHull(from, to)
	}
}

func (q *QuickHull) notifyLineAdded(line geometry.Line, label string) {
	if q.observing {
		q.observer.LineAdded(line.Begin, line.End, label)
	}
}

func (q *QuickHull) notifyLineRemoved(line geometry.Line, label string) {
	if q.observing {
		q.observer.LineRemoved(line.Begin, line.End, label)
	}
}

func (q *QuickHull) notifyPointsSelected(begin int, end int, label string) {
	if q.observing {
		selected := make([]util.Point, end-begin+1)
		copy(selected, q.points[begin:end+1])
		q.observer.PointsSelected(selected, label)
	}
}

func (q *QuickHull) notifyPointsDeselected() {
	if q.observing {
		q.observer.PointsDeselected()
	}
}
