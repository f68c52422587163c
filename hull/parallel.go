package hull

import (
	"context"
	"errors"

	"github.com/kpfaulkner/quickhull-go/geometry"
	"github.com/kpfaulkner/quickhull-go/util"
	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

// CalculateParallel builds the same hull as Calculate, expanding disjoint
// subranges on separate goroutines. Subranges report their vertices as index
// sequences which are merged into the hull prefix once every worker is done,
// so vertex order matches Calculate.
//
// Only AddedToHull is sent to the observer, and only from the calling
// goroutine. If ctx is cancelled the points are left as some permutation of
// the input, HullSize is zero and the context error is returned.
func (q *QuickHull) CalculateParallel(ctx context.Context) error {
	length := len(q.points)
	q.hullSize = 0
	if length < 3 {
		q.hullSize = length
		return nil
	}

	last := q.seed()

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(q.workers)
	pb := &parallelBuild{
		points:    q.points,
		group:     g,
		threshold: q.threshold,
	}

	var indices []int
	g.Go(func() error {
		var err error
		indices, err = pb.expand(gctx, 1, length-2, geometry.NewLine(q.points[0], last))
		return err
	})

	if err := g.Wait(); err != nil {
		q.hullSize = 0
		return err
	}

	// indices are strictly increasing and all beyond the current prefix, so
	// moving each into the prefix never disturbs one still to come
	for _, index := range indices {
		q.addPointToHull(index)
	}
	q.addPointToHull(length - 1)

	log.Debugf("quickhull (parallel, %d workers): %d points, %d hull vertices", q.workers, length, q.hullSize)
	return nil
}

type parallelBuild struct {
	points    []util.Point
	group     *errgroup.Group
	threshold int
}

// expand returns the indices of the hull vertices right of line within
// points[begin..end], in boundary order. It only touches that range.
func (pb *parallelBuild) expand(ctx context.Context, begin int, end int, line geometry.Line) ([]int, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if begin > end {
		return nil, nil
	}

	furthestIndex, distance := findFurthestPoint(pb.points, begin, end, line)
	if distance == 0 {
		return nil, nil
	}

	furthest := pb.points[furthestIndex]
	first := geometry.NewLine(line.Begin, furthest)
	second := geometry.NewLine(furthest, line.End)

	util.Swap(pb.points, furthestIndex, end)
	pivot := partition(pb.points, begin, end-1, first)
	util.Swap(pb.points, end, pivot)
	secondPivot := partition(pb.points, pivot+1, end, second)

	// left is [begin, pivot-1], right is [pivot+1, secondPivot-1]
	var left []int
	var leftErr error
	done := make(chan struct{})
	spawned := false
	if pivot-begin >= pb.threshold {
		spawned = pb.group.TryGo(func() error {
			defer close(done)
			left, leftErr = pb.expand(ctx, begin, pivot-1, first)
			return leftErr
		})
	}
	if !spawned {
		left, leftErr = pb.expand(ctx, begin, pivot-1, first)
	}

	right, rightErr := pb.expand(ctx, pivot+1, secondPivot-1, second)
	if spawned {
		<-done
	}
	if err := errors.Join(leftErr, rightErr); err != nil {
		return nil, err
	}

	indices := make([]int, 0, len(left)+len(right)+1)
	indices = append(indices, left...)
	indices = append(indices, pivot)
	indices = append(indices, right...)
	return indices, nil
}
