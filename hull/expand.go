package hull

import (
	"github.com/kpfaulkner/quickhull-go/geometry"
	"github.com/kpfaulkner/quickhull-go/util"
)

type taskKind int

const (
	// find the furthest point of a range and split the range around it
	taskExpand taskKind = iota

	// left side is done: commit the pivot, then split the right side
	taskCommit

	// right side is done: retire its bounding line
	taskRetire
)

// task is one frame of the expansion. The work stack stands in for
// recursion, whose depth would grow with the number of hull vertices.
type task struct {
	kind   taskKind
	begin  int
	end    int
	pivot  int
	line   geometry.Line
	second geometry.Line
}

// expand appends the hull vertices right of line found in points[begin..end]
// to the hull prefix, in boundary order from line.Begin to line.End.
//
// Tasks pop in the order: expand left side, commit pivot, expand right side.
// The pivot must never be committed before its left side has finished.
func (q *QuickHull) expand(begin int, end int, line geometry.Line) {
	stack := util.NewDeque[task]()
	stack.AddFirst(task{kind: taskExpand, begin: begin, end: end, line: line})

	for !stack.IsEmpty() {
		t := stack.RemoveFirst()
		switch t.kind {
		case taskExpand:
			q.split(stack, t)
		case taskCommit:
			q.commit(stack, t)
		case taskRetire:
			q.notifyLineRemoved(t.line, "")
		}
	}
}

func (q *QuickHull) split(stack *util.Deque[task], t *task) {
	if t.begin > t.end {
		return
	}

	q.notifyPointsSelected(t.begin, t.end, "Selecting points range")
	q.notifyLineAdded(t.line, "Split into two parts (depending on line).")

	furthestIndex, distance := findFurthestPoint(q.points, t.begin, t.end, t.line)
	if distance == 0 {
		// nothing strictly right of the line, so nothing here is a vertex
		q.notifyLineRemoved(t.line, "No points right of line.")
		q.notifyPointsDeselected()
		return
	}

	furthest := q.points[furthestIndex]
	first := geometry.NewLine(t.line.Begin, furthest)
	second := geometry.NewLine(furthest, t.line.End)
	q.notifyLineAdded(first, "Find furthest point and draw new two lines.")
	q.notifyLineAdded(second, "Find furthest point and draw new two lines.")
	q.notifyLineRemoved(t.line, "Split into two parts (depending on line).")
	q.notifyPointsDeselected()

	util.Swap(q.points, furthestIndex, t.end)
	pivot := partition(q.points, t.begin, t.end-1, first)

	stack.AddFirst(task{kind: taskCommit, pivot: pivot, end: t.end, line: first, second: second})
	stack.AddFirst(task{kind: taskExpand, begin: t.begin, end: pivot - 1, line: first})
}

func (q *QuickHull) commit(stack *util.Deque[task], t *task) {
	q.notifyLineRemoved(t.line, "")

	util.Swap(q.points, t.end, t.pivot)
	q.addPointToHull(t.pivot)

	secondPivot := partition(q.points, t.pivot+1, t.end, t.second)

	stack.AddFirst(task{kind: taskRetire, line: t.second})
	stack.AddFirst(task{kind: taskExpand, begin: t.pivot + 1, end: secondPivot - 1, line: t.second})
}
