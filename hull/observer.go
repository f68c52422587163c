package hull

import (
	"github.com/kpfaulkner/quickhull-go/util"
	log "github.com/sirupsen/logrus"
)

// Observer receives notifications while a hull is being built. Calls are
// fire and forget; the builder never depends on what an Observer does.
// Slices passed to PointsSelected are copies and may be retained.
type Observer interface {
	AddedToHull(from util.Point, to util.Point)
	LineAdded(start util.Point, end util.Point, label string)
	LineRemoved(start util.Point, end util.Point, label string)
	PointsSelected(points []util.Point, label string)
	PointsDeselected()
}

// NoopObserver ignores every notification.
type NoopObserver struct{}

func (NoopObserver) AddedToHull(util.Point, util.Point) {}
func (NoopObserver) LineAdded(util.Point, util.Point, string) {}
func (NoopObserver) LineRemoved(util.Point, util.Point, string) {}
func (NoopObserver) PointsSelected([]util.Point, string) {}
func (NoopObserver) PointsDeselected() {}

// LoggingObserver writes every notification to a logrus logger at debug level.
type LoggingObserver struct {
	Logger log.FieldLogger
}

func NewLoggingObserver(logger log.FieldLogger) *LoggingObserver {
	if logger == nil {
		logger = log.StandardLogger()
	}
	return &LoggingObserver{Logger: logger}
}

func (lo *LoggingObserver) AddedToHull(from util.Point, to util.Point) {
	lo.Logger.WithFields(log.Fields{"from": from, "to": to}).Debug("hull edge")
}

func (lo *LoggingObserver) LineAdded(start util.Point, end util.Point, label string) {
	lo.Logger.WithFields(log.Fields{"start": start, "end": end}).Debugf("line added: %s", label)
}

func (lo *LoggingObserver) LineRemoved(start util.Point, end util.Point, label string) {
	lo.Logger.WithFields(log.Fields{"start": start, "end": end}).Debugf("line removed: %s", label)
}

func (lo *LoggingObserver) PointsSelected(points []util.Point, label string) {
	lo.Logger.WithField("count", len(points)).Debugf("points selected: %s", label)
}

func (lo *LoggingObserver) PointsDeselected() {
	lo.Logger.Debug("points deselected")
}

type EventType int

const (
	EventAddedToHull EventType = iota
	EventLineAdded
	EventLineRemoved
	EventPointsSelected
	EventPointsDeselected
)

func (et EventType) String() string {
	switch et {
	case EventAddedToHull:
		return "added-to-hull"
	case EventLineAdded:
		return "line-added"
	case EventLineRemoved:
		return "line-removed"
	case EventPointsSelected:
		return "points-selected"
	case EventPointsDeselected:
		return "points-deselected"
	}
	return "unknown"
}

// Event is a single recorded notification. Start/End are only meaningful
// for edge and line events, Points only for selections.
type Event struct {
	Type   EventType
	Start  util.Point
	End    util.Point
	Label  string
	Points []util.Point
}

// Recorder keeps every notification in order. Useful for tests and for
// external tools that replay the construction step by step.
type Recorder struct {
	Events []Event
}

func (r *Recorder) AddedToHull(from util.Point, to util.Point) {
	r.Events = append(r.Events, Event{Type: EventAddedToHull, Start: from, End: to})
}

func (r *Recorder) LineAdded(start util.Point, end util.Point, label string) {
	r.Events = append(r.Events, Event{Type: EventLineAdded, Start: start, End: end, Label: label})
}

func (r *Recorder) LineRemoved(start util.Point, end util.Point, label string) {
	r.Events = append(r.Events, Event{Type: EventLineRemoved, Start: start, End: end, Label: label})
}

func (r *Recorder) PointsSelected(points []util.Point, label string) {
	r.Events = append(r.Events, Event{Type: EventPointsSelected, Points: points, Label: label})
}

func (r *Recorder) PointsDeselected() {
	r.Events = append(r.Events, Event{Type: EventPointsDeselected})
}

// Filter returns recorded events of the given type.
func (r *Recorder) Filter(et EventType) []Event {
	var events []Event
	for _, e := range r.Events {
		if e.Type == et {
			events = append(events, e)
		}
	}
	return events
}
