package explosion

import (
	"errors"
	"fmt"

	"github.com/zyedidia/generic/queue"
	"go.uber.org/zap"
)

// ErrUnknownKind is returned by a strict queue for events of an undefined kind.
var ErrUnknownKind = errors.New("explosion: unknown event kind")

// Handler runs one event. It may add further events to the queue; those
// run in the same drain after everything already queued.
type Handler func(ev Event)

// Queue is a FIFO of pending events. Nothing runs until Execute is called,
// and Execute never nests: events added while draining are picked up by the
// drain in progress.
type Queue struct {
	strict   bool
	log      *zap.Logger
	handlers map[Kind]Handler
	pending  *queue.Queue[Event]
	size     int
	draining bool
}

// NewQueue creates an empty queue. A strict queue rejects unknown kinds on
// Add and panics on events it has no handler for.
func NewQueue(strict bool, log *zap.Logger) *Queue {
	if log == nil {
		log = zap.NewNop()
	}
	return &Queue{
		strict:   strict,
		log:      log,
		handlers: make(map[Kind]Handler),
		pending:  queue.New[Event](),
	}
}

// Handle registers h for events of kind k, replacing any previous handler.
func (q *Queue) Handle(k Kind, h Handler) {
	q.handlers[k] = h
}

// Add appends ev to the back of the queue.
func (q *Queue) Add(ev Event) error {
	if q.strict && !ev.Kind.Known() {
		return fmt.Errorf("add event at %v: %w (%d)", ev.Pos, ErrUnknownKind, ev.Kind)
	}
	q.pending.Enqueue(ev)
	q.size++
	return nil
}

// Len is the number of events waiting.
func (q *Queue) Len() int { return q.size }

// Execute dispatches events front to back until none are left. Called from
// inside a handler it returns at once.
func (q *Queue) Execute() {
	if q.draining {
		return
	}
	q.draining = true
	defer func() { q.draining = false }()

	n := 0
	for !q.pending.Empty() {
		ev := q.pending.Dequeue()
		q.size--
		q.dispatch(ev)
		n++
	}
	if n > 0 {
		q.log.Debug("explosion queue drained", zap.Int("events", n))
	}
}

func (q *Queue) dispatch(ev Event) {
	h, ok := q.handlers[ev.Kind]
	if !ok {
		if q.strict {
			panic(fmt.Sprintf("explosion: no handler for %s event (%d) at %v", ev.Kind, ev.Kind, ev.Pos))
		}
		q.log.Warn("skipping event without handler",
			zap.Stringer("kind", ev.Kind),
			zap.Uint8("raw_kind", uint8(ev.Kind)),
			zap.Stringer("pos", ev.Pos))
		return
	}
	h(ev)
}
