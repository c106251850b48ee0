// Package sweep implements the event queue of a sweep line over intervals.
//
// Each value added to a [Queue] occupies an interval of the sweep axis. As the
// sweep advances, values become active when their interval opens and inactive
// when it closes, so that at any point only values whose intervals overlap
// the current position are active.
package sweep

import (
	"container/heap"
	"fmt"
	"iter"
	"math"
	"slices"
)

// Epsilon widens every interval on both ends, so that intervals that touch
// are active at the same time.
const Epsilon = 1e-14

type EventKind int

const (
	// Open events activate their value.
	Open EventKind = iota
	// Closed events deactivate their value.
	Closed
)

func (k EventKind) String() string {
	switch k {
	case Open:
		return "open"
	case Closed:
		return "closed"
	default:
		return fmt.Sprintf("EventKind(%d)", int(k))
	}
}

// Event is the opening or closing of a value's interval.
type Event[T any] struct {
	Key   float64
	Value T
	Kind  EventKind
}

// less orders events by key. At equal keys, opening comes first.
func (e Event[T]) less(o Event[T]) bool {
	if e.Key != o.Key {
		return e.Key < o.Key
	}
	return e.Kind < o.Kind
}

type events[T any] []Event[T]

func (q events[T]) Len() int           { return len(q) }
func (q events[T]) Less(i, j int) bool { return q[i].less(q[j]) }
func (q events[T]) Swap(i, j int)      { q[i], q[j] = q[j], q[i] }
func (q *events[T]) Push(x any)        { *q = append(*q, x.(Event[T])) }

func (q *events[T]) Pop() any {
	n := len(*q) - 1
	e := (*q)[n]
	*q = (*q)[:n]
	return e
}

// Queue is a priority queue of interval events that tracks the set of active
// values. The zero value is an empty queue ready to use.
type Queue[T comparable] struct {
	events events[T]
	active []T
}

// Add adds value, occupying the interval between a and b, in either order.
// The active values form a set: a value added with overlapping intervals is
// active once, and becomes inactive when the first of its intervals closes.
func (q *Queue[T]) Add(value T, a, b float64) {
	heap.Push(&q.events, Event[T]{Key: min(a, b) - Epsilon, Value: value, Kind: Open})
	heap.Push(&q.events, Event[T]{Key: max(a, b) + Epsilon, Value: value, Kind: Closed})
}

// Len returns the number of pending events.
func (q *Queue[T]) Len() int {
	return len(q.events)
}

// Peek returns the key of the next event, or math.MaxFloat64 if there are no
// more events.
func (q *Queue[T]) Peek() float64 {
	if len(q.events) == 0 {
		return math.MaxFloat64
	}
	return q.events[0].Key
}

// Next removes and returns the next event, updating the set of active values.
// It panics if there are no more events.
func (q *Queue[T]) Next() Event[T] {
	if len(q.events) == 0 {
		panic("sweep: Next on empty queue")
	}
	e := heap.Pop(&q.events).(Event[T])
	switch e.Kind {
	case Open:
		if !slices.Contains(q.active, e.Value) {
			q.active = append(q.active, e.Value)
		}
	case Closed:
		if i := slices.Index(q.active, e.Value); i >= 0 {
			q.active = slices.Delete(q.active, i, i+1)
		}
	}
	return e
}

// Take advances to the next opening event and returns its value. It returns
// false once the queue is exhausted.
func (q *Queue[T]) Take() (T, bool) {
	for len(q.events) > 0 {
		if e := q.Next(); e.Kind == Open {
			return e.Value, true
		}
	}
	return *new(T), false
}

// Active returns the values whose intervals contain the current position, in
// the order they were activated. The queue must not be advanced while
// iterating.
func (q *Queue[T]) Active() iter.Seq[T] {
	return slices.Values(q.active)
}

// IsActive reports whether v is active.
func (q *Queue[T]) IsActive(v T) bool {
	return slices.Contains(q.active, v)
}

func (q *Queue[T]) head() (Event[T], bool) {
	if len(q.events) == 0 {
		return Event[T]{}, false
	}
	return q.events[0], true
}

// Next returns the index of the queue whose next opening event comes first
// among queues. Closing events that precede it, in any of the queues, are
// consumed on the way. If all queues are exhausted, the returned queue is
// empty.
func Next[T comparable](queues ...*Queue[T]) int {
	for {
		minIdx := 0
		minEv, minOk := queues[0].head()
		for i, q := range queues[1:] {
			ev, ok := q.head()
			if ok && (!minOk || ev.less(minEv)) {
				minIdx, minEv, minOk = i+1, ev, ok
			}
		}
		if !minOk || minEv.Kind == Open {
			return minIdx
		}
		queues[minIdx].Next()
	}
}
