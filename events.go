package ledger

import (
	"fmt"
	"iter"
)

// Events is the append-only log of validated events.
//
// Every event it holds was valid against the events before it when it was
// appended, so a log never needs to be validated twice.
type Events struct {
	events []Event
}

// NewEvents creates an empty log.
func NewEvents() *Events {
	return &Events{events: make([]Event, 0)}
}

// TryFromSequence builds a log by appending events one by one, in order.
// The first invalid event aborts the whole load.
func TryFromSequence(events []Event) (*Events, error) {
	l := &Events{events: make([]Event, 0, len(events))}
	for i, ev := range events {
		if err := l.TryPush(ev); err != nil {
			return nil, fmt.Errorf("event %d (%s): %w", i+1, ev.What(), err)
		}
	}
	return l, nil
}

// TryPush validates ev against the current log and appends it.
// On error the log is left unchanged.
func (l *Events) TryPush(ev Event) error {
	if err := l.validate(ev); err != nil {
		return err
	}
	l.events = append(l.events, ev)
	return nil
}

// Len returns the number of events in the log.
func (l *Events) Len() int { return len(l.events) }

// At returns the i-th event (0-based).
func (l *Events) At(i int) Event { return l.events[i] }

// All returns an iterator that yields each event in log order.
func (l *Events) All() iter.Seq2[int, Event] {
	return func(yield func(int, Event) bool) {
		for i, ev := range l.events {
			if !yield(i, ev) {
				return
			}
		}
	}
}

// Slice returns a copy of the events in log order.
func (l *Events) Slice() []Event {
	return append([]Event(nil), l.events...)
}
