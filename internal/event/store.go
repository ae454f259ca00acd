package event

import (
	"errors"
	"sort"
	"strings"
	"time"
)

// ErrNotFound reports a delete of an event the store does not hold.
// That is an ownership contract violation, not a normal condition;
// callers that cannot explain it should treat it as fatal.
var ErrNotFound = errors.New("no such event in store")

// Store owns the live events of one calendar, kept sorted by day and
// then message bytes. It is not safe for concurrent use; the owning
// control flow must serialize access.
type Store struct {
	events []*Event
}

// NewStore returns an empty store.
func NewStore() *Store {
	return &Store{}
}

// compare orders events by day ascending, ties broken by message
// bytes. The identifier never takes part in ordering.
func compare(a, b *Event) int {
	if a.Day.Before(b.Day) {
		return -1
	}
	if a.Day.After(b.Day) {
		return 1
	}
	return strings.Compare(a.Mesg, b.Mesg)
}

// insert links ev at its sorted position, after any equal keys.
func (s *Store) insert(ev *Event) {
	i := sort.Search(len(s.events), func(i int) bool {
		return compare(s.events[i], ev) > 0
	})
	s.events = append(s.events, nil)
	copy(s.events[i+1:], s.events[i:])
	s.events[i] = ev
}

// New creates an event, inserts it at its sorted position and returns
// it. The store keeps ownership of the result.
func (s *Store) New(mesg, note string, day time.Time, id int) *Event {
	ev := &Event{ID: id, Day: day, Mesg: mesg, Note: note}
	s.insert(ev)
	return ev
}

// Delete unlinks ev, identified by pointer identity, and hands
// ownership back to the caller. Returns ErrNotFound when the store
// never held ev.
func (s *Store) Delete(ev *Event) error {
	for i, e := range s.events {
		if e == ev {
			s.events = append(s.events[:i], s.events[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

// Paste moves ev to date and re-inserts it at the position the new
// day demands. ev must not currently be linked in any store, or it
// ends up stored twice.
func (s *Store) Paste(ev *Event, date time.Time) {
	ev.Day = date
	s.insert(ev)
}

// Len returns the number of stored events.
func (s *Store) Len() int {
	return len(s.events)
}

// Events returns the stored events in (day, message) order. The slice
// is the store's own; callers must not modify it.
func (s *Store) Events() []*Event {
	return s.events
}

// Clear drops every stored event at once. Note files referenced by
// dropped events are released by the caller, which knows whether the
// notes outlive the store.
func (s *Store) Clear() {
	s.events = nil
}
