// Package agenda groups stored events into per-day listings for
// display, and ranks events against a search query.
package agenda

import (
	"time"

	"github.com/sahilm/fuzzy"

	"github.com/jonakeys/calcurse/internal/calendar"
	"github.com/jonakeys/calcurse/internal/event"
)

// ItemKind identifies what an agenda item holds.
type ItemKind int

const (
	// ItemNone marks a day with no events. It is an explicit variant,
	// not a shared placeholder record.
	ItemNone ItemKind = iota
	ItemEvent
)

// Item is one row of a day listing.
type Item struct {
	Kind  ItemKind
	Event *event.Event
}

// IsNone reports whether the item is the empty-day marker.
func (i Item) IsNone() bool {
	return i.Kind == ItemNone
}

// Day returns the items for one calendar day in store order. A day
// without events yields a single ItemNone item so display logic
// always has something to render.
func Day(s *event.Store, date time.Time) []Item {
	var items []Item
	for _, ev := range s.Events() {
		if ev.InDay(date) {
			items = append(items, Item{Kind: ItemEvent, Event: ev})
		}
	}
	if len(items) == 0 {
		items = []Item{{Kind: ItemNone}}
	}
	return items
}

// DateBucket groups one day's items.
type DateBucket struct {
	Date  time.Time
	Items []Item
}

// Range returns a bucket for every day from from through to,
// inclusive, empty days included.
func Range(s *event.Store, from, to time.Time) []DateBucket {
	var buckets []DateBucket
	last := calendar.Midnight(to)
	for d := calendar.Midnight(from); !d.After(last); d = d.AddDate(0, 0, 1) {
		buckets = append(buckets, DateBucket{Date: d, Items: Day(s, d)})
	}
	return buckets
}

// Search returns the events whose message fuzzy-matches query, best
// match first.
func Search(s *event.Store, query string) []*event.Event {
	evs := s.Events()
	names := make([]string, len(evs))
	for i, ev := range evs {
		names[i] = ev.Mesg
	}

	matches := fuzzy.Find(query, names)
	result := make([]*event.Event, 0, len(matches))
	for _, m := range matches {
		result = append(result, evs[m.Index])
	}
	return result
}
