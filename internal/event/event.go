// Package event implements the calendar's all-day events: the record
// type and its canonical text form, the ordered in-memory store, and
// the filtered loader for the apts file format.
package event

import (
	"crypto/sha1"
	"encoding/hex"
	"fmt"
	"io"
	"time"

	"github.com/jonakeys/calcurse/internal/calendar"
)

// Event is one all-day occurrence on the calendar. Day always holds
// the local midnight of the event's day; ID is caller-assigned and
// only disambiguates events sharing a day. Note is empty when no note
// file is attached.
type Event struct {
	ID   int
	Day  time.Time
	Mesg string
	Note string
}

// String renders the canonical one-line form used both in the apts
// file and as hashing input:
//
//	MM/DD/YYYY [<id>] [>NOTE ] MESSAGE
//
// The message is emitted verbatim, so a message containing a newline
// would corrupt the format. The two consumers must never diverge.
func (e *Event) String() string {
	s := fmt.Sprintf("%02d/%02d/%04d [%d] ", int(e.Day.Month()), e.Day.Day(), e.Day.Year(), e.ID)
	if e.Note != "" {
		s += ">" + e.Note + " "
	}
	return s + e.Mesg
}

// Hash returns the lowercase hex sha1 digest of the canonical text.
// It is the correlation key used by import/filter tooling to identify
// the same event across files; it carries no security weight.
func (e *Event) Hash() string {
	sum := sha1.Sum([]byte(e.String()))
	return hex.EncodeToString(sum[:])
}

// Dup returns an independent copy of the event, not linked into any
// store. Duplicating a nil event is a caller bug and panics.
func (e *Event) Dup() *Event {
	if e == nil {
		panic("event: Dup of nil event")
	}
	dup := *e
	return &dup
}

// InDay reports whether the event falls on the given day, ignoring
// time of day.
func (e *Event) InDay(day time.Time) bool {
	return calendar.SameDay(e.Day, day)
}

// Write appends the canonical line plus a newline to w.
func (e *Event) Write(w io.Writer) error {
	_, err := fmt.Fprintln(w, e.String())
	return err
}
