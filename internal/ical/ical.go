// Package ical converts between the event store and iCalendar data,
// for interchange with caldav and other calendar tooling. Only
// DATE-valued (all-day) VEVENTs map onto events; timed entries belong
// to the appointment side of the calendar and are skipped on import.
package ical

import (
	"fmt"
	"io"
	"strings"
	"time"

	ics "github.com/arran4/golang-ical"

	"github.com/jonakeys/calcurse/internal/event"
	"github.com/jonakeys/calcurse/internal/notes"
)

const prodID = "-//calcurse//event export//EN"

// Export writes every stored event as an all-day VEVENT. The UID is
// the event's identity hash, so re-imports correlate with the
// original records. When ns is non-nil, attached notes become the
// DESCRIPTION.
func Export(s *event.Store, ns *notes.Store, w io.Writer) error {
	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId(prodID)

	for _, ev := range s.Events() {
		ve := cal.AddEvent(ev.Hash())
		ve.SetSummary(ev.Mesg)
		ve.SetAllDayStartAt(ev.Day)
		ve.SetAllDayEndAt(ev.Day.AddDate(0, 0, 1))
		if ev.Note != "" && ns != nil {
			if body, err := ns.Read(ev.Note); err == nil {
				ve.SetDescription(body)
			}
		}
	}

	_, err := io.WriteString(w, cal.Serialize())
	return err
}

// Import parses iCalendar data from r and inserts each all-day VEVENT
// into the store, assigning identifiers from firstID upward. A
// DESCRIPTION becomes an attached note when ns is non-nil. Returns
// the number of imported events.
func Import(r io.Reader, s *event.Store, ns *notes.Store, firstID int) (int, error) {
	cal, err := ics.ParseCalendar(r)
	if err != nil {
		return 0, fmt.Errorf("error parsing icalendar data: %v", err)
	}

	count := 0
	id := firstID
	for _, ve := range cal.Events() {
		day, ok := allDayStart(ve)
		if !ok {
			continue
		}

		summary := ""
		if p := ve.GetProperty(ics.ComponentPropertySummary); p != nil {
			summary = p.Value
		}
		if summary == "" {
			continue
		}

		note := ""
		if p := ve.GetProperty(ics.ComponentPropertyDescription); p != nil && p.Value != "" && ns != nil {
			note, err = ns.Add(p.Value)
			if err != nil {
				return count, err
			}
		}

		s.New(summary, note, day, id)
		id++
		count++
	}
	return count, nil
}

// allDayStart extracts the local-midnight day of a DATE-valued
// DTSTART, reporting ok=false for timed or missing starts.
func allDayStart(ve *ics.VEvent) (time.Time, bool) {
	prop := ve.GetProperty(ics.ComponentPropertyDtStart)
	if prop == nil {
		return time.Time{}, false
	}

	allDay := false
	if params := prop.ICalParameters; params != nil {
		if vs, ok := params["VALUE"]; ok && len(vs) > 0 && strings.EqualFold(vs[0], "DATE") {
			allDay = true
		}
	}
	if !strings.Contains(prop.Value, "T") {
		allDay = true
	}
	if !allDay {
		return time.Time{}, false
	}

	t, err := time.ParseInLocation("20060102", prop.Value, time.Local)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}
