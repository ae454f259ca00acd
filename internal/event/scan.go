package event

import (
	"bufio"
	"errors"
	"io"
	"strings"

	"github.com/jonakeys/calcurse/internal/calendar"
	"github.com/jonakeys/calcurse/internal/filter"
)

// Data-quality errors returned while loading. The store is left
// untouched for the record that produced one; the caller decides
// whether to abort or skip.
var (
	ErrIllegalDate = errors.New("illegal date in event")
	ErrMissingDesc = errors.New("error in appointment description")
	ErrDateConvert = errors.New("date error in event")
)

// Date carries the raw date/time components of an apts line prefix
// before validation.
type Date struct {
	Year, Month, Day int
	Hour, Min        int
}

// Scan reads one event description line from r and, when it passes
// the optional filter, commits the event to the store. The reader
// must be positioned just past the line prefix (date, identifier,
// note token), i.e. at the start of the message. A record the filter
// rejects is not an error: Scan returns nil and the store stays
// unchanged. Acceptance is observed only through the store.
func (s *Store) Scan(r *bufio.Reader, start Date, id int, note string, f *filter.Filter) error {
	if !calendar.CheckDate(start.Year, start.Month, start.Day) ||
		!calendar.CheckTime(start.Hour, start.Min) {
		return ErrIllegalDate
	}

	line, err := r.ReadString('\n')
	if err != nil && !(err == io.EOF && line != "") {
		return ErrMissingDesc
	}
	// A line cut short by end of stream is tolerated.
	mesg := strings.TrimSuffix(line, "\n")

	day, ok := calendar.DayStart(start.Year, start.Month, start.Day)
	if !ok {
		return ErrDateConvert
	}
	end := calendar.EndOfDay(day)

	if f != nil {
		cond := f.Types&filter.TypeEvent == 0 ||
			(f.Regex != nil && !f.Regex.MatchString(mesg)) ||
			(!f.StartFrom.IsZero() && day.Before(f.StartFrom)) ||
			(!f.StartTo.IsZero() && day.After(f.StartTo)) ||
			(!f.EndFrom.IsZero() && end.Before(f.EndFrom)) ||
			(!f.EndTo.IsZero() && end.After(f.EndTo))
		if f.Hash != "" {
			candidate := Event{ID: id, Day: day, Mesg: mesg, Note: note}
			cond = cond || !filter.HashMatches(f.Hash, candidate.Hash())
		}
		// Keep when cond and invert agree; insertion is deferred until
		// the whole filter has passed.
		if cond != f.Invert {
			return nil
		}
	}

	s.New(mesg, note, day, id)
	return nil
}
