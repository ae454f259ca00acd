// Package filter holds the item selection criteria applied while
// loading a calendar file. A Filter is built by the caller (CLI flags,
// sync tooling) and consumed by the event loader.
package filter

import (
	"regexp"
	"strings"
	"time"
)

// TypeMask selects which item kinds a filter lets through.
type TypeMask uint8

const (
	TypeEvent TypeMask = 1 << iota
	TypeAppointment
	TypeRecurrentEvent
	TypeRecurrentAppointment

	TypeAll = TypeEvent | TypeAppointment | TypeRecurrentEvent | TypeRecurrentAppointment
)

// Filter describes which records to keep during a load. Zero-valued
// time bounds and an empty Hash mean "not set". Invert flips the final
// keep/discard decision.
type Filter struct {
	Types TypeMask
	Regex *regexp.Regexp

	StartFrom time.Time
	StartTo   time.Time
	EndFrom   time.Time
	EndTo     time.Time

	Hash   string
	Invert bool
}

// New returns a filter that keeps everything.
func New() *Filter {
	return &Filter{Types: TypeAll}
}

// HashMatches reports whether the (possibly abbreviated) pattern
// matches the full hex digest.
func HashMatches(pattern, hash string) bool {
	return pattern != "" && strings.HasPrefix(hash, pattern)
}
