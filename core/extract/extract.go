// Package extract derives structured time, location and subject values
// from free-text field notes using the ordered recognizer tables in
// core/rules. Every extractor is pure, case-insensitive and total: when
// nothing matches it returns a documented sentinel instead of failing.
package extract

import (
	"strings"
	"time"

	"github.com/destroyallsecrets/security-guard-autoreporter/core/rules"
)

const (
	// UnknownLocation is returned when no location recognizer matches.
	UnknownLocation = "Unknown Location"
	// UnknownSubject is returned when no subject recognizer matches.
	UnknownSubject = "an unidentified subject"
)

// Extractor runs the entity extractors. Now supplies the wall clock for
// the time fallback; tests freeze it.
type Extractor struct {
	Now func() time.Time
}

// New returns an Extractor on the real clock.
func New() *Extractor {
	return &Extractor{Now: time.Now}
}

// Time returns the first time-of-day match in text, verbatim. When the
// text carries no recognizable time it falls back to the current wall
// clock formatted as 24-hour HH:MM, so the result is always non-empty.
func (e *Extractor) Time(text string) string {
	if m := rules.Time.FindString(text); m != "" {
		return m
	}
	now := time.Now
	if e != nil && e.Now != nil {
		now = e.Now
	}
	return now().Format("15:04")
}

// Location tries each location recognizer in dictionary order and returns
// the first match, trimmed. List order encodes landmark specificity, so
// the first hit is the best one.
func (e *Extractor) Location(text string) string {
	for _, re := range rules.Locations {
		if m := re.FindString(text); m != "" {
			return strings.TrimSpace(m)
		}
	}
	return UnknownLocation
}

// Subject tries each subject recognizer in dictionary order and returns
// the first match, trimmed.
func (e *Extractor) Subject(text string) string {
	for _, re := range rules.Subjects {
		if m := re.FindString(text); m != "" {
			return strings.TrimSpace(m)
		}
	}
	return UnknownSubject
}
