// Package pipeline orchestrates entity extraction and classification over
// raw field notes. Interpretation is pure and cheap, so callers re-run it
// in full on every text change instead of computing deltas.
package pipeline

import (
	"github.com/destroyallsecrets/security-guard-autoreporter/core/classify"
	"github.com/destroyallsecrets/security-guard-autoreporter/core/extract"
	"github.com/destroyallsecrets/security-guard-autoreporter/core/incident"
)

// Pipeline interprets raw field notes. The zero value is not usable;
// construct with New.
type Pipeline struct {
	extractor *extract.Extractor
}

// New returns a Pipeline on the real clock.
func New() *Pipeline {
	return &Pipeline{extractor: extract.New()}
}

// NewWithExtractor returns a Pipeline using the given extractor. Tests use
// this to freeze the time fallback clock.
func NewWithExtractor(e *extract.Extractor) *Pipeline {
	return &Pipeline{extractor: e}
}

// Interpret runs the extractors and the classifier over rawText and merges
// their output. It is total: every field of the result is populated for
// any input, including the empty string, via the extractors' sentinel
// fallbacks. Extractors and classifier share no state and run in no
// particular order.
func (p *Pipeline) Interpret(rawText string) incident.ExtractedData {
	category, severity := classify.Detect(rawText)
	return incident.ExtractedData{
		Time:            p.extractor.Time(rawText),
		Location:        p.extractor.Location(rawText),
		Subject:         p.extractor.Subject(rawText),
		Action:          rawText,
		InvolvedParties: []string{},
		Category:        category,
		Severity:        severity,
		RawText:         rawText,
	}
}
