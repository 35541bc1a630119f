package incident

// Category is the closed set of incident categories the rule dictionary
// can recognize. General is the universal fallback when no keyword set
// matches at all.
type Category string

const (
	CategoryMedical       Category = "MEDICAL"
	CategoryDisturbance   Category = "DISTURBANCE"
	CategoryTheft         Category = "THEFT"
	CategoryAccessControl Category = "ACCESS_CONTROL"
	CategoryEjection      Category = "EJECTION"
	CategoryGeneral       Category = "GENERAL"
)

// Categories lists every category, fallback last. Display and template
// lookups iterate this order.
var Categories = []Category{
	CategoryMedical,
	CategoryDisturbance,
	CategoryTheft,
	CategoryAccessControl,
	CategoryEjection,
	CategoryGeneral,
}

func (c Category) Valid() bool {
	switch c {
	case CategoryMedical, CategoryDisturbance, CategoryTheft,
		CategoryAccessControl, CategoryEjection, CategoryGeneral:
		return true
	}
	return false
}

// Severity is the closed set of severity levels. The type carries no
// ordering; display order is LOW < MEDIUM < HIGH < CRITICAL.
type Severity string

const (
	SeverityLow      Severity = "LOW"
	SeverityMedium   Severity = "MEDIUM"
	SeverityHigh     Severity = "HIGH"
	SeverityCritical Severity = "CRITICAL"
)

func (s Severity) Valid() bool {
	switch s {
	case SeverityLow, SeverityMedium, SeverityHigh, SeverityCritical:
		return true
	}
	return false
}

// ExtractedData is the full output of one interpretation pass over a raw
// field note. Every field is always populated: extractors fall back to
// sentinel values rather than failing, so the struct is total over all
// inputs including the empty string.
type ExtractedData struct {
	Time            string   `json:"time"`
	Location        string   `json:"location"`
	Subject         string   `json:"subject"`
	Action          string   `json:"action"`
	InvolvedParties []string `json:"involvedParties"`
	Category        Category `json:"category"`
	Severity        Severity `json:"severity"`
	RawText         string   `json:"rawText"`
}

// Template is one narrative template from the catalogue. Severity here is
// the template's own declared default; the rendering path displays the
// classifier-derived severity instead, and the two are kept separate on
// purpose.
type Template struct {
	ID             string   `json:"id"`
	Category       Category `json:"category"`
	Severity       Severity `json:"severity"`
	TemplateString string   `json:"templateString"`
}
