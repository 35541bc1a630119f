// Package classify scores field notes against the category keyword tables
// and derives a severity level for the winning category.
package classify

import (
	"github.com/destroyallsecrets/security-guard-autoreporter/core/incident"
	"github.com/destroyallsecrets/security-guard-autoreporter/core/rules"
)

// Detect returns the incident category whose keyword set has the strictly
// highest hit count in text, and the severity derived from it. Each
// recognizer counts at most once. Ties keep the category declared earlier
// in rules.CategoryRules; when nothing matches the result is GENERAL.
//
// Severity is derived in fixed sequence so later rules override earlier
// ones: LOW by default, HIGH for MEDICAL, CRITICAL for a DISTURBANCE
// mentioning a weapon, MEDIUM for EJECTION.
func Detect(text string) (incident.Category, incident.Severity) {
	best := incident.CategoryGeneral
	maxHits := 0

	for _, rule := range rules.CategoryRules {
		hits := 0
		for _, re := range rule.Keywords {
			if re.MatchString(text) {
				hits++
			}
		}
		if hits > maxHits {
			maxHits = hits
			best = rule.Category
		}
	}

	severity := incident.SeverityLow
	if best == incident.CategoryMedical {
		severity = incident.SeverityHigh
	}
	if best == incident.CategoryDisturbance && rules.Weapon.MatchString(text) {
		severity = incident.SeverityCritical
	}
	if best == incident.CategoryEjection {
		severity = incident.SeverityMedium
	}

	return best, severity
}
