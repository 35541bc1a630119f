package report

import "github.com/destroyallsecrets/security-guard-autoreporter/core/incident"

// Slot markers substituted by Assemble. Each template uses each marker
// exactly once.
const (
	slotTime     = "{{time}}"
	slotLocation = "{{location}}"
	slotSubject  = "{{subject}}"
	slotAction   = "{{action}}"
)

// templates maps every category to exactly one narrative template. The
// mapping is total and fixed at build time; GENERAL is the catch-all.
// Template severity is the catalogue's own declared default and is not
// consulted when rendering; the classifier derives the displayed
// severity independently, and the two sources are deliberately kept
// separate.
var templates = map[incident.Category]incident.Template{
	incident.CategoryMedical: {
		ID:             "MED_01",
		Category:       incident.CategoryMedical,
		Severity:       incident.SeverityHigh,
		TemplateString: "At {{time}}, security personnel responded to a medical alert at {{location}}. Upon arrival, subject identified as {{subject}} was found. Medical services (EMS/IFD) were notified immediately. Venue operations team secured the area. {{action}}.",
	},
	incident.CategoryEjection: {
		ID:             "EJECT_01",
		Category:       incident.CategoryEjection,
		Severity:       incident.SeverityMedium,
		TemplateString: "At {{time}}, an incident occurred at {{location}} involving a subject described as {{subject}}. The subject was observed violating venue code of conduct. After verbal warning, the decision was made to eject the subject. IMPD assisted with the escort. {{action}}.",
	},
	incident.CategoryDisturbance: {
		ID:             "DIST_01",
		Category:       incident.CategoryDisturbance,
		Severity:       incident.SeverityMedium,
		TemplateString: "Security control received reports of a disturbance at {{location}} at approximately {{time}}. Responding officers observed {{subject}} engaging in disorderly conduct. Parties were separated and de-escalation protocols were initiated. {{action}}.",
	},
	incident.CategoryTheft: {
		ID:             "THEFT_01",
		Category:       incident.CategoryTheft,
		Severity:       incident.SeverityLow,
		TemplateString: "A report of theft was filed at {{time}} near {{location}}. The complainant stated that {{subject}} was seen removing property. Surveillance footage has been flagged for review. {{action}}.",
	},
	incident.CategoryAccessControl: {
		ID:             "ACCESS_01",
		Category:       incident.CategoryAccessControl,
		Severity:       incident.SeverityLow,
		TemplateString: "At {{time}}, an access control breach was attempted at {{location}}. {{subject}} attempted to enter a restricted area without proper credentials. Access was denied and the subject was redirected. {{action}}.",
	},
	incident.CategoryGeneral: {
		ID:             "GEN_01",
		Category:       incident.CategoryGeneral,
		Severity:       incident.SeverityLow,
		TemplateString: "At {{time}}, a general incident was recorded at {{location}}. Subject {{subject}} was involved. Security personnel documented the following: {{action}}.",
	},
}

// TemplateFor returns the narrative template for cat. Unknown categories
// resolve to the GENERAL catch-all so the lookup is total.
func TemplateFor(cat incident.Category) incident.Template {
	if t, ok := templates[cat]; ok {
		return t
	}
	return templates[incident.CategoryGeneral]
}
