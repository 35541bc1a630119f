// Package report holds the fixed narrative template catalogue and fills
// template slots from extraction output to produce the final report text.
package report

import (
	"strings"

	"github.com/destroyallsecrets/security-guard-autoreporter/core/incident"
)

// Assemble fills the template for cat with the extracted values and
// returns the finished report paragraph. The time, location and subject
// slots take the extracted strings as-is; the action slot always echoes
// the full raw note verbatim, quoted, and never a semantic extraction.
// Substitution replaces only the first occurrence of each marker.
// No escaping, localization or length limiting is performed.
func Assemble(cat incident.Category, data incident.ExtractedData) string {
	t := TemplateFor(cat)
	out := t.TemplateString
	out = strings.Replace(out, slotTime, data.Time, 1)
	out = strings.Replace(out, slotLocation, data.Location, 1)
	out = strings.Replace(out, slotSubject, data.Subject, 1)
	out = strings.Replace(out, slotAction, `Additional context: "`+data.RawText+`"`, 1)
	return out
}
