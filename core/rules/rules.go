package rules

import (
	"regexp"

	"github.com/destroyallsecrets/security-guard-autoreporter/core/incident"
)

// Version identifies the rule dictionary revision. Bump when any table
// below changes so persisted reports can be traced to the rules that
// produced them.
const Version = "indy-metro-v1.0"

// Locations is the venue landmark hierarchy for the Indianapolis metro
// zone. Order is the tie-break mechanism: specific landmarks come before
// generic terms and the first match in list order wins. Callers must not
// reorder or sort this slice.
var Locations = []*regexp.Regexp{
	regexp.MustCompile(`(?i)(?:Lucas Oil|LOS|Stadium)`),
	regexp.MustCompile(`(?i)(?:Gainbridge|Fieldhouse)`),
	regexp.MustCompile(`(?i)(?:Convention Center|ICC)`),
	regexp.MustCompile(`(?i)(?:Victory Field|The Vic)`),
	regexp.MustCompile(`(?i)(?:Capitol|Meridian|Georgia|Illinois|Washington)\s+(?:St|Ave|Street|Avenue)`),
	regexp.MustCompile(`(?i)(?:Monument Circle)`),
	regexp.MustCompile(`(?i)Gate\s+(\d+|[A-Z])`),
	regexp.MustCompile(`(?i)Section\s+(\d{3}|[A-Z]+)`),
	regexp.MustCompile(`(?i)Concourse`),
	regexp.MustCompile(`(?i)Entry\s+(\d+)`),
	regexp.MustCompile(`(?i)Ticket\s+Office`),
	regexp.MustCompile(`(?i)Loading\s+Dock`),
	regexp.MustCompile(`(?i)Quarterback\s+Suite`),
	regexp.MustCompile(`(?i)Pagoda`),
	regexp.MustCompile(`(?i)Gasoline\s+Alley`),
}

// Subjects is ordered most-specific first: radio demographic shorthand
// (WM/25 style), generic role nouns, a descriptive clothing phrase, and
// the literal word "subject" as last resort.
var Subjects = []*regexp.Regexp{
	regexp.MustCompile(`(?i)(?:WM|WF|BM|BF|HM|HF|AM|AF)\s?/?\s?(?:\d{2})?`),
	regexp.MustCompile(`(?i)(?:male|female|guest|patron|fan|attendee)`),
	regexp.MustCompile(`(?i)(?:wearing|dressed in)\s+([a-z\s]+)`),
	regexp.MustCompile(`(?i)subject`),
}

// CategoryRule binds one non-fallback category to its keyword recognizers.
// Within a rule the set is unordered; each recognizer contributes at most
// one hit no matter how often it occurs in the text.
type CategoryRule struct {
	Category incident.Category
	Keywords []*regexp.Regexp
}

// CategoryRules is iterated in declaration order by the classifier, and
// that order decides ties: the first category to reach the maximum hit
// count keeps it. GENERAL has no rule; it is the zero-hit fallback.
var CategoryRules = []CategoryRule{
	{
		Category: incident.CategoryMedical,
		Keywords: []*regexp.Regexp{
			regexp.MustCompile(`(?i)medical`),
			regexp.MustCompile(`(?i)medic`),
			regexp.MustCompile(`(?i)ems`),
			regexp.MustCompile(`(?i)fainted`),
			regexp.MustCompile(`(?i)seizure`),
			regexp.MustCompile(`(?i)collapsed`),
			regexp.MustCompile(`(?i)blood`),
			regexp.MustCompile(`(?i)injury`),
			regexp.MustCompile(`(?i)hurt`),
			regexp.MustCompile(`(?i)ifd`),
		},
	},
	{
		Category: incident.CategoryEjection,
		Keywords: []*regexp.Regexp{
			regexp.MustCompile(`(?i)eject`),
			regexp.MustCompile(`(?i)kick(?:ed)?\s*out`),
			regexp.MustCompile(`(?i)escort(?:ed)?`),
			regexp.MustCompile(`(?i)remove(?:d)?`),
			regexp.MustCompile(`(?i)banned`),
		},
	},
	{
		Category: incident.CategoryDisturbance,
		Keywords: []*regexp.Regexp{
			regexp.MustCompile(`(?i)fight`),
			regexp.MustCompile(`(?i)argument`),
			regexp.MustCompile(`(?i)yell`),
			regexp.MustCompile(`(?i)drunk`),
			regexp.MustCompile(`(?i)intoxicated`),
			regexp.MustCompile(`(?i)push`),
			regexp.MustCompile(`(?i)shove`),
			regexp.MustCompile(`(?i)aggressive`),
			regexp.MustCompile(`(?i)disorderly`),
		},
	},
	{
		Category: incident.CategoryTheft,
		Keywords: []*regexp.Regexp{
			regexp.MustCompile(`(?i)stole`),
			regexp.MustCompile(`(?i)theft`),
			regexp.MustCompile(`(?i)missing`),
			regexp.MustCompile(`(?i)taken`),
			regexp.MustCompile(`(?i)purse`),
			regexp.MustCompile(`(?i)wallet`),
			regexp.MustCompile(`(?i)phone`),
		},
	},
	{
		Category: incident.CategoryAccessControl,
		Keywords: []*regexp.Regexp{
			regexp.MustCompile(`(?i)breach`),
			regexp.MustCompile(`(?i)badge`),
			regexp.MustCompile(`(?i)credential`),
			regexp.MustCompile(`(?i)restricted`),
			regexp.MustCompile(`(?i)door`),
			regexp.MustCompile(`(?i)gate\s+crasher`),
		},
	},
}

// Time matches either H:MM / HH:MM with optional AM/PM suffix, or a
// four-digit military shorthand like "2130 hrs". The matched substring is
// returned verbatim, never normalized.
var Time = regexp.MustCompile(`(?i)(\d{1,2}:\d{2}(?:\s?[AP]M)?)|(\d{4}\s?hrs)`)

// Weapon is the secondary check that escalates a DISTURBANCE to CRITICAL.
var Weapon = regexp.MustCompile(`(?i)weapon|gun|knife`)
