// Package serial decodes watch serial numbers into candidate manufacturing dates
// Pipeline order
// 1 validate the raw serial shape and month symbol
// 2 enumerate one candidate year per decade from 1960 onward
// 3 filter by serial era (6 vs 7 characters) and the optional case-back hints
// 4 annotate survivors with justification notes
// 5 sort ascending by year
//
// The package is pure: the current year is always passed in by the caller
package serial

import "strings"

// Hint is a tri-state answer about a physical marking on the case back
// the zero value is HintUnknown so an omitted hint applies no constraint
type Hint uint8

const (
	// HintUnknown means no information was supplied
	HintUnknown Hint = iota
	// HintPresent means the marking was confirmed present
	HintPresent
	// HintAbsent means the marking was confirmed absent
	HintAbsent
)

// String returns the wire name of the hint
func (h Hint) String() string {
	switch h {
	case HintPresent:
		return "present"
	case HintAbsent:
		return "absent"
	default:
		return "unknown"
	}
}

// ParseHint maps loose user input onto a Hint
// accepts present/yes/y/true/1, absent/no/n/false/0, and unknown/not sure/empty
func ParseHint(s string) (Hint, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "present", "yes", "y", "true", "1":
		return HintPresent, true
	case "absent", "no", "n", "false", "0":
		return HintAbsent, true
	case "", "unknown", "not sure", "notsure", "?":
		return HintUnknown, true
	default:
		return HintUnknown, false
	}
}

// Candidate is one plausible manufacturing date
type Candidate struct {
	Year  int
	Month string
	Notes []string
}

// Month pairs a serial month symbol with its canonical name
type Month struct {
	Symbol string `json:"symbol"`
	Name   string `json:"name"`
}

// months is the fixed 12-symbol alphabet in calendar order
var months = []Month{
	{"1", "January"}, {"2", "February"}, {"3", "March"}, {"4", "April"},
	{"5", "May"}, {"6", "June"}, {"7", "July"}, {"8", "August"},
	{"9", "September"}, {"O", "October"}, {"N", "November"}, {"D", "December"},
}

// Months returns a copy of the month alphabet in calendar order
func Months() []Month {
	return append([]Month(nil), months...)
}

// monthName returns the canonical month for an upper-cased symbol
func monthName(sym byte) (string, bool) {
	for _, m := range months {
		if m.Symbol[0] == sym {
			return m.Name, true
		}
	}
	return "", false
}

// Scheme bounds and notes
const (
	// OriginYear is the first year the scheme can encode
	OriginYear = 1960
	// ShortSerialFrom is the first year of 6-character serials
	ShortSerialFrom = 1968
	// WaterResistUntil is the last year "Water Resist" suggests for 6-character serials
	WaterResistUntil = 1971
	// BoxedMarkFrom is the first year of boxed case-construction marks
	BoxedMarkFrom = 1976

	// justification notes, attached in this order
	NoteShortSerial = "6-digit serial number suggests 1968 or later production"
	NoteLongSerial  = "7-digit serial number suggests pre-1968 production"
	NoteWaterResist = "'Water Resist' marking suggests 1968-1971 production"
	NoteWaterproof  = "'Waterproof' marking suggests pre-1968 production"
	NoteBoxedMark   = "Boxed case construction mark suggests 1976 or later production"
)
