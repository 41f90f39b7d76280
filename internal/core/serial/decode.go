package serial

import (
	"slices"
	"strconv"
)

// Hints carries the optional case-back markings
type Hints struct {
	WaterResist Hint
	BoxedMark   Hint
}

// Decode returns every plausible manufacturing date for raw, ascending by year
// currentYear bounds the enumeration and is never read from the clock here
func Decode(raw string, waterResist, boxedMark Hint, currentYear int) ([]Candidate, error) {
	p, err := Validate(raw)
	if err != nil {
		return nil, err
	}
	return DecodeParsed(p, Hints{WaterResist: waterResist, BoxedMark: boxedMark}, currentYear, raw)
}

// DecodeParsed runs the generate, filter, annotate and sort stages on an already validated serial
// raw is only used to label a NoCandidates error
func DecodeParsed(p Parsed, h Hints, currentYear int, raw string) ([]Candidate, error) {
	out := make([]Candidate, 0, 8)
	for _, year := range candidateYears(p.YearDigit, currentYear) {
		notes, ok := constrain(year, p.Length, h)
		if !ok {
			continue
		}
		out = append(out, Candidate{Year: year, Month: p.Month, Notes: notes})
	}

	sortByYear(out)

	if len(out) == 0 {
		return nil, &DecodeError{Kind: KindNoCandidates, Serial: raw}
	}
	return out, nil
}

// candidateYears enumerates decade+digit for each decade from 1960 to the decade after now
// years past next year or before the origin are dropped
func candidateYears(digit, currentYear int) []int {
	currentDecade := (currentYear / 10) * 10
	years := make([]int, 0, (currentDecade+10-OriginYear)/10+1)
	for decade := OriginYear; decade <= currentDecade+10; decade += 10 {
		year := decade + digit
		if year > currentYear+1 || year < OriginYear {
			continue
		}
		years = append(years, year)
	}
	return years
}

// constrain applies the era and hint rules to one year
// it returns the justification notes and whether the year survives
func constrain(year, length int, h Hints) ([]string, bool) {
	switch length {
	case 6:
		return constrainShort(year, h)
	case 7:
		return constrainLong(year, h)
	default:
		return nil, false
	}
}

// constrainShort covers 6-character serials, 1968 onward
func constrainShort(year int, h Hints) ([]string, bool) {
	if year < ShortSerialFrom {
		return nil, false
	}
	notes := []string{NoteShortSerial}

	switch h.WaterResist {
	case HintPresent:
		// only re-asserts the era bound; the 1971 upper bound in the note is not enforced
		if year < ShortSerialFrom {
			return nil, false
		}
		notes = append(notes, NoteWaterResist)
	case HintAbsent:
		if year > WaterResistUntil {
			return nil, false
		}
	}

	if h.BoxedMark == HintPresent {
		if year < BoxedMarkFrom {
			return nil, false
		}
		notes = append(notes, NoteBoxedMark)
	}
	return notes, true
}

// constrainLong covers 7-character serials, before 1968
func constrainLong(year int, h Hints) ([]string, bool) {
	if year >= ShortSerialFrom {
		return nil, false
	}
	notes := []string{NoteLongSerial}

	switch h.WaterResist {
	case HintPresent:
		// "Water Resist" did not exist before 1968
		return nil, false
	case HintAbsent:
		notes = append(notes, NoteWaterproof)
	}

	// boxed marks start in 1976
	if h.BoxedMark == HintPresent {
		return nil, false
	}
	return notes, true
}

func sortByYear(cs []Candidate) {
	slices.SortStableFunc(cs, func(a, b Candidate) int { return a.Year - b.Year })
}

// YearString formats the year as four digits
func (c Candidate) YearString() string {
	s := strconv.Itoa(c.Year)
	for len(s) < 4 {
		s = "0" + s
	}
	return s
}
