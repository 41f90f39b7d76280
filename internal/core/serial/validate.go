package serial

import "regexp"

// shape is one digit, one digit or month letter, then 4 or 5 digits
// '0' passes here and is rejected by the month lookup
var shape = regexp.MustCompile(`^(?i)[0-9][0-9OND][0-9]{4,5}$`)

// Parsed is a structurally valid serial
type Parsed struct {
	YearDigit   int
	MonthSymbol string
	Month       string
	Length      int
}

// Validate checks the raw serial and returns its normalized parts
// raw is expected to be sanitized already, Validate does not trim or filter
func Validate(raw string) (Parsed, error) {
	if raw == "" {
		return Parsed{}, &DecodeError{Kind: KindEmptyInput}
	}
	if !shape.MatchString(raw) {
		return Parsed{}, &DecodeError{Kind: KindMalformedSerial, Serial: raw}
	}

	sym := upper(raw[1])
	name, ok := monthName(sym)
	if !ok {
		return Parsed{}, &DecodeError{Kind: KindUnknownMonthSymbol, Serial: raw}
	}

	return Parsed{
		YearDigit:   int(raw[0] - '0'),
		MonthSymbol: string(sym),
		Month:       name,
		Length:      len(raw),
	}, nil
}

func upper(b byte) byte {
	if b >= 'a' && b <= 'z' {
		return b - ('a' - 'A')
	}
	return b
}
