package serial

import "errors"

// Kind classifies a decode failure
type Kind uint8

const (
	// KindEmptyInput means there was nothing to decode
	KindEmptyInput Kind = iota + 1
	// KindMalformedSerial means the serial does not have the 6/7 character shape
	KindMalformedSerial
	// KindUnknownMonthSymbol means the second character is not a month symbol
	KindUnknownMonthSymbol
	// KindNoCandidates means no decade produced a year that survives the filters
	KindNoCandidates
)

// String returns a stable name for the kind
func (k Kind) String() string {
	switch k {
	case KindEmptyInput:
		return "empty_input"
	case KindMalformedSerial:
		return "malformed_serial"
	case KindUnknownMonthSymbol:
		return "unknown_month_symbol"
	case KindNoCandidates:
		return "no_candidates_found"
	default:
		return "unknown"
	}
}

// DecodeError is returned by Decode and Validate
type DecodeError struct {
	Kind   Kind
	Serial string
}

// Error implements the error interface
func (e *DecodeError) Error() string {
	if e.Serial == "" {
		return "serial: " + e.Kind.String()
	}
	return "serial: " + e.Kind.String() + " (" + e.Serial + ")"
}

// Is matches any *DecodeError with the same kind so sentinels work with errors.Is
func (e *DecodeError) Is(target error) bool {
	var t *DecodeError
	if !errors.As(target, &t) {
		return false
	}
	return t.Kind == e.Kind
}

// Sentinels for errors.Is
var (
	ErrEmptyInput         = &DecodeError{Kind: KindEmptyInput}
	ErrMalformedSerial    = &DecodeError{Kind: KindMalformedSerial}
	ErrUnknownMonthSymbol = &DecodeError{Kind: KindUnknownMonthSymbol}
	ErrNoCandidates       = &DecodeError{Kind: KindNoCandidates}
)

// KindOf returns the kind of a decode error or 0 if err is not one
func KindOf(err error) Kind {
	var e *DecodeError
	if errors.As(err, &e) {
		return e.Kind
	}
	return 0
}

// Message returns the user-facing text for a decode error
func Message(err error) string {
	switch KindOf(err) {
	case KindEmptyInput:
		return "Please enter a serial number"
	case KindMalformedSerial:
		return "Please enter a valid 6 or 7 digit serial number. The second character must be a digit (1-9) or letter (O, N, D)"
	case KindUnknownMonthSymbol:
		return "Invalid month character in serial number"
	case KindNoCandidates:
		return "No matching dates found based on the provided information. Try adjusting the filters or leave the advanced options blank."
	default:
		if err == nil {
			return ""
		}
		return err.Error()
	}
}
