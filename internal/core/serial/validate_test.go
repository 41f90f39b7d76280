package serial

import "testing"

func TestValidate_Table(t *testing.T) {
	tests := []struct {
		in   string
		want Parsed
		kind Kind
	}{
		{in: "150123", want: Parsed{YearDigit: 1, MonthSymbol: "5", Month: "May", Length: 6}},
		{in: "9D12345", want: Parsed{YearDigit: 9, MonthSymbol: "D", Month: "December", Length: 7}},
		{in: "0n1234", want: Parsed{YearDigit: 0, MonthSymbol: "N", Month: "November", Length: 6}},
		{in: "3o1234", want: Parsed{YearDigit: 3, MonthSymbol: "O", Month: "October", Length: 6}},
		{in: "", kind: KindEmptyInput},
		{in: " 150123", kind: KindMalformedSerial},
		{in: "1X0123", kind: KindMalformedSerial},
		{in: "15012a", kind: KindMalformedSerial},
		{in: "1501", kind: KindMalformedSerial},
		{in: "100123", kind: KindUnknownMonthSymbol},
		{in: "１50123", kind: KindMalformedSerial}, // fullwidth is not sanitized here
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.in, func(t *testing.T) {
			got, err := Validate(tc.in)
			if tc.kind != 0 {
				if KindOf(err) != tc.kind {
					t.Fatalf("Validate(%q) err = %v, want %s", tc.in, err, tc.kind)
				}
				return
			}
			if err != nil {
				t.Fatalf("Validate(%q) unexpected err: %v", tc.in, err)
			}
			if got != tc.want {
				t.Fatalf("Validate(%q) = %+v, want %+v", tc.in, got, tc.want)
			}
		})
	}
}

func TestMonths_CopyAndOrder(t *testing.T) {
	ms := Months()
	if len(ms) != 12 {
		t.Fatalf("expected 12 months, got %d", len(ms))
	}
	if ms[0].Name != "January" || ms[11].Name != "December" {
		t.Fatalf("unexpected order: %v", ms)
	}
	ms[0].Name = "mutated"
	if Months()[0].Name != "January" {
		t.Fatalf("Months must return a copy")
	}
}

func TestParseHint(t *testing.T) {
	tests := []struct {
		in   string
		want Hint
		ok   bool
	}{
		{"present", HintPresent, true},
		{" YES ", HintPresent, true},
		{"true", HintPresent, true},
		{"absent", HintAbsent, true},
		{"No", HintAbsent, true},
		{"0", HintAbsent, true},
		{"", HintUnknown, true},
		{"Not Sure", HintUnknown, true},
		{"unknown", HintUnknown, true},
		{"maybe", HintUnknown, false},
	}
	for _, tc := range tests {
		got, ok := ParseHint(tc.in)
		if got != tc.want || ok != tc.ok {
			t.Fatalf("ParseHint(%q) = (%s,%v), want (%s,%v)", tc.in, got, ok, tc.want, tc.ok)
		}
	}
}

func TestHint_String(t *testing.T) {
	if HintPresent.String() != "present" || HintAbsent.String() != "absent" || HintUnknown.String() != "unknown" {
		t.Fatalf("unexpected hint names")
	}
	var zero Hint
	if zero != HintUnknown {
		t.Fatalf("zero value must be HintUnknown")
	}
}

func TestMessage(t *testing.T) {
	_, err := Decode("", HintUnknown, HintUnknown, 2024)
	if got := Message(err); got != "Please enter a serial number" {
		t.Fatalf("Message = %q", got)
	}
	if Message(nil) != "" {
		t.Fatalf("Message(nil) should be empty")
	}
	if KindOf(nil) != 0 {
		t.Fatalf("KindOf(nil) should be 0")
	}
}
