package main

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
	"testing"

	"watchdate/internal/core/serial"
	perr "watchdate/internal/platform/errors"
	kit "watchdate/internal/platform/testkit"
	ptime "watchdate/internal/platform/time"
	"watchdate/internal/services/api/decoder/domain"

	"github.com/google/go-cmp/cmp"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	kit.Serial(t)
	kit.Swap(t, &clock, ptime.FixedYear(2024))

	var out, errOut bytes.Buffer
	cmd := newRootCmd(&out, &errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestDecode_Text(t *testing.T) {
	out, err := run(t, "decode", "6d01234", "--water-resist", "no")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	want := "Possible manufacturing dates for 6d01234:\n" +
		"  December 1966\n" +
		"    - " + serial.NoteLongSerial + "\n" +
		"    - " + serial.NoteWaterproof + "\n"
	if diff := cmp.Diff(want, out); diff != "" {
		t.Fatalf("output mismatch (-want +got):\n%s", diff)
	}
}

func TestDecode_JSON(t *testing.T) {
	out, err := run(t, "decode", "150123", "--boxed-mark", "yes", "--json")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	var res domain.DecodeResult
	if err := json.Unmarshal([]byte(out), &res); err != nil {
		t.Fatalf("decode json: %v\n%s", err, out)
	}
	var years []string
	for _, c := range res.Candidates {
		years = append(years, c.Year)
	}
	if diff := cmp.Diff([]string{"1981", "1991", "2001", "2011", "2021"}, years); diff != "" {
		t.Fatalf("years mismatch (-want +got):\n%s", diff)
	}
	if res.YearUsed != 2024 {
		t.Fatalf("year_used = %d", res.YearUsed)
	}
}

func TestDecode_YearFlag(t *testing.T) {
	out, err := run(t, "decode", "5O0123", "--year", "2023")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if strings.Contains(out, "2025") || !strings.Contains(out, "October 2015") {
		t.Fatalf("year flag not applied:\n%s", out)
	}
}

func TestDecode_Errors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		msg  string
	}{
		{name: "empty", args: []string{"decode", ""}, msg: "Please enter a serial number"},
		{name: "malformed", args: []string{"decode", "1X0123"}, msg: "Please enter a valid 6 or 7 digit serial number"},
		{name: "zero month", args: []string{"decode", "100123"}, msg: "Invalid month character in serial number"},
		{name: "contradiction", args: []string{"decode", "1501234", "--water-resist", "yes"}, msg: "No matching dates found"},
		{name: "bad hint", args: []string{"decode", "150123", "--boxed-mark", "perhaps"}, msg: "--boxed-mark must be yes, no or unknown"},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			_, err := run(t, tc.args...)
			if err == nil {
				t.Fatalf("expected error")
			}
			kit.MustContain(t, errMessage(err), tc.msg)
		})
	}
}

func TestDecode_BadHintsReportedInFlagOrder(t *testing.T) {
	for i := 0; i < 20; i++ {
		t.Run(strconv.Itoa(i), func(t *testing.T) {
			_, err := run(t, "decode", "150123", "--water-resist", "maybe", "--boxed-mark", "perhaps")
			e, ok := perr.As(err)
			if !ok || e.Field() != "water-resist" {
				t.Fatalf("reported %v, want water-resist first", err)
			}
		})
	}
}

func TestDecode_RequiresOneArg(t *testing.T) {
	if _, err := run(t, "decode"); err == nil {
		t.Fatalf("expected arg count error")
	}
}

func TestMonths(t *testing.T) {
	out, err := run(t, "months")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 12 || lines[0] != "1  January" || lines[11] != "D  December" {
		t.Fatalf("unexpected months output:\n%s", out)
	}
}

func TestVersion(t *testing.T) {
	out, err := run(t, "version")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	kit.MustContain(t, out, "watchdate dev")
}
