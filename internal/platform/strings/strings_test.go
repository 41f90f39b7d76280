package strings

import (
	"testing"

	kit "watchdate/internal/platform/testkit"
)

func TestIfEmpty(t *testing.T) {
	def := []string{"GET"}
	if got := IfEmpty(nil, def); len(got) != 1 || got[0] != "GET" {
		t.Fatalf("IfEmpty(nil) = %v", got)
	}
	in := []string{"POST"}
	if got := IfEmpty(in, def); got[0] != "POST" {
		t.Fatalf("IfEmpty(in) = %v", got)
	}
}

func TestMustString(t *testing.T) {
	if MustString("decoder", "name") != "decoder" {
		t.Fatalf("MustString changed input")
	}
	kit.MustPanic(t, func() { MustString("  ", "name") })
}

func TestMustPrefix(t *testing.T) {
	for in, want := range map[string]string{
		"decoder":   "/decoder",
		"/decoder/": "/decoder",
		" /meta ":   "/meta",
		"//a/b//":   "/a/b",
	} {
		if got := MustPrefix(in); got != want {
			t.Fatalf("MustPrefix(%q) = %q, want %q", in, got, want)
		}
	}
	kit.MustPanic(t, func() { MustPrefix(" / ") })
}
