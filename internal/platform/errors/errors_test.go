package errors

import (
	stderrs "errors"
	"fmt"
	"net/http"
	"testing"
)

func TestHTTPStatusCodeMapping(t *testing.T) {
	cases := []struct {
		code ErrorCode
		want int
	}{
		{ErrorCodeNotFound, http.StatusNotFound},
		{ErrorCodeInvalidArgument, http.StatusUnprocessableEntity},
		{ErrorCodeValidation, http.StatusBadRequest},
		{ErrorCodeJSON, http.StatusBadRequest},
		{ErrorCodeTooManyRequests, http.StatusTooManyRequests},
		{ErrorCodeUnavailable, http.StatusServiceUnavailable},
		{ErrorCodeTimeout, http.StatusGatewayTimeout},
		{ErrorCodePanic, http.StatusInternalServerError},
		{ErrorCodeUnknown, http.StatusInternalServerError},
		{9999, http.StatusInternalServerError},
	}
	for _, c := range cases {
		if got := HTTPStatusCode(c.code); got != c.want {
			t.Fatalf("HTTPStatusCode(%v) = %d, want %d", c.code, got, c.want)
		}
	}
}

func TestError_WrapKeepsCauseOutOfWire(t *testing.T) {
	var nilErr *Error
	if nilErr.Error() != "<nil>" {
		t.Fatalf("nil *Error render = %q", nilErr.Error())
	}

	cause := stderrs.New("serial: malformed_serial (1X0123)")
	err := Wrap(cause, ErrorCodeInvalidArgument, "bad serial")

	if !stderrs.Is(err, cause) {
		t.Fatalf("Wrap must keep the cause reachable")
	}
	if got := err.Error(); got != "bad serial: serial: malformed_serial (1X0123)" {
		t.Fatalf("Error() = %q", got)
	}
	w := WireFrom(err)
	if w.Code != ErrorCodeInvalidArgument || w.Message != "bad serial" {
		t.Fatalf("WireFrom = %+v", w)
	}
	if stderrs.Unwrap(err) != cause {
		t.Fatalf("Unwrap should return the cause")
	}
}

func TestMutatorsCopyOnWrite(t *testing.T) {
	base := Newf(ErrorCodeValidation, "%s is required", "serial")
	withField := WithField(base, "serial")
	withOp := WithOp(withField, "decode")

	if e, _ := As(base); e.Field() != "" {
		t.Fatalf("WithField mutated the original")
	}
	e, ok := As(withOp)
	if !ok || e.Field() != "serial" || e.Op() != "decode" || e.Message() != "serial is required" {
		t.Fatalf("unexpected mutated error: %+v", e)
	}

	foreign := fmt.Errorf("plain")
	if WithField(foreign, "x") != foreign || WithOp(foreign, "y") != foreign {
		t.Fatalf("mutators must pass foreign errors through")
	}
}

func TestCodeHelpers(t *testing.T) {
	wrapped := fmt.Errorf("outer: %w", Newf(ErrorCodeNotFound, "no dates for %s", "150123"))
	if CodeOf(wrapped) != ErrorCodeNotFound {
		t.Fatalf("CodeOf should see through fmt wrapping")
	}
	if HTTPStatus(wrapped) != http.StatusNotFound {
		t.Fatalf("HTTPStatus = %d", HTTPStatus(wrapped))
	}
	if CodeOf(stderrs.New("x")) != ErrorCodeUnknown {
		t.Fatalf("foreign errors are unknown")
	}
	if w := WireFrom(stderrs.New("x")); w.Code != ErrorCodeUnknown || w.Message != "x" {
		t.Fatalf("WireFrom foreign = %+v", w)
	}
	if w := WireFrom(nil); w != (Wire{}) {
		t.Fatalf("WireFrom(nil) = %+v", w)
	}

	st, w := HTTP(nil)
	if st != http.StatusOK || w != (Wire{}) {
		t.Fatalf("HTTP(nil) = %d %+v", st, w)
	}
	st, w = HTTP(New(ErrorCodeInvalidArgument, "bad"))
	if st != http.StatusUnprocessableEntity || w.Code != ErrorCodeInvalidArgument {
		t.Fatalf("HTTP(invalid) = %d %+v", st, w)
	}
}

func TestErrorCodeString(t *testing.T) {
	if ErrorCodeNotFound.String() != "not_found" || ErrorCode(9999).String() != "unknown" {
		t.Fatalf("unexpected code names")
	}
	for _, fn := range []func(string, ...any) error{JSONErrf, PanicErrf, Internalf} {
		if fn("x") == nil {
			t.Fatalf("constructor returned nil")
		}
	}
}
