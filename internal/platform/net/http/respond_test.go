package http_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	perr "watchdate/internal/platform/errors"
	pnet "watchdate/internal/platform/net"
	phttp "watchdate/internal/platform/net/http"
	kit "watchdate/internal/platform/testkit"
)

func withReqID(h http.Handler, rid string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h.ServeHTTP(w, r.WithContext(pnet.WithRequest(r.Context(), rid)))
	})
}

func TestHandle_OKEnvelope(t *testing.T) {
	h := phttp.Handle(func(*http.Request) phttp.Response {
		return phttp.OK(map[string]int{"year": 1971})
	})
	rec, env := kit.Do(t, withReqID(h, "rid-1"), http.MethodGet, "/x", nil)
	if rec.Code != http.StatusOK || env.StatusCode != 200 || env.Status != "OK" || env.RequestID != "rid-1" {
		t.Fatalf("unexpected envelope %d %+v", rec.Code, env)
	}
	got := kit.DataAs[map[string]int](t, env)
	if got["year"] != 1971 {
		t.Fatalf("data = %v", got)
	}
}

func TestHandle_ErrorEnvelope(t *testing.T) {
	h := phttp.Handle(func(*http.Request) phttp.Response {
		return phttp.Error(perr.WithField(perr.New(perr.ErrorCodeInvalidArgument, "bad serial"), "serial"))
	})
	rec, env := kit.Do(t, http.HandlerFunc(h), http.MethodGet, "/x", nil)
	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("status = %d", rec.Code)
	}
	if env.Code != int(perr.ErrorCodeInvalidArgument) || env.Error != "bad serial" {
		t.Fatalf("envelope = %+v", env)
	}
	kit.MustContain(t, rec.Body.String(), `"field":"serial"`)
}

func TestHandle_ForeignErrorIs500(t *testing.T) {
	h := phttp.Handle(func(*http.Request) phttp.Response { return phttp.Error(errors.New("boom")) })
	rec, env := kit.Do(t, http.HandlerFunc(h), http.MethodGet, "/x", nil)
	if rec.Code != http.StatusInternalServerError || env.Error != "boom" {
		t.Fatalf("unexpected %d %+v", rec.Code, env)
	}
}

func TestHandle_NoContentAndHeaders(t *testing.T) {
	h := phttp.Handle(func(*http.Request) phttp.Response {
		r := phttp.NoContent()
		r.Header = http.Header{"X-Years": []string{"6"}}
		return r
	})
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/x", nil))
	if rec.Code != http.StatusNoContent || rec.Body.Len() != 0 || rec.Header().Get("X-Years") != "6" {
		t.Fatalf("unexpected %d %q %v", rec.Code, rec.Body.String(), rec.Header())
	}
}

func TestJSONHandler_BindsAndPassesResponse(t *testing.T) {
	type in struct {
		Serial string `json:"serial" validate:"required"`
	}
	h := phttp.JSONHandler(func(_ *http.Request, v in) (any, error) {
		if v.Serial == "teapot" {
			return phttp.Response{Status: http.StatusTeapot, Body: "short and stout"}, nil
		}
		return map[string]string{"echo": v.Serial}, nil
	})

	rec, env := kit.Do(t, http.HandlerFunc(h), http.MethodPost, "/x", map[string]string{"serial": "150123"})
	if rec.Code != http.StatusOK || kit.DataAs[map[string]string](t, env)["echo"] != "150123" {
		t.Fatalf("unexpected %d %+v", rec.Code, env)
	}

	rec, _ = kit.Do(t, http.HandlerFunc(h), http.MethodPost, "/x", map[string]string{"serial": "teapot"})
	if rec.Code != http.StatusTeapot {
		t.Fatalf("Response passthrough status = %d", rec.Code)
	}

	rec, env = kit.Do(t, http.HandlerFunc(h), http.MethodPost, "/x", `{}`)
	if rec.Code != http.StatusBadRequest || env.Code != int(perr.ErrorCodeValidation) {
		t.Fatalf("validation = %d %+v", rec.Code, env)
	}
}

func TestJSONHandlerNoBody_Error(t *testing.T) {
	h := phttp.JSONHandlerNoBody(func(*http.Request) (any, error) { return nil, perr.New(perr.ErrorCodeNotFound, "none") })
	rec, env := kit.Do(t, http.HandlerFunc(h), http.MethodGet, "/x", nil)
	if rec.Code != http.StatusNotFound || env.Error != "none" {
		t.Fatalf("unexpected %d %+v", rec.Code, env)
	}
}
