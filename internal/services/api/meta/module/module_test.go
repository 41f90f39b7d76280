package module_test

import (
	"net/http"
	"testing"
	"time"

	"watchdate/internal/modkit"
	modpkg "watchdate/internal/modkit/module"
	phttp "watchdate/internal/platform/net/http"
	kit "watchdate/internal/platform/testkit"
	ptime "watchdate/internal/platform/time"
	metahttp "watchdate/internal/services/api/meta/http"
	metamod "watchdate/internal/services/api/meta/module"

	"github.com/go-chi/chi/v5"
)

func TestMeta_Endpoints(t *testing.T) {
	kit.Serial(t)
	modpkg.Reset()
	t.Cleanup(modpkg.Reset)

	start := time.Date(2026, time.October, 16, 12, 0, 0, 0, time.UTC)
	now := start
	clock := ptime.ClockFunc(func() time.Time { return now })

	m := metamod.New(modkit.Deps{Clock: clock})
	modpkg.Register(m.Name(), m.Ports())
	modpkg.Register("decoder", nil)

	mux := chi.NewRouter()
	m.MountRoutes(phttp.AdaptChi(mux))
	now = start.Add(90 * time.Second)

	rec, env := kit.Do(t, mux, http.MethodGet, "/meta/health", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("health = %d", rec.Code)
	}
	health := kit.DataAs[metahttp.HealthResponse](t, env)
	if !health.OK || health.Service != "watchdate-api" || health.Now != "2026-10-16T12:01:30Z" {
		t.Fatalf("health = %+v", health)
	}

	_, env = kit.Do(t, mux, http.MethodGet, "/meta/service", nil)
	svc := kit.DataAs[metahttp.ServiceResponse](t, env)
	if svc.Uptime != 90 || svc.Year != 2026 {
		t.Fatalf("service = %+v", svc)
	}
	if len(svc.Modules) != 2 || svc.Modules[0] != "decoder" || svc.Modules[1] != "meta" {
		t.Fatalf("modules = %v", svc.Modules)
	}

	rec, _ = kit.Do(t, mux, http.MethodGet, "/meta/version", nil)
	kit.MustContain(t, rec.Body.String(), `"service":"watchdate-api"`)
}

type pinnedYear int

func (p pinnedYear) CurrentYear() int { return int(p) }

func TestMeta_ServiceYearFromDecoder(t *testing.T) {
	kit.Serial(t)
	modpkg.Reset()
	t.Cleanup(modpkg.Reset)

	clock := ptime.FixedYear(2026)
	m := metamod.New(modkit.Deps{Clock: clock})
	modpkg.Register("decoder", struct{ Decoder pinnedYear }{Decoder: 2019})

	mux := chi.NewRouter()
	m.MountRoutes(phttp.AdaptChi(mux))

	_, env := kit.Do(t, mux, http.MethodGet, "/meta/service", nil)
	if svc := kit.DataAs[metahttp.ServiceResponse](t, env); svc.Year != 2019 {
		t.Fatalf("year = %d, want the decoder year 2019", svc.Year)
	}
}
