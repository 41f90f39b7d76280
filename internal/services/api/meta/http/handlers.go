// Package http provides meta endpoints
package http

import (
	"net/http"
	"time"

	"watchdate/internal/core/version"
	"watchdate/internal/modkit/httpkit"
	modpkg "watchdate/internal/modkit/module"
	ptime "watchdate/internal/platform/time"
)

// Deps are the handler dependencies
type Deps struct {
	ServiceName string
	StartedAt   time.Time
	Clock       ptime.Clock
}

// yearSource is satisfied by the decoder service, whose year may be pinned by config
type yearSource interface{ CurrentYear() int }

type handlers struct {
	deps Deps
}

// Register mounts the meta routes
func Register(r httpkit.Router, d Deps) {
	if d.Clock == nil {
		d.Clock = ptime.System
	}
	h := &handlers{deps: d}

	httpkit.Get(r, "/health", h.health)
	httpkit.Get(r, "/version", h.version)
	httpkit.Get(r, "/service", h.service)
}

// HealthResponse is the health payload
// swagger:model
type HealthResponse struct {
	OK      bool   `json:"ok"      example:"true"`
	Service string `json:"service" example:"watchdate-api"`
	Started string `json:"started" example:"2026-10-16T13:00:00Z"`
	Now     string `json:"now"     example:"2026-10-16T13:05:00Z"`
}

// ServiceResponse describes service info
type ServiceResponse struct {
	Name    string   `json:"name"    example:"watchdate-api"`
	Started string   `json:"started" example:"2026-10-16T13:00:00Z"`
	Uptime  int64    `json:"uptime"  example:"300"`
	Year    int      `json:"year"    example:"2026"`
	Modules []string `json:"modules"`
}

// swagger:route GET /meta/health Meta metaHealth
// @Summary Health check
// @Tags Meta
// @Produce json
// @Success 200 {object} HealthResponse "ok"
// @Router /meta/health [get]
func (h *handlers) health(_ *http.Request) (any, error) {
	return HealthResponse{
		OK:      true,
		Service: h.deps.ServiceName,
		Started: h.deps.StartedAt.UTC().Format(time.RFC3339),
		Now:     h.deps.Clock.Now().UTC().Format(time.RFC3339),
	}, nil
}

// swagger:route GET /meta/version Meta metaVersion
// @Summary Build and version info
// @Tags Meta
// @Produce json
// @Success 200 {object} version.BuildInfo "ok"
// @Router /meta/version [get]
func (h *handlers) version(_ *http.Request) (any, error) {
	return version.Info(), nil
}

// swagger:route GET /meta/service Meta metaService
// @Summary Service info, uptime and the year used for decoding
// @Tags Meta
// @Produce json
// @Success 200 {object} ServiceResponse "ok"
// @Router /meta/service [get]
func (h *handlers) service(_ *http.Request) (any, error) {
	now := h.deps.Clock.Now()
	year := now.Year()
	if ys, ok := modpkg.Lookup[yearSource]("decoder"); ok {
		year = ys.CurrentYear()
	}
	return ServiceResponse{
		Name:    h.deps.ServiceName,
		Started: h.deps.StartedAt.UTC().Format(time.RFC3339),
		Uptime:  int64(now.Sub(h.deps.StartedAt) / time.Second),
		Year:    year,
		Modules: modpkg.Names(),
	}, nil
}
