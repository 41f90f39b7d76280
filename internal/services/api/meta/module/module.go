// Package module wires meta endpoints into the API using a tiny module
package module

import (
	"time"

	"watchdate/internal/core/version"
	modkit "watchdate/internal/modkit"
	"watchdate/internal/modkit/httpkit"
	str "watchdate/internal/platform/strings"
	ptime "watchdate/internal/platform/time"

	metahttp "watchdate/internal/services/api/meta/http"
)

// Module implements the modkit.Module interface
type Module struct {
	b         modkit.Built
	startedAt time.Time
}

// New constructs a meta module with the provided dependencies and options
func New(deps modkit.Deps, opts ...modkit.Option) modkit.Module {
	clock := deps.Clock
	if clock == nil {
		clock = ptime.System
	}
	m := &Module{startedAt: clock.Now()}

	b := modkit.Build(append([]modkit.Option{
		modkit.WithName("meta"),
		modkit.WithPrefix("/meta"),
	}, opts...)...)

	external := b.Register
	b.Register = func(r httpkit.Router) {
		metahttp.Register(r, metahttp.Deps{
			ServiceName: version.Info().Service,
			StartedAt:   m.startedAt,
			Clock:       clock,
		})
		external(r)
	}
	m.b = b
	return m
}

// MountRoutes implements the modkit.Module interface
func (m *Module) MountRoutes(r httpkit.Router) { m.b.Mount(r) }

// Name implements the modkit.Module interface
func (m *Module) Name() string { return str.MustString(m.b.Name, "meta") }

// Prefix returns the module route prefix
func (m *Module) Prefix() string { return str.MustPrefix(m.b.Prefix) }

// Ports implements the modkit.Module interface
func (m *Module) Ports() any { return nil }
