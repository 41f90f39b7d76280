// Package module wires the decoder into the API using modkit
package module

import (
	modkit "watchdate/internal/modkit"
	"watchdate/internal/modkit/httpkit"
	str "watchdate/internal/platform/strings"
	ptime "watchdate/internal/platform/time"
	dechttp "watchdate/internal/services/api/decoder/http"
	decsvc "watchdate/internal/services/api/decoder/service"
)

// Module implements the decoder module
type Module struct {
	b   modkit.Built
	svc decsvc.Service
}

// New constructs the decoder module
func New(deps modkit.Deps, opt Options, opts ...modkit.Option) modkit.Module {
	svc := decsvc.New(decsvc.Options{
		Clock:    ptime.Pinned(opt.Year, deps.Clock),
		MaxInput: opt.MaxInput,
	})

	m := &Module{svc: svc}

	b := modkit.Build(append([]modkit.Option{
		modkit.WithName("decoder"),
		modkit.WithPrefix("/decoder"),
		modkit.WithSwagger(true),
		modkit.WithPorts(Ports{Decoder: svc}),
	}, opts...)...)

	external := b.Register
	b.Register = func(r httpkit.Router) {
		dechttp.Register(r, m.svc)
		external(r)
	}
	m.b = b
	return m
}

// MountRoutes mounts the module routes on the given router
func (m *Module) MountRoutes(r httpkit.Router) { m.b.Mount(r) }

// Name returns the module name
func (m *Module) Name() string { return str.MustString(m.b.Name, "module name") }

// Prefix returns the module route prefix
func (m *Module) Prefix() string { return str.MustPrefix(m.b.Prefix) }
