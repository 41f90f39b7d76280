package modkit

import (
	"net/http"

	phttp "watchdate/internal/platform/net/http"
)

// Built is the resolved option set a module keeps around
type Built struct {
	Name      string
	Prefix    string
	Mw        []func(http.Handler) http.Handler
	Ports     any
	SwaggerOn bool
	Register  func(phttp.Router)
}

// Build applies opts in order and returns a plain struct
func Build(opts ...Option) Built {
	var c buildCfg
	for _, o := range opts {
		o(&c)
	}
	if c.register == nil {
		c.register = func(phttp.Router) {}
	}
	return Built{
		Name:      c.name,
		Prefix:    c.prefix,
		Mw:        append([]func(http.Handler) http.Handler(nil), c.mw...),
		Ports:     c.ports,
		SwaggerOn: c.swaggerOn,
		Register:  c.register,
	}
}

// Mount attaches the module routes under its prefix with its middleware
// an empty prefix registers directly on r
func (b Built) Mount(r phttp.Router) {
	if b.Prefix == "" {
		r.Group(func(g phttp.Router) {
			if len(b.Mw) > 0 {
				g.Use(b.Mw...)
			}
			b.Register(g)
		})
		return
	}
	r.Route(b.Prefix, func(sub phttp.Router) {
		if len(b.Mw) > 0 {
			sub.Use(b.Mw...)
		}
		b.Register(sub)
	})
}
