package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// chiRouter adapts chi.Router to Router, sub routers share the same adapter
type chiRouter struct{ r chi.Router }

// AdaptChi adapts a *chi.Mux to a Router
func AdaptChi(m *chi.Mux) Router { return chiRouter{r: m} }

func (c chiRouter) method(m, p string, h Handler) { c.r.Method(m, p, http.HandlerFunc(h)) }

func (c chiRouter) Get(p string, h Handler)     { c.method(http.MethodGet, p, h) }
func (c chiRouter) Post(p string, h Handler)    { c.method(http.MethodPost, p, h) }
func (c chiRouter) Options(p string, h Handler) { c.method(http.MethodOptions, p, h) }

func (c chiRouter) Handle(p string, h http.Handler)           { c.r.Handle(p, h) }
func (c chiRouter) Use(mw ...func(http.Handler) http.Handler) { c.r.Use(mw...) }

func (c chiRouter) Group(fn func(Router)) {
	c.r.Group(func(sub chi.Router) { fn(chiRouter{r: sub}) })
}

func (c chiRouter) Route(pattern string, fn func(Router)) {
	c.r.Route(pattern, func(sub chi.Router) { fn(chiRouter{r: sub}) })
}

// Mux returns the underlying handler, chi.Router implements http.Handler
func (c chiRouter) Mux() http.Handler { return c.r }

// URLParam returns a chi path parameter
func URLParam(r *http.Request, key string) string { return chi.URLParam(r, key) }
