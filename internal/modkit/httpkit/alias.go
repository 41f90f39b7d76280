// Package httpkit provides handler and routing helpers that alias the platform http package
// modules use these so they do not import internal/platform/net/http directly
package httpkit

import (
	"net/http"

	phttp "watchdate/internal/platform/net/http"
	"watchdate/internal/platform/net/http/bind"
)

type (
	// Envelope is the transport envelope type
	Envelope = phttp.Envelope

	// Response is the return-style response type
	Response = phttp.Response

	// Handler is the platform handler type
	Handler = phttp.Handler

	// Router is the platform router seam
	Router = phttp.Router
)

// OK returns a 200 response
func OK(data any) Response { return phttp.OK(data) }

// NoContent returns a 204 response
func NoContent() Response { return phttp.NoContent() }

// Error returns a response that maps err to status and envelope
func Error(err error) Response { return phttp.Error(err) }

// Handle adapts a Response-returning function
func Handle(fn func(*http.Request) Response) Handler { return phttp.Handle(fn) }

// JSON binds and validates a JSON body of type T before calling fn
func JSON[T any](fn func(*http.Request, T) (any, error)) Handler { return phttp.JSONHandler(fn) }

// Call adapts a handler that takes no body
func Call(fn func(*http.Request) (any, error)) Handler { return phttp.JSONHandlerNoBody(fn) }

// URLParam returns a path parameter captured by the router
func URLParam(r *http.Request, key string) string { return phttp.URLParam(r, key) }

// Validate runs struct validation for inputs not bound from a JSON body
func Validate(v any) error { return bind.Validate(v) }
