package httpkit

import (
	"net/http"

	phttp "watchdate/internal/platform/net/http"
)

// Get mounts a body-less handler under GET
func Get(r Router, path string, h func(*http.Request) (any, error)) {
	phttp.GetJSON(r, path, h)
}

// PostJSON mounts a bound JSON handler under POST
func PostJSON[T any](r Router, path string, h func(*http.Request, T) (any, error)) {
	phttp.PostJSON(r, path, h)
}

// Options mounts a body-less handler under OPTIONS
func Options(r Router, path string, h func(*http.Request) (any, error)) {
	r.Options(path, Call(h))
}
