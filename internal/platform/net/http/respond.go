// Package http provides the router seam, server, and JSON responses with a consistent envelope
package http

import (
	"encoding/json"
	stdhttp "net/http"

	perr "watchdate/internal/platform/errors"
	"watchdate/internal/platform/logger"
	pnet "watchdate/internal/platform/net"
)

// Envelope is the standard response body for all endpoints
type Envelope struct {
	StatusCode int            `json:"status_code"`
	Status     string         `json:"status"`
	Code       perr.ErrorCode `json:"code,omitempty"`
	Error      string         `json:"error,omitempty"`
	Field      string         `json:"field,omitempty"`
	RequestID  string         `json:"request_id,omitempty"`
	Data       any            `json:"data,omitempty"`
}

// JSON writes v as application/json with the given status
func JSON(w stdhttp.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// RespondError maps a project error into an envelope and writes it
func RespondError(w stdhttp.ResponseWriter, r *stdhttp.Request, err error) {
	status, env := errorEnvelope(r, err)
	JSON(w, status, env)
}

func errorEnvelope(r *stdhttp.Request, err error) (int, Envelope) {
	status, wr := perr.HTTP(err)
	logFailure(logger.C(r.Context()), r, status, err)
	return status, Envelope{
		StatusCode: status,
		Status:     stdhttp.StatusText(status),
		Code:       wr.Code,
		Error:      wr.Message,
		Field:      wr.Field,
		RequestID:  pnet.RequestID(r.Context()),
	}
}

// logFailure records err at error level for server faults and debug level otherwise
// the op tag set by services travels in the log line, never on the wire
func logFailure(l *logger.Logger, r *stdhttp.Request, status int, err error) {
	ev := l.Debug()
	if status >= stdhttp.StatusInternalServerError {
		ev = l.Error()
	}
	if e, ok := perr.As(err); ok && e.Op() != "" {
		ev = ev.Str("op", e.Op())
	}
	ev.Err(err).Int("status", status).Str("path", r.URL.Path).Msg("request failed")
}

//
// Return-style helpers for early returns in handlers
//

// Response is a functional response object for return-style handlers
type Response struct {
	Status int
	Body   any
	// optional headers if a handler wants to add any
	Header stdhttp.Header
}

// Handle adapts a Response-returning handler to net/http
func Handle(h func(r *stdhttp.Request) Response) stdhttp.HandlerFunc {
	return func(w stdhttp.ResponseWriter, r *stdhttp.Request) {
		h(r).write(w, r)
	}
}

func (resp Response) write(w stdhttp.ResponseWriter, r *stdhttp.Request) {
	for k, vv := range resp.Header {
		for _, v := range vv {
			w.Header().Add(k, v)
		}
	}

	// an error body derives status from the error
	if err, ok := resp.Body.(error); ok && err != nil {
		RespondError(w, r, err)
		return
	}

	status := resp.Status
	if status == 0 {
		status = stdhttp.StatusOK
	}
	if status == stdhttp.StatusNoContent {
		w.WriteHeader(stdhttp.StatusNoContent)
		return
	}
	JSON(w, status, Envelope{
		StatusCode: status,
		Status:     stdhttp.StatusText(status),
		RequestID:  pnet.RequestID(r.Context()),
		Data:       resp.Body,
	})
}

// OK returns a 200 response
func OK(data any) Response { return Response{Status: stdhttp.StatusOK, Body: data} }

// NoContent returns a 204 response
func NoContent() Response { return Response{Status: stdhttp.StatusNoContent} }

// Error returns a response that maps the error to status and envelope
func Error(err error) Response { return Response{Body: err} }
