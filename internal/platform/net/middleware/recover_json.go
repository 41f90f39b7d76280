package middleware

import (
	stdjson "encoding/json"
	stdhttp "net/http"
	"runtime/debug"

	perr "watchdate/internal/platform/errors"
	"watchdate/internal/platform/logger"
	pnet "watchdate/internal/platform/net"
)

type panicWire struct {
	StatusCode int            `json:"status_code"`
	Status     string         `json:"status"`
	Code       perr.ErrorCode `json:"code"`
	Error      string         `json:"error,omitempty"`
	RequestID  string         `json:"request_id,omitempty"`
}

// RecoverJSON converts panics into a JSON 500 envelope and logs the stack with the request id
func RecoverJSON(next stdhttp.Handler) stdhttp.Handler {
	return stdhttp.HandlerFunc(func(w stdhttp.ResponseWriter, r *stdhttp.Request) {
		defer func() {
			v := recover()
			if v == nil {
				return
			}
			// let net/http abort the connection as usual
			if v == stdhttp.ErrAbortHandler {
				panic(v)
			}

			reqID := pnet.RequestID(r.Context())
			logger.C(r.Context()).Error().
				Interface("panic", v).
				Bytes("stack", debug.Stack()).
				Msg("panic recovered")

			if reqID != "" {
				w.Header().Set("X-Request-ID", reqID)
			}
			w.Header().Set("Content-Type", "application/json; charset=utf-8")
			w.WriteHeader(stdhttp.StatusInternalServerError)
			_ = stdjson.NewEncoder(w).Encode(panicWire{
				StatusCode: stdhttp.StatusInternalServerError,
				Status:     stdhttp.StatusText(stdhttp.StatusInternalServerError),
				Code:       perr.ErrorCodePanic,
				Error:      perr.PanicErrf("panic recovered").Error(),
				RequestID:  reqID,
			})
		}()
		next.ServeHTTP(w, r)
	})
}
