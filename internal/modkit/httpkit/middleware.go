package httpkit

import (
	"compress/flate"
	"net/http"
	"time"

	"watchdate/internal/platform/net/middleware"
)

// StackOptions tunes CommonStack from config
type StackOptions struct {
	Origins  []string
	Slow     time.Duration
	Timeout  time.Duration
	Throttle int
}

// CommonStack returns the baseline middleware for the API root
func CommonStack(o StackOptions) []func(http.Handler) http.Handler {
	timeout := o.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return []func(http.Handler) http.Handler{
		// correlation
		middleware.RequestID(),
		middleware.RealIP(),

		// access log wraps recover so panics are logged with their 500
		middleware.AccessLogZerolog(middleware.AccessLogOptions{Slow: o.Slow}),
		middleware.RecoverJSON,

		middleware.NoCache(),
		middleware.CORS(middleware.CORSOptions{AllowedOrigins: o.Origins}),
		middleware.Compress(flate.BestSpeed),
		middleware.Heartbeat("/health"),
		middleware.StripSlashes(),
		middleware.Throttle(o.Throttle),
		middleware.Timeout(timeout),
	}
}
