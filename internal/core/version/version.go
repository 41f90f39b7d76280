// Package version provides information about the build version of the service.
package version

// BuildInfo holds version information about the service build.
type BuildInfo struct {
	Service string `json:"service"`
	Version string `json:"version"`
	Commit  string `json:"commit"`
	Date    string `json:"date"`
}

// Info returns the build information. The version, commit, and date variables
// are set at build time with -ldflags, for example
// -X 'watchdate/internal/core/version.version=v0.1.0' -X 'watchdate/internal/core/version.commit=abcd'
func Info() BuildInfo {
	return BuildInfo{
		Service: Service,
		Version: version,
		Commit:  commit,
		Date:    date,
	}
}

// Service is the API service name reported by meta endpoints and logs
const Service = "watchdate-api"

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// String renders a one line build summary for CLI output
func (b BuildInfo) String() string {
	return b.Service + " " + b.Version + " (" + b.Commit + ", " + b.Date + ")"
}
