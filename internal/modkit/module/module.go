// Package module defines the minimal contract for a modkit module
package module

import (
	phttp "watchdate/internal/platform/net/http"
)

// Module is what the API root mounts
// it lives in its own package so a module can export a ports type without an import cycle
type Module interface {
	MountRoutes(r phttp.Router)
	Ports() any
	Name() string
}
