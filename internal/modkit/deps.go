// Package modkit provides module wiring and core deps
package modkit

import (
	"watchdate/internal/platform/config"
	"watchdate/internal/platform/logger"
	ptime "watchdate/internal/platform/time"
)

// Deps holds core dependencies passed to modules
// this is wiring only and does not introduce new abstractions
type Deps struct {
	Log   logger.Logger
	Cfg   config.Conf
	Clock ptime.Clock
}

// Year returns the current year from the injected clock, falling back to the system clock
func (d Deps) Year() int { return ptime.Year(d.Clock) }
