package module

import (
	"watchdate/internal/platform/config"
	decsvc "watchdate/internal/services/api/decoder/service"
)

// Options tune the decoder module
type Options struct {
	// Year pins the current year, 0 follows the injected clock
	Year int
	// MaxInput bounds the raw serial length in bytes
	MaxInput int
}

// FromConfig reads CORE_DECODER_* settings
func FromConfig(cfg config.Conf) Options {
	c := cfg.Prefix("CORE_DECODER_")
	return Options{
		Year:     c.MayIntRange("YEAR", 0, 0, 9999),
		MaxInput: c.MayIntRange("MAX_INPUT", decsvc.DefaultMaxInput, 7, 4096),
	}
}
