package domain

import (
	"context"

	"watchdate/internal/core/serial"
)

// ServicePort is consumed by handlers and other modules
type ServicePort interface {
	Decode(ctx context.Context, in DecodeInput) (DecodeResult, error)
	Months(ctx context.Context) []serial.Month
}
