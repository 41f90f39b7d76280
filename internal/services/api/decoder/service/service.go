// Package service contains the decode workflow behind the HTTP API
package service

import (
	"context"

	"watchdate/internal/core/serial"
	perr "watchdate/internal/platform/errors"
	"watchdate/internal/platform/logger"
	ptime "watchdate/internal/platform/time"
	"watchdate/internal/services/api/decoder/domain"
)

// DefaultMaxInput bounds the raw serial accepted before sanitizing
const DefaultMaxInput = 64

// Service defines the decoder service contract
type Service interface {
	domain.ServicePort
	CurrentYear() int
}

const opDecode = "decoder.Decode"

// Options configures the service
type Options struct {
	Clock    ptime.Clock
	MaxInput int
}

// Svc implements the decoder service
type Svc struct {
	clock    ptime.Clock
	maxInput int
}

// New constructs a decoder service, zero options use the system clock and DefaultMaxInput
func New(opt Options) *Svc {
	if opt.Clock == nil {
		opt.Clock = ptime.System
	}
	if opt.MaxInput <= 0 {
		opt.MaxInput = DefaultMaxInput
	}
	return &Svc{clock: opt.Clock, maxInput: opt.MaxInput}
}

// Decode sanitizes the raw serial, resolves the current year and runs the decoder
func (s *Svc) Decode(ctx context.Context, in domain.DecodeInput) (domain.DecodeResult, error) {
	log := logger.C(ctx)

	if len(in.Serial) > s.maxInput {
		return domain.DecodeResult{}, perr.WithOp(perr.WithField(
			perr.Validationf("serial must be at most %d bytes", s.maxInput), "serial"), opDecode)
	}

	year := in.Year
	if year == 0 {
		year = s.CurrentYear()
	}
	norm := serial.Sanitize(in.Serial)
	h := in.Hints()

	cs, err := serial.Decode(norm, h.WaterResist, h.BoxedMark, year)
	if err != nil {
		log.Info().
			Str("kind", serial.KindOf(err).String()).
			Int("len", len(norm)).
			Msg("decode rejected")
		return domain.DecodeResult{}, perr.WithOp(mapErr(err), opDecode)
	}

	log.Debug().
		Int("len", len(norm)).
		Stringer("water_resist", h.WaterResist).
		Stringer("boxed_mark", h.BoxedMark).
		Int("year", year).
		Int("candidates", len(cs)).
		Msg("decoded")

	return domain.DecodeResult{
		Serial:     in.Serial,
		Normalized: norm,
		YearUsed:   year,
		Candidates: domain.FromCandidates(cs),
	}, nil
}

// CurrentYear is the year bounding the search window when a request carries no override
func (s *Svc) CurrentYear() int { return ptime.Year(s.clock) }

// Months returns the month alphabet
func (s *Svc) Months(_ context.Context) []serial.Month { return serial.Months() }

// mapErr lifts decode failures into coded platform errors with the user-facing message
func mapErr(err error) error {
	msg := serial.Message(err)
	switch serial.KindOf(err) {
	case serial.KindEmptyInput:
		return perr.WithField(perr.Wrap(err, perr.ErrorCodeValidation, msg), "serial")
	case serial.KindMalformedSerial, serial.KindUnknownMonthSymbol:
		return perr.WithField(perr.Wrap(err, perr.ErrorCodeInvalidArgument, msg), "serial")
	case serial.KindNoCandidates:
		return perr.Wrap(err, perr.ErrorCodeNotFound, msg)
	default:
		return perr.Wrap(err, perr.ErrorCodeUnknown, "decode failed")
	}
}
