// Package http provides http transport for the decoder
package http

import (
	stdhttp "net/http"
	"strconv"

	"watchdate/internal/modkit/httpkit"
	perr "watchdate/internal/platform/errors"
	"watchdate/internal/services/api/decoder/domain"
)

// Register mounts decoder endpoints on the given router
func Register(r httpkit.Router, s domain.ServicePort) {
	domain.RegisterValidators()
	h := &handlers{svc: s}

	httpkit.PostJSON(r, "/decode", h.decode)
	httpkit.Get(r, "/decode/{serial}", h.decodePath)
	httpkit.Get(r, "/months", h.months)
}

type handlers struct{ svc domain.ServicePort }

// swagger:route POST /decoder/decode Decoder decoderDecode
// @Summary Decode a serial number into candidate manufacturing dates
// @Tags Decoder
// @Accept json
// @Produce json
// @Param payload body domain.DecodeInput true "Serial and optional case-back hints"
// @Success 200 {object} domain.DecodeResult "ok"
// @Failure 400 {object} httpkit.Envelope "empty serial or invalid hint"
// @Failure 404 {object} httpkit.Envelope "no matching dates"
// @Failure 422 {object} httpkit.Envelope "malformed serial"
// @Router /decoder/decode [post]
func (h *handlers) decode(r *stdhttp.Request, in domain.DecodeInput) (any, error) {
	return h.svc.Decode(r.Context(), in)
}

// swagger:route GET /decoder/decode/{serial} Decoder decoderDecodePath
// @Summary Decode a serial number from the path
// @Tags Decoder
// @Produce json
// @Param serial path string true "Serial number"
// @Param water_resist query string false "present, absent or unknown"
// @Param boxed_mark query string false "present, absent or unknown"
// @Param year query int false "Current year override"
// @Success 200 {object} domain.DecodeResult "ok"
// @Failure 400 {object} httpkit.Envelope "invalid hint or year"
// @Failure 404 {object} httpkit.Envelope "no matching dates"
// @Failure 422 {object} httpkit.Envelope "malformed serial"
// @Router /decoder/decode/{serial} [get]
func (h *handlers) decodePath(r *stdhttp.Request) (any, error) {
	q := r.URL.Query()
	in := domain.DecodeInput{
		Serial:      httpkit.URLParam(r, "serial"),
		WaterResist: q.Get("water_resist"),
		BoxedMark:   q.Get("boxed_mark"),
	}
	if y := q.Get("year"); y != "" {
		n, err := strconv.Atoi(y)
		if err != nil {
			return nil, perr.WithField(perr.Validationf("year must be a number"), "year")
		}
		in.Year = n
	}
	if err := httpkit.Validate(in); err != nil {
		return nil, err
	}
	return h.svc.Decode(r.Context(), in)
}

// swagger:route GET /decoder/months Decoder decoderMonths
// @Summary List the month symbols used in serial numbers
// @Tags Decoder
// @Produce json
// @Success 200 {array} serial.Month "ok"
// @Router /decoder/months [get]
func (h *handlers) months(r *stdhttp.Request) (any, error) {
	return h.svc.Months(r.Context()), nil
}
