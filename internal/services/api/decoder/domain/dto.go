// Package domain holds DTOs and ports for the decoder http and service contracts
package domain

import "watchdate/internal/core/serial"

// DecodeInput is a decode request
// hints accept present, absent, unknown or empty, plus the loose yes/no forms
type DecodeInput struct {
	Serial      string `json:"serial" example:"150123"`
	WaterResist string `json:"water_resist,omitempty" validate:"hint" example:"unknown"`
	BoxedMark   string `json:"boxed_mark,omitempty" validate:"hint" example:"present"`
	// Year overrides the current year used to bound the search window
	Year int `json:"year,omitempty" validate:"omitempty,min=1960,max=9999" example:"2024"`
}

// Hints parses the hint fields, unparseable values map to unknown
func (in DecodeInput) Hints() serial.Hints {
	w, _ := serial.ParseHint(in.WaterResist)
	b, _ := serial.ParseHint(in.BoxedMark)
	return serial.Hints{WaterResist: w, BoxedMark: b}
}

// Candidate is one plausible manufacturing date on the wire, year is four digits
type Candidate struct {
	Year  string   `json:"year" example:"1981"`
	Month string   `json:"month" example:"May"`
	Notes []string `json:"notes"`
}

// DecodeResult is the decode response payload
type DecodeResult struct {
	Serial     string      `json:"serial" example:"15-0123"`
	Normalized string      `json:"normalized" example:"150123"`
	YearUsed   int         `json:"year_used" example:"2024"`
	Candidates []Candidate `json:"candidates"`
}

// FromCandidates converts core candidates to wire DTOs
func FromCandidates(cs []serial.Candidate) []Candidate {
	out := make([]Candidate, 0, len(cs))
	for _, c := range cs {
		out = append(out, Candidate{Year: c.YearString(), Month: c.Month, Notes: c.Notes})
	}
	return out
}
