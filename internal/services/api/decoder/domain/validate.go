package domain

import (
	"sync"

	"watchdate/internal/core/serial"
	"watchdate/internal/platform/net/http/bind"
)

var regOnce sync.Once

// RegisterValidators installs the hint tag on the shared validator, safe to call repeatedly
func RegisterValidators() {
	regOnce.Do(func() {
		err := bind.RegisterValidation("hint", "{0} must be present, absent or unknown", func(fl bind.FieldLevel) bool {
			_, ok := serial.ParseHint(fl.Field().String())
			return ok
		})
		if err != nil {
			panic("decoder: register hint validator: " + err.Error())
		}
	})
}
