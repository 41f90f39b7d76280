// Package bind provides JSON bind and validation helpers for handlers
package bind

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"reflect"
	"strings"
	"sync"

	perr "watchdate/internal/platform/errors"
	"watchdate/internal/platform/logger"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"
)

// FieldLevel aliases validator.FieldLevel
type FieldLevel = validator.FieldLevel

// ValidatorSvc holds a singleton validator and translator
type ValidatorSvc struct {
	Validator  *validator.Validate
	Translator ut.Translator
}

var (
	vOnce sync.Once
	vSvc  *ValidatorSvc
)

// Get returns the validator singleton, initializing it with english translations and json tag names
func Get() *ValidatorSvc {
	vOnce.Do(func() {
		enLoc := en.New()
		uni := ut.New(enLoc, enLoc)
		trans, _ := uni.GetTranslator("en")

		v := validator.New(validator.WithRequiredStructEnabled())

		// prefer json tag names in messages, fall back to query tags
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			for _, key := range []string{"json", "query"} {
				tag, _, _ := strings.Cut(fld.Tag.Get(key), ",")
				if tag == "-" {
					break
				}
				if tag != "" {
					return tag
				}
			}
			return fld.Name
		})

		_ = en_translations.RegisterDefaultTranslations(v, trans)

		// short messages for min and max
		addMessage(v, trans, "min", "{0} must be at least {1}")
		addMessage(v, trans, "max", "{0} must be at most {1}")

		vSvc = &ValidatorSvc{Validator: v, Translator: trans}
	})
	return vSvc
}

// RegisterValidation registers a custom tag with its english message
// message may use {0} for the field name and {1} for the tag param
func RegisterValidation(tag, message string, fn validator.Func) error {
	svc := Get()
	if err := svc.Validator.RegisterValidation(tag, fn); err != nil {
		return err
	}
	addMessage(svc.Validator, svc.Translator, tag, message)
	return nil
}

func addMessage(v *validator.Validate, trans ut.Translator, tag, message string) {
	_ = v.RegisterTranslation(tag, trans,
		func(ut ut.Translator) error {
			return ut.Add(tag, message, true)
		},
		func(ut ut.Translator, fe validator.FieldError) string {
			msg, _ := ut.T(tag, fe.Field(), fe.Param())
			return msg
		},
	)
}

// MaxBodyBytes bounds request bodies read by ParseJSON
const MaxBodyBytes = 1 << 16

// ParseJSON decodes JSON into T, validates it, and maps failures to project errors
// unknown fields, trailing data, and empty bodies are rejected
func ParseJSON[T any](r *http.Request) (T, error) {
	var zero T
	defer func() {
		if err := r.Body.Close(); err != nil {
			logger.C(r.Context()).Error().Err(err).Msg("failed to close request body")
		}
	}()

	dec := json.NewDecoder(io.LimitReader(r.Body, MaxBodyBytes))
	dec.DisallowUnknownFields()

	var dst T
	if err := dec.Decode(&dst); err != nil {
		if errors.Is(err, io.EOF) {
			return zero, perr.JSONErrf("empty body")
		}
		return zero, perr.JSONErrf("invalid JSON: %v", err)
	}
	if dec.More() {
		return zero, perr.JSONErrf("unexpected trailing data")
	}

	if err := Validate(dst); err != nil {
		return zero, err
	}
	return dst, nil
}

// Validate runs struct validation and maps the first failure to a validation error with its field
func Validate(v any) error {
	err := Get().Validator.Struct(v)
	if err == nil {
		return nil
	}
	var inv *validator.InvalidValidationError
	if errors.As(err, &inv) {
		logger.Get().Error().Err(inv).Msg("validator internal error")
		return perr.Internalf("validation error")
	}
	field, msg := ValidationFieldAndMessage(err)
	return perr.WithField(perr.Validationf("%s", msg), field)
}

// ValidationFieldAndMessage returns the first field and translated message
func ValidationFieldAndMessage(err error) (field, message string) {
	if err == nil {
		return "", ""
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		return verrs[0].Field(), verrs[0].Translate(Get().Translator)
	}
	return "", err.Error()
}
