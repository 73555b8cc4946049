// Package validation checks editor input and themes with go-playground/validator,
// reporting failures as domain ValidationErrors.
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/wadjakorntonsri/go-linkpage/pkg/core/domain"
)

// Mode selects how strictly themes are checked.
type Mode string

const (
	// ModeLenient accepts every theme; malformed values reach the renderer verbatim.
	ModeLenient Mode = "lenient"
	// ModeStrict rejects malformed colors, unknown enum values and negative radii.
	ModeStrict Mode = "strict"
)

// ParseMode returns ModeStrict for "strict" and ModeLenient otherwise.
func ParseMode(s string) Mode {
	if strings.EqualFold(s, string(ModeStrict)) {
		return ModeStrict
	}
	return ModeLenient
}

// Validator wraps go-playground/validator with domain error conversion.
type Validator struct {
	v *validator.Validate
}

// New creates a validator with the themecolor tag registered.
func New() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "" || name == "-" {
			return fld.Name
		}
		return name
	})

	_ = v.RegisterValidation("themecolor", func(fl validator.FieldLevel) bool {
		return domain.Color(fl.Field().String()).WellFormed()
	})

	return &Validator{v: v}
}

// Struct validates s against its validate tags.
func (v *Validator) Struct(s any) error {
	if err := v.v.Struct(s); err != nil {
		return formatError(err)
	}
	return nil
}

// Theme validates t under mode. Lenient mode never fails.
func (v *Validator) Theme(t domain.Theme, mode Mode) (domain.Theme, error) {
	if mode != ModeStrict {
		return t, nil
	}
	if err := v.Struct(t); err != nil {
		return domain.Theme{}, err
	}
	return t, nil
}

func formatError(err error) error {
	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return err
	}

	fields := make(map[string]string, len(validationErrs))
	for _, e := range validationErrs {
		fields[e.Field()] = friendlyMessage(e)
	}
	return &domain.ValidationError{Message: "validation failed", Fields: fields}
}

func friendlyMessage(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return "is required"
	case "themecolor":
		return "must be a #RRGGBB, rgb(), rgba() or transparent color"
	case "oneof":
		return "must be one of: " + e.Param()
	case "gte":
		return "must be greater than or equal to " + e.Param()
	case "max":
		return fmt.Sprintf("must not exceed %s characters", e.Param())
	default:
		return "is invalid"
	}
}
