// Package validation checks command structs with go-playground/validator and
// turns failures into field-level messages keyed by JSON field name.
package validation

import (
	"errors"
	"fmt"
	"math"
	"reflect"
	"regexp"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/hitaloss/business/internal/domain"
)

var (
	validate        = newValidator()
	usernamePattern = regexp.MustCompile(`^[\p{L}\p{N}_.@+-]+$`)
)

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	v.RegisterValidation("notblank", NotBlankValidator)
	v.RegisterValidation("username", UsernameValidator)
	v.RegisterValidation("money", MoneyValidator)
	return v
}

// NotBlankValidator rejects strings made only of white space.
func NotBlankValidator(fl validator.FieldLevel) bool {
	return strings.TrimSpace(fl.Field().String()) != ""
}

// UsernameValidator accepts letters, digits and @/./+/-/_ only.
func UsernameValidator(fl validator.FieldLevel) bool {
	return usernamePattern.MatchString(fl.Field().String())
}

// MoneyValidator accepts amounts of at most 10 digits with at most two of
// them after the decimal point.
func MoneyValidator(fl validator.FieldLevel) bool {
	value := fl.Field().Float()
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return false
	}
	whole, frac, _ := strings.Cut(strconv.FormatFloat(math.Abs(value), 'f', -1, 64), ".")
	return len(strings.TrimLeft(whole, "0")) <= 8 && len(frac) <= 2
}

type decodeErrorer interface {
	DecodeError() error
}

// Struct validates s and returns a *domain.ValidationError listing every
// failing field, or nil. Decode errors recorded on s come first; a field
// that failed to decode is not reported again by the validator.
func Struct(s any) error {
	result := &domain.ValidationError{}
	if d, ok := s.(decodeErrorer); ok {
		if err := d.DecodeError(); err != nil && !errors.As(err, &result) {
			return err
		}
	}
	decoded := make(map[string]bool, len(result.Fields))
	for field := range result.Fields {
		decoded[field] = true
	}

	if err := validate.Struct(s); err != nil {
		var fieldErrors validator.ValidationErrors
		if !errors.As(err, &fieldErrors) {
			return fmt.Errorf("validate %T: %w", s, err)
		}
		for _, fe := range fieldErrors {
			if !decoded[fe.Field()] {
				result.Add(fe.Field(), message(fe))
			}
		}
	}

	if result.HasErrors() {
		return result
	}
	return nil
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "This field is required."
	case "notblank":
		return "This field may not be blank."
	case "max":
		return fmt.Sprintf("Ensure this field has no more than %s characters.", fe.Param())
	case "gte":
		return fmt.Sprintf("Ensure this value is greater than or equal to %s.", fe.Param())
	case "lte":
		return fmt.Sprintf("Ensure this value is less than or equal to %s.", fe.Param())
	case "username":
		return "Enter a valid username. This value may contain only letters, numbers, and @/./+/-/_ characters."
	case "money":
		return "Ensure that there are no more than 10 digits in total and no more than 2 decimal places."
	}
	return "Invalid value."
}
