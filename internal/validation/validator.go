// Package validation performs client-side payload validation before anything
// goes on the wire. Validation failures never reach the session manager;
// they surface directly to the user.
package validation

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

// phoneRE accepts digits, spaces, dashes, parentheses, and a plus sign.
var phoneRE = regexp.MustCompile(`^[0-9\s\-\(\)\+]+$`)

// Validator wraps go-playground/validator with the custom rules the travel
// payloads need.
type Validator struct {
	v *validator.Validate
}

func New() *Validator {
	v := validator.New()
	// Registration cannot fail for a fixed func name on a fresh instance.
	_ = v.RegisterValidation("phone", func(fl validator.FieldLevel) bool {
		return phoneRE.MatchString(fl.Field().String())
	})
	return &Validator{v: v}
}

// Validate checks the struct's validate tags and flattens all failures into
// a single human-readable error.
func (val *Validator) Validate(i any) error {
	if err := val.v.Struct(i); err != nil {
		var ve validator.ValidationErrors
		if errors.As(err, &ve) {
			msgs := make([]string, 0, len(ve))
			for _, fe := range ve {
				msgs = append(msgs, fieldError(fe))
			}
			return fmt.Errorf("%s", strings.Join(msgs, "; "))
		}
		return err
	}
	return nil
}

// fieldError converts a single ValidationError into a human-readable message.
func fieldError(fe validator.FieldError) string {
	field := strings.ToLower(fe.Field())
	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "email":
		return field + " must be a valid email"
	case "phone":
		return field + " must be a valid phone number"
	case "min":
		return fmt.Sprintf("%s must be at least %s characters", field, fe.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", field, fe.Param())
	default:
		return fmt.Sprintf("%s failed validation (%s)", field, fe.Tag())
	}
}
