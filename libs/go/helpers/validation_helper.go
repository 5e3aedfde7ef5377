package helpers

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/regime-co/regime-api/libs/go/types/business"
)

// NewValidator returns a validator that reports fields by their json name
func NewValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})
	return v
}

// FieldErrors converts a validator error into customer readable field errors.
// Errors that are not validation errors yield nil.
func FieldErrors(err error) []business.FieldError {
	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return nil
	}

	out := make([]business.FieldError, 0, len(validationErrs))
	for _, fe := range validationErrs {
		out = append(out, business.FieldError{
			Field:   fe.Field(),
			Message: fieldMessage(fe),
		})
	}
	return out
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "This field is required"
	case "email":
		return "Enter a valid email address"
	case "oneof":
		return "Choose one of the listed options"
	case "min":
		if fe.Kind() == reflect.Slice {
			return fmt.Sprintf("Select at least %s", fe.Param())
		}
		return fmt.Sprintf("Must be at least %s characters", fe.Param())
	case "max":
		if fe.Kind() == reflect.Slice {
			return fmt.Sprintf("Select at most %s", fe.Param())
		}
		return fmt.Sprintf("Must be at most %s characters", fe.Param())
	case "gte", "lte":
		return fmt.Sprintf("Value is out of range (%s %s)", fe.Tag(), fe.Param())
	default:
		return "Invalid value"
	}
}
