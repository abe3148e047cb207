// Package validate turns binding failures into field-keyed error messages
// suitable for inline form display.
package validate

import (
	"errors"
	"fmt"
	"unicode"

	"github.com/go-playground/validator/v10"
)

// FieldErrors maps a ShouldBindJSON error to something the envelope can
// carry: a map of json field name to message for validation failures, or a
// generic message when the body was not even parseable JSON.
func FieldErrors(err error) interface{} {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return "Invalid request body"
	}
	out := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		out[jsonName(fe.Field())] = message(fe)
	}
	return out
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		if fe.Kind().String() == "slice" {
			return "Please select at least one option"
		}
		return "This field is required"
	case "email":
		return "Valid email is required"
	case "min":
		if fe.Kind().String() == "slice" {
			return "Please select at least one option"
		}
		return fmt.Sprintf("Must be at least %s characters", fe.Param())
	case "max":
		return fmt.Sprintf("Must be at most %s characters", fe.Param())
	case "oneof":
		return "Must be one of: " + fe.Param()
	case "gt":
		return fmt.Sprintf("Must be greater than %s", fe.Param())
	default:
		return "Invalid value"
	}
}

// jsonName lowercases the first rune of a struct field name, which matches
// the json tags used throughout the API (FullName -> fullName).
func jsonName(field string) string {
	r := []rune(field)
	if len(r) == 0 {
		return field
	}
	r[0] = unicode.ToLower(r[0])
	return string(r)
}
