package validation

import (
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"
)

// FieldErrors enumerates every violated field of a payload, keyed by the
// field's wire name.
type FieldErrors map[string]string

func (e FieldErrors) Error() string {
	fields := make([]string, 0, len(e))
	for field := range e {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	parts := make([]string, 0, len(fields))
	for _, field := range fields {
		parts = append(parts, field+" "+e[field])
	}
	return "invalid payload: " + strings.Join(parts, "; ")
}

// FieldErrorsFromBinding converts gin binding failures into per-field
// reasons. Unrecognized errors collapse into a single "body" entry.
func FieldErrorsFromBinding(err error) FieldErrors {
	fieldErrors := FieldErrors{}

	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		for _, fieldError := range validationErrors {
			fieldErrors[toSnakeCase(fieldError.Field())] = reasonForTag(fieldError)
		}
		return fieldErrors
	}

	var typeError *json.UnmarshalTypeError
	if errors.As(err, &typeError) && typeError.Field != "" {
		fieldErrors[typeError.Field] = "has the wrong type"
		return fieldErrors
	}

	fieldErrors["body"] = "is not valid JSON"
	return fieldErrors
}

func reasonForTag(fieldError validator.FieldError) string {
	switch fieldError.Tag() {
	case "required":
		return "is required"
	case "oneof":
		return "must be one of " + strings.Join(strings.Fields(fieldError.Param()), ", ")
	case "max":
		return fmt.Sprintf("must be at most %s characters", fieldError.Param())
	default:
		return "is not valid"
	}
}

func toSnakeCase(name string) string {
	var b strings.Builder
	runes := []rune(name)
	for i, r := range runes {
		if unicode.IsUpper(r) {
			// Break only on a lower-to-upper transition so acronym runs such
			// as the ID in ProjectID stay one word.
			if i > 0 && !unicode.IsUpper(runes[i-1]) {
				b.WriteByte('_')
			}
			b.WriteRune(unicode.ToLower(r))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
