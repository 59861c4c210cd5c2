package models

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// ErrInvalidRequest is wrapped by every error ValidateStruct returns.
var ErrInvalidRequest = errors.New("invalid request")

// global validator instance
var validate *validator.Validate

func init() {
	validate = validator.New(validator.WithRequiredStructEnabled())
	// Report JSON field names so errors match what callers sent.
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		if name == "" {
			return fld.Name
		}
		return name
	})
}

// FieldError describes one failed validation rule, keyed by the JSON field name.
type FieldError struct {
	Field string
	Rule  string
	Param string
}

func (e FieldError) message() string {
	switch e.Rule {
	case "required":
		return fmt.Sprintf("'%s' is required", e.Field)
	case "oneof":
		return fmt.Sprintf("'%s' must be one of: %s", e.Field, strings.ReplaceAll(e.Param, " ", ", "))
	case "min":
		return fmt.Sprintf("'%s' must be at least %s", e.Field, e.Param)
	default:
		return fmt.Sprintf("'%s' failed rule '%s'", e.Field, e.Rule)
	}
}

// ValidationError collects the field errors of one struct.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	msgs := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		msgs = append(msgs, f.message())
	}
	return fmt.Sprintf("%s: %s", ErrInvalidRequest, strings.Join(msgs, "; "))
}

func (e *ValidationError) Unwrap() error { return ErrInvalidRequest }

// ValidateStruct performs validation on any struct that has validation tags.
func ValidateStruct(s any) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return fmt.Errorf("%w: %v", ErrInvalidRequest, err)
	}
	out := &ValidationError{}
	for _, fe := range validationErrors {
		out.Fields = append(out.Fields, FieldError{
			Field: fe.Field(),
			Rule:  fe.Tag(),
			Param: fe.Param(),
		})
	}
	return out
}
