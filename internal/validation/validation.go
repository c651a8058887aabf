// Package validation wraps go-playground/validator with a flat error type
// that reads well on a terminal.
package validation

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var goValidator = validator.New()

// Errors collects the failed rules of one struct.
type Errors struct {
	Fields []FieldError
}

// FieldError is one failed rule.
type FieldError struct {
	Field string
	Tag   string
	Param string
}

func (fe FieldError) String() string {
	if fe.Param != "" {
		return fmt.Sprintf("%s %s=%s", fe.Field, fe.Tag, fe.Param)
	}
	return fmt.Sprintf("%s %s", fe.Field, fe.Tag)
}

func (ve Errors) Error() string {
	if len(ve.Fields) == 0 {
		return "no validation errors"
	}
	parts := make([]string, len(ve.Fields))
	for i, f := range ve.Fields {
		parts[i] = f.String()
	}
	return "invalid " + strings.Join(parts, "; ")
}

// Has reports whether field failed any rule.
func (ve Errors) Has(field string) bool {
	for _, f := range ve.Fields {
		if f.Field == field {
			return true
		}
	}
	return false
}

// Struct validates s. It returns nil or an Errors value.
func Struct(s any) error {
	err := goValidator.Struct(s)
	if err == nil {
		return nil
	}
	ve, ok := err.(validator.ValidationErrors)
	if !ok {
		return err
	}
	out := Errors{Fields: make([]FieldError, 0, len(ve))}
	for _, e := range ve {
		out.Fields = append(out.Fields, FieldError{Field: e.Field(), Tag: e.ActualTag(), Param: e.Param()})
	}
	return out
}
