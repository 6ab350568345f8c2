package service

import (
	"database/sql"
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

func isNoRows(err error) bool {
	return errors.Is(err, sql.ErrNoRows)
}

// NewValidator builds the validator shared by all services. Field names in
// validation errors follow the json tag so they can be returned to clients
// as-is.
func NewValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "" {
			name = strings.SplitN(field.Tag.Get("form"), ",", 2)[0]
		}
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// validationFields flattens validator errors into a field -> message map.
// Fields already present in the map are left untouched so rule-table
// messages take precedence over generic tag messages.
func validationFields(err error, fields map[string]string) map[string]string {
	if fields == nil {
		fields = make(map[string]string)
	}
	errs, ok := err.(validator.ValidationErrors)
	if !ok {
		return fields
	}
	for _, fe := range errs {
		name := fe.Field()
		if name == "" {
			continue
		}
		if _, exists := fields[name]; exists {
			continue
		}
		fields[name] = tagMessage(fe)
	}
	return fields
}

func tagMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "This field is required"
	case "oneof":
		return "Unsupported value"
	case "email":
		return "Please enter a valid email address"
	case "gte", "lte", "min", "max":
		return "Value is out of range"
	default:
		return "Invalid value"
	}
}
