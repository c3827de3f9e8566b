package validator

import (
	"strings"

	"github.com/go-playground/validator/v10"
)

// ErrorResponse describe un campo que no pasó validación.
type ErrorResponse struct {
	FailedField string
	Tag         string
	Value       string
}

var validate = validator.New()

// ValidateStruct valida un DTO según sus tags `validate`.
func ValidateStruct(data interface{}) []*ErrorResponse {
	var errors []*ErrorResponse
	err := validate.Struct(data)
	if err != nil {
		for _, err := range err.(validator.ValidationErrors) {
			var element ErrorResponse
			element.FailedField = err.StructNamespace()
			element.Tag = err.Tag()
			element.Value = err.Param()
			errors = append(errors, &element)
		}
	}
	return errors
}

// Message aplana los errores de validación a un string legible para respuestas HTTP.
func Message(errs []*ErrorResponse) string {
	parts := make([]string, 0, len(errs))
	for _, e := range errs {
		msg := e.FailedField + ": " + e.Tag
		if e.Value != "" {
			msg += "=" + e.Value
		}
		parts = append(parts, msg)
	}
	return strings.Join(parts, "; ")
}
