package serverutils

import (
	"regexp"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

var hexColorPattern = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

func newValidator() *validator.Validate {
	v := validator.New()
	// "hexcolor6": a # followed by exactly six hex digits.
	_ = v.RegisterValidation("hexcolor6", func(fl validator.FieldLevel) bool {
		return hexColorPattern.MatchString(fl.Field().String())
	})
	return v
}

// ValidateRequest runs struct validation; the error handler middleware turns
// the returned validator.ValidationErrors into a 400 with field details.
func ValidateRequest(req interface{}) error {
	return validate.Struct(req)
}

type FieldError struct {
	Field string `json:"field"`
	Rule  string `json:"rule"`
}

func FormatValidationErrors(errs validator.ValidationErrors) []FieldError {
	fields := make([]FieldError, len(errs))
	for i, e := range errs {
		fields[i] = FieldError{Field: e.Field(), Rule: e.Tag()}
	}
	return fields
}
