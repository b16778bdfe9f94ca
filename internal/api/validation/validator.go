package validation

import (
	"errors"
	"fmt"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/vorolab/site/internal/inquiry"
)

// RegisterValidators registers the inquiry rules on gin's binding validator
// so that `binding:"notblank"` and `binding:"phone"` tags work in DTOs.
func RegisterValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return fmt.Errorf("unexpected binding validator engine %T", binding.Validator.Engine())
	}
	return inquiry.RegisterValidators(v)
}

// ValidationError represents a validation error
type ValidationError struct {
	Field string `json:"field"`
	Tag   string `json:"tag"`
}

// FormatValidationError flattens validator errors; it returns nil when err
// is not a validation failure (for example a JSON syntax error).
func FormatValidationError(err error) []ValidationError {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return nil
	}

	out := make([]ValidationError, 0, len(validationErrors))
	for _, e := range validationErrors {
		out = append(out, ValidationError{
			Field: e.Field(),
			Tag:   e.Tag(),
		})
	}
	return out
}
