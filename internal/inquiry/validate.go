package inquiry

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(jsonFieldName)
	if err := RegisterValidators(v); err != nil {
		panic("inquiry: registering validators: " + err.Error())
	}
	return v
}

// RegisterValidators installs the "notblank" and "phone" rules on v.
func RegisterValidators(v *validator.Validate) error {
	if err := v.RegisterValidation("notblank", validators.NotBlank); err != nil {
		return err
	}
	return v.RegisterValidation("phone", validatePhone)
}

func validatePhone(fl validator.FieldLevel) bool {
	return IsValidPhone(fl.Field().String())
}

func jsonFieldName(fld reflect.StructField) string {
	name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
	if name == "-" {
		return ""
	}
	return name
}

// Validate checks every field of in and returns one error per failing field.
// Rules are evaluated independently, so all failing fields are reported on a
// single pass. Optional fields never produce errors.
func Validate(in Inquiry) FieldErrors {
	errs := FieldErrors{}

	var verrs validator.ValidationErrors
	if !errors.As(validate.Struct(in), &verrs) {
		return errs
	}

	for _, fe := range verrs {
		field := fe.Field()
		switch fe.Tag() {
		case "phone":
			errs[field] = &InvalidFormatError{Field: field}
		default:
			errs[field] = &RequiredFieldError{Field: field}
		}
	}
	return errs
}
