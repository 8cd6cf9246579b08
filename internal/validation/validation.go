package validation

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var ErrInvalid = errors.New("invalid input")

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	err := v.RegisterValidation("title", func(fl validator.FieldLevel) bool {
		return ValidateTitle(fl.Field().String()) == nil
	})
	if err != nil {
		panic(fmt.Sprintf("register title validation: %v", err))
	}

	return v
}

// Struct validates a request payload against its `validate` tags.
// Failures wrap ErrInvalid.
func Struct(payload any) error {
	err := validate.Struct(payload)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) {
		fields := make([]string, 0, len(fieldErrs))
		for _, fe := range fieldErrs {
			fields = append(fields, fe.Field()+":"+fe.Tag())
		}
		return fmt.Errorf("%w: %s", ErrInvalid, strings.Join(fields, ", "))
	}

	return fmt.Errorf("%w: %v", ErrInvalid, err)
}
