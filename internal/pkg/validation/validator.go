package validation

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/sandiphembram2021/seswa-fullstack-sub002/internal/pkg/apperrors"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// Report fields by their JSON names so clients see what they sent
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})
	return v
}

// Struct validates s against its `validate` tags. Any failure is reported as
// a single validation error carrying message, with the failing fields listed
// in the error details.
func Struct(s interface{}, message string) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	customErr := &apperrors.CustomError{
		Err:     apperrors.ErrValidationFailed,
		Message: message,
	}

	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) {
		fields := make([]string, 0, len(fieldErrs))
		for _, fe := range fieldErrs {
			fields = append(fields, fe.Field())
		}
		customErr.WithDetails(map[string]interface{}{"fields": fields})
	}
	return customErr
}
