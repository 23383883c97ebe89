package graphql

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// InputErrors lists every invalid field of an input object
type InputErrors []InputError

func (e InputErrors) Error() string {
	var s []string
	for _, err := range e {
		s = append(s, err.Error())
	}
	return strings.Join(s, ", ")
}

type InputError struct {
	Field string
	Msg   string
}

func (e InputError) Error() string {
	return fmt.Sprintf("%s %s", e.Field, e.Msg)
}

var validate = validator.New(validator.WithRequiredStructEnabled())

func init() {
	validate.RegisterTagNameFunc(func(f reflect.StructField) string {
		if name := f.Tag.Get("gql"); name != "" {
			return name
		}
		return f.Name
	})
}

// validateInput checks the validate tags of an input struct and reports the
// failures with their GraphQL field names.
func validateInput(in any) error {
	err := validate.Struct(in)
	if err == nil {
		return nil
	}

	var valErrs validator.ValidationErrors
	if !errors.As(err, &valErrs) {
		return err
	}

	errs := make(InputErrors, 0, len(valErrs))
	for _, valErr := range valErrs {
		errs = append(errs, inputError(valErr))
	}
	return errs
}

func inputError(f validator.FieldError) InputError {
	switch f.Tag() {
	case "required":
		return InputError{Field: f.Field(), Msg: "is required"}
	case "email":
		return InputError{Field: f.Field(), Msg: "must be a valid email address"}
	case "min":
		return InputError{Field: f.Field(), Msg: fmt.Sprintf("must be at least %s", f.Param())}
	case "max":
		return InputError{Field: f.Field(), Msg: fmt.Sprintf("must be at most %s", f.Param())}
	case "oneof":
		return InputError{Field: f.Field(), Msg: fmt.Sprintf("must be one of %s", f.Param())}
	default:
		return InputError{Field: f.Field(), Msg: fmt.Sprintf("invalid value tag %s", f.Tag())}
	}
}
