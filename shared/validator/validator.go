package validator

import (
	"errors"

	val "github.com/go-playground/validator/v10"
)

var validate *val.Validate

func init() {
	validate = val.New(val.WithRequiredStructEnabled())
}

// ValidateVar checks a single value against a validator tag such as "required,timezone".
// https://github.com/go-playground/validator
func ValidateVar(field any, tag string) error {
	err := validate.Var(field, tag)

	if err != nil {
		return errors.New(message(err))
	}

	return nil
}

// IsTimeZone reports whether name loads from the host zone database.
// The empty string and "Local" are rejected even though time.LoadLocation accepts them.
func IsTimeZone(name string) bool {
	return ValidateVar(name, "required,printascii,max=255,timezone") == nil
}
