package validator

import (
	"errors"
	"strings"

	val "github.com/go-playground/validator/v10"
)

var (
	messages = map[string]string{
		"required":   "{field} is required",
		"timezone":   "{field} must be a time zone known to the host database",
		"max":        "{field} must be at most {param} characters",
		"printascii": "{field} must contain printable ASCII only",
	}
)

func message(err error) string {
	var valErrors val.ValidationErrors

	if errors.As(err, &valErrors) {
		for _, valErr := range valErrors {
			field := valErr.Field()
			if field == "" {
				field = "value"
			}

			errStr := messages[valErr.Tag()]
			if errStr != "" {
				errStr = strings.ReplaceAll(errStr, "{field}", field)
				errStr = strings.ReplaceAll(errStr, "{param}", valErr.Param())

				return errStr
			}
		}

		return valErrors.Error()
	}

	return err.Error()
}
