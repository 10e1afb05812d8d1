package failure

import (
	"errors"
	"fmt"

	"tzconv/shared/constant"
)

type Kind string

const (
	KindNotUTCSuffix               Kind = "NotUTCSuffix"
	KindInvalidTimestampFormat     Kind = "InvalidTimestampFormat"
	KindUnrecognizedZone           Kind = "UnrecognizedZone"
	KindZoneCatalogUnavailable     Kind = "ZoneCatalogUnavailable"
	KindInteractiveSelectionFailed Kind = "InteractiveSelectionFailed"
	KindInterrupted                Kind = "Interrupted"
)

// Failure is a user-facing error carrying the process exit code it should end with.
type Failure struct {
	Code    int
	Kind    Kind
	Message string
	Err     error
}

// Error returns the human-readable message.
func (e *Failure) Error() string {
	return e.Message
}

func (e *Failure) Unwrap() error {
	return e.Err
}

// NotUTCSuffix returns a Failure for a timestamp that does not end with the UTC designator.
func NotUTCSuffix(raw string) error {
	return &Failure{
		Code: constant.ExitCodeInvalidInput,
		Kind: KindNotUTCSuffix,
		Message: fmt.Sprintf("timestamp %q must be in UTC and end with %q (expected %s)",
			raw, constant.UTCDesignator, constant.InputLayout),
	}
}

// InvalidTimestampFormat returns a Failure for a timestamp that is not a valid ISO-8601 date-time.
func InvalidTimestampFormat(raw string, err error) error {
	return &Failure{
		Code:    constant.ExitCodeInvalidInput,
		Kind:    KindInvalidTimestampFormat,
		Message: fmt.Sprintf("timestamp %q is not a valid ISO-8601 date-time (expected %s)", raw, constant.InputLayout),
		Err:     err,
	}
}

// UnrecognizedZone returns a Failure for a zone the host database does not know.
// When the zone was reached through an alias, both names are reported.
func UnrecognizedZone(raw, resolved string) error {
	msg := fmt.Sprintf("unrecognized time zone %q", raw)
	if resolved != raw {
		msg = fmt.Sprintf("unrecognized time zone %q (resolved to %q)", raw, resolved)
	}

	return &Failure{
		Code:    constant.ExitCodeInvalidInput,
		Kind:    KindUnrecognizedZone,
		Message: msg,
	}
}

func ZoneCatalogUnavailable(err error) error {
	msg := "no time zones available on this system"
	if err != nil {
		msg = fmt.Sprintf("%s: %s", msg, err.Error())
	}

	return &Failure{
		Code:    constant.ExitCodeFailure,
		Kind:    KindZoneCatalogUnavailable,
		Message: msg,
		Err:     err,
	}
}

func InteractiveSelectionFailed(err error) error {
	msg := "zone selection failed"
	if err != nil {
		msg = fmt.Sprintf("%s: %s", msg, err.Error())
	}

	return &Failure{
		Code:    constant.ExitCodeFailure,
		Kind:    KindInteractiveSelectionFailed,
		Message: msg,
		Err:     err,
	}
}

// Interrupted returns a Failure for a request cancelled by a signal.
func Interrupted(err error) error {
	return &Failure{
		Code:    constant.ExitCodeInterrupted,
		Kind:    KindInterrupted,
		Message: "interrupted",
		Err:     err,
	}
}

// GetCode returns the exit code of an error interface.
func GetCode(err error) int {
	if err == nil {
		return constant.ExitCodeOK
	}

	var fail *Failure
	if errors.As(err, &fail) {
		return fail.Code
	}

	return constant.ExitCodeFailure
}

// IsKind reports whether err is a Failure of the given kind.
func IsKind(err error, kind Kind) bool {
	var fail *Failure
	if errors.As(err, &fail) {
		return fail.Kind == kind
	}

	return false
}
