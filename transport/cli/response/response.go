package response

import (
	"errors"
	"fmt"
	"io"

	"github.com/fatih/color"

	"tzconv/shared/failure"
	"tzconv/shared/logger"
)

var (
	errorTag = color.New(color.FgRed, color.Bold).SprintFunc()
	noteTag  = color.New(color.FgCyan).SprintFunc()
	tipTag   = color.New(color.FgYellow).SprintFunc()
	labelTag = color.New(color.FgGreen).SprintFunc()
)

// WithLine writes one result line: "<label>: <text>".
func WithLine(writer io.Writer, label, text string) {
	write(writer, "%s: %s\n", labelTag(label), text)
}

// WithText writes a bare line without decoration.
func WithText(writer io.Writer, text string) {
	write(writer, "%s\n", text)
}

// WithNote writes an informational note.
func WithNote(writer io.Writer, note string) {
	write(writer, "%s %s\n", noteTag("note:"), note)
}

// WithTip writes a usage hint.
func WithTip(writer io.Writer, tip string) {
	write(writer, "%s %s\n", tipTag("tip:"), tip)
}

// WithWarning writes a recoverable problem.
func WithWarning(writer io.Writer, warning string) {
	write(writer, "%s %s\n", tipTag("warning:"), warning)
}

// WithError writes err tagged as an error and returns the exit code it maps to.
// Errors that are not failures are also logged with their stack.
func WithError(writer io.Writer, err error) int {
	var fail *failure.Failure
	if !errors.As(err, &fail) {
		logger.ErrorWithStack(err)
	}

	write(writer, "%s %s\n", errorTag("error:"), err.Error())

	return failure.GetCode(err)
}

// WithLabeledError writes an error that belongs to one labelled result.
func WithLabeledError(writer io.Writer, label string, err error) {
	write(writer, "%s %s: %s\n", errorTag("error:"), label, err.Error())
}

// SetColor turns colored output on or off for every writer.
func SetColor(enabled bool) {
	color.NoColor = !enabled
}

func write(writer io.Writer, format string, args ...any) {
	if _, err := fmt.Fprintf(writer, format, args...); err != nil {
		logger.ErrorWithStack(err)
	}
}
