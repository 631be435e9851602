package commands

import (
	"errors"
	"fmt"

	"github.com/ccollicutt/logtally/pkg/parser"
)

// usageLine is printed after argument errors.
const usageLine = "Usage: logtally <log_file_path> [<level>]"

// UserError is a failure whose Message is shown to the user verbatim on
// stdout. The process exits with status 1.
type UserError struct {
	Message string
	Err     error
}

func (e *UserError) Error() string {
	return e.Message
}

// Unwrap returns the underlying cause.
func (e *UserError) Unwrap() error {
	return e.Err
}

func usageError(reason string) *UserError {
	return &UserError{Message: reason + "\n" + usageLine}
}

// loadFailure turns a parser load error into the message for its kind.
func loadFailure(path string, err error) *UserError {
	switch {
	case errors.Is(err, parser.ErrNotFound):
		return &UserError{Message: fmt.Sprintf("Error: file '%s' not found.", path), Err: err}
	case errors.Is(err, parser.ErrDecode):
		return &UserError{Message: fmt.Sprintf("Error: could not decode file '%s'. Check the encoding.", path), Err: err}
	default:
		cause := err
		var le *parser.LoadError
		if errors.As(err, &le) && le.Err != nil {
			cause = le.Err
		}
		return &UserError{Message: fmt.Sprintf("Error: could not read file. %v", cause), Err: err}
	}
}
