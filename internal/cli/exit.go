package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/ppiankov/casecalc/internal/model"
)

// Process exit codes
const (
	ExitOK      = 0 // active, warning, pending, or damages estimated
	ExitUrgent  = 1 // urgent or critical deadline, or invalid input
	ExitExpired = 2 // deadline has passed
)

// ExitError carries a non-zero exit code out of a command. A nil Err means
// the command succeeded and already printed its output.
type ExitError struct {
	Code int
	Err  error
}

func (e *ExitError) Error() string {
	if e.Err == nil {
		return ""
	}
	return e.Err.Error()
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

// ExitCode maps a command error to a process exit code
func ExitCode(err error) int {
	if err == nil {
		return ExitOK
	}
	var ee *ExitError
	if errors.As(err, &ee) {
		return ee.Code
	}
	return ExitUrgent
}

// UrgencyExitCode maps a deadline urgency to an exit code
func UrgencyExitCode(u model.Urgency) int {
	switch u {
	case model.UrgencyExpired:
		return ExitExpired
	case model.UrgencyCritical, model.UrgencyUrgent:
		return ExitUrgent
	default:
		return ExitOK
	}
}

// statusError wraps an urgency in an ExitError, or returns nil for exit 0
func statusError(u model.Urgency) error {
	if code := UrgencyExitCode(u); code != ExitOK {
		return &ExitError{Code: code}
	}
	return nil
}

// PrintError writes err and the disclaimer block to w. Errors that only carry
// an exit code print nothing; their command already rendered a report.
func PrintError(w io.Writer, err error) {
	if err == nil || err.Error() == "" {
		return
	}
	fmt.Fprintf(w, "Error: %v\n\n", err)
	for _, line := range model.Disclaimer {
		fmt.Fprintln(w, line)
	}
}
