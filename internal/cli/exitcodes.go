package cli

import "errors"

// Exit codes for gosmell.
const (
	// ExitSuccess indicates the report was rendered and holds no smells.
	ExitSuccess = 0

	// ExitError indicates the command failed.
	ExitError = 1

	// ExitSmellsFound indicates the report was rendered and holds smells.
	ExitSmellsFound = 2
)

// ErrSmellsFound is returned when the rendered report contains warnings.
// It signals the exit code and is not logged.
var ErrSmellsFound = errors.New("smells found")

// ExitCodeFor maps a command error to the process exit code.
func ExitCodeFor(err error) int {
	switch {
	case err == nil:
		return ExitSuccess
	case errors.Is(err, ErrSmellsFound):
		return ExitSmellsFound
	default:
		return ExitError
	}
}
