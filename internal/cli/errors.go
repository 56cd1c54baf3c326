package cli

import "fmt"

// Exit codes used by casedesk commands.
const (
	ExitCodeError   = 1
	ExitCodeInvalid = 2
)

// ExitError carries a specific process exit code out of a command.
type ExitError struct {
	ExitCode int
	Reason   string
}

func (e *ExitError) Error() string {
	return e.Reason
}

// invalidCaseError reports a case file that failed validation.
func invalidCaseError(path string, err error) *ExitError {
	return &ExitError{
		ExitCode: ExitCodeInvalid,
		Reason:   fmt.Sprintf("case file %s is invalid: %v", path, err),
	}
}
