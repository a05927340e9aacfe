package hwdbcheck

import "errors"

// Sentinel errors for common failure scenarios.
// These enable callers to distinguish error types using errors.Is().
var (
	// ErrInvalidConfig indicates the provided configuration is invalid.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrNoInputFiles indicates that no hwdb files were given and the
	// default glob matched nothing.
	ErrNoInputFiles = errors.New("no input files")

	// ErrValidationFailed indicates that at least one finding was
	// recorded across the run. The findings themselves are reported
	// through the run report, not through this error.
	ErrValidationFailed = errors.New("validation failed")
)

// ExitCodeForError returns the appropriate exit code for an error.
// Returns ExitSuccess (0) for nil errors, semantic codes for known errors,
// and ExitGeneralError (1) for unclassified errors.
func ExitCodeForError(err error) int {
	if err == nil {
		return ExitSuccess
	}
	switch {
	case errors.Is(err, ErrInvalidConfig):
		return ExitConfigError
	case errors.Is(err, ErrNoInputFiles):
		return ExitConfigError
	case errors.Is(err, ErrValidationFailed):
		return ExitGeneralError
	}
	return ExitGeneralError
}
