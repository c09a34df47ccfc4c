package errors

import (
	"errors"
	"fmt"
)

// Exit codes for worldclock
const (
	ExitSuccess         = 0
	ExitGeneralError    = 1
	ExitInvalidZone     = 2
	ExitUnknownTimezone = 3
	ExitConfigError     = 4
	ExitSkillNotFound   = 5
)

// Kinds usable with errors.Is on any *ClockError built by this package.
var (
	ErrInvalidZone     = errors.New("invalid zone")
	ErrUnknownTimezone = errors.New("unknown timezone")
	ErrConfig          = errors.New("config error")
	ErrSkillNotFound   = errors.New("skill not found")
)

// ClockError is the base error type for worldclock
type ClockError struct {
	Code    int
	Kind    error
	Message string
	Cause   error
}

func (e *ClockError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *ClockError) Unwrap() error {
	return e.Cause
}

// Is reports whether target is the kind sentinel of this error.
func (e *ClockError) Is(target error) bool {
	return e.Kind != nil && target == e.Kind
}

// ExitCode returns the exit code for this error
func (e *ClockError) ExitCode() int {
	return e.Code
}

// New creates a new ClockError
func New(code int, message string) *ClockError {
	return &ClockError{
		Code:    code,
		Message: message,
	}
}

// Wrap wraps an existing error with a ClockError
func Wrap(code int, message string, cause error) *ClockError {
	return &ClockError{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

// InvalidZoneError reports a zone identifier the zone database does not know.
func InvalidZoneError(zone string, cause error) *ClockError {
	return &ClockError{
		Code:    ExitInvalidZone,
		Kind:    ErrInvalidZone,
		Message: fmt.Sprintf("invalid zone identifier %q", zone),
		Cause:   cause,
	}
}

// UnknownTimezoneError reports a descriptor id outside the catalog.
func UnknownTimezoneError(id string) *ClockError {
	return &ClockError{
		Code:    ExitUnknownTimezone,
		Kind:    ErrUnknownTimezone,
		Message: fmt.Sprintf("unknown timezone id: %s", id),
	}
}

// ConfigError returns an error for catalog configuration issues
func ConfigError(message string, cause error) *ClockError {
	return &ClockError{
		Code:    ExitConfigError,
		Kind:    ErrConfig,
		Message: message,
		Cause:   cause,
	}
}

// SkillNotFound returns an error for a missing embedded skill document
func SkillNotFound(name string) *ClockError {
	return &ClockError{
		Code:    ExitSkillNotFound,
		Kind:    ErrSkillNotFound,
		Message: fmt.Sprintf("skill not found: %s", name),
	}
}

// ValidationError returns an error for input validation failures
func ValidationError(message string) *ClockError {
	return New(ExitGeneralError, message)
}

// GetExitCode extracts the exit code from an error
func GetExitCode(err error) int {
	var clockErr *ClockError
	if errors.As(err, &clockErr) {
		return clockErr.ExitCode()
	}
	return ExitGeneralError
}

// Is checks if an error is of a specific type
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target
func As(err error, target any) bool {
	return errors.As(err, target)
}
