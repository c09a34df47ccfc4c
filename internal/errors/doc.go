// Package errors provides typed errors with exit codes for worldclock.
//
// # Error Types
//
// ClockError is the base error type. Kind is a sentinel that errors.Is
// matches against:
//
//	type ClockError struct {
//	    Code    int    // Exit code
//	    Kind    error  // ErrInvalidZone, ErrUnknownTimezone, ...
//	    Message string // User-facing message
//	    Cause   error  // Wrapped error
//	}
//
// # Exit Codes
//
//	ExitSuccess         = 0  // Success
//	ExitGeneralError    = 1  // General/unknown errors
//	ExitInvalidZone     = 2  // Zone name the tz database cannot resolve
//	ExitUnknownTimezone = 3  // Id outside the catalog
//	ExitConfigError     = 4  // Catalog file problems
//	ExitSkillNotFound   = 5  // No such embedded document
//
// # Extracting Exit Codes
//
//	if err != nil {
//	    os.Exit(errors.GetExitCode(err))
//	}
package errors
