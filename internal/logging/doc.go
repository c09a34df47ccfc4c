// Package logging provides logging utilities for worldclock.
//
// Two kinds of output live here:
//   - Diagnostic logging: structured records via slog, on stderr
//   - User output: short status lines for people at the terminal
//
// # Diagnostic Logging
//
//	logging.Info("catalog loaded", "source", path, "zones", cat.Len())
//	logging.Warn("ignoring unknown catalog keys", "source", path, "keys", keys)
//	log := logging.With("component", "ticker")
//
// Verbosity and format are chosen once by Setup, driven by the --verbose and
// --json flags. While the TUI is running, Discard keeps records from tearing
// the alternate screen.
//
// # User Output
//
//	logging.UserInfo("No skill documents embedded.")
//	logging.UserSuccess("Printed %d tables", n)
//	logging.UserWarning("--count %d is negative, watching until interrupted", n)
//
// UserInfo and UserSuccess write to stdout, UserWarning to stderr. Each line
// gets a status prefix: ℹ, ✓ or ⚠.
// Errors are not printed here; cobra reports them and main sets the exit
// code.
package logging
