package logging

import (
	"fmt"
	"io"
	"os"
)

// Destinations for user-facing output. Tests swap them with SetUserOutput.
var (
	stdout io.Writer = os.Stdout
	stderr io.Writer = os.Stderr
)

// SetUserOutput redirects user-facing output. Nil arguments restore the
// process stdout and stderr.
func SetUserOutput(out, errOut io.Writer) {
	if out == nil {
		out = os.Stdout
	}
	if errOut == nil {
		errOut = os.Stderr
	}
	stdout, stderr = out, errOut
}

// UserInfo prints an info message to stdout.
func UserInfo(format string, args ...interface{}) {
	fmt.Fprintf(stdout, "ℹ "+format+"\n", args...)
}

// UserSuccess prints a success message to stdout.
func UserSuccess(format string, args ...interface{}) {
	fmt.Fprintf(stdout, "✓ "+format+"\n", args...)
}

// UserWarning prints a warning message to stderr.
func UserWarning(format string, args ...interface{}) {
	fmt.Fprintf(stderr, "⚠ "+format+"\n", args...)
}
