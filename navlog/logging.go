// Package navlog is a minimal logging shim for the demo CLI: a package-level
// writer defaulting to stdout, with formatted line output.
package navlog

import (
	"fmt"
	"io"
	"os"
)

var writer io.Writer = os.Stdout

// SetWriter sets the log output destination. Passing nil restores stdout.
func SetWriter(w io.Writer) {
	if w == nil {
		w = os.Stdout
	}
	writer = w
}

// Logf writes a formatted log line.
func Logf(format string, args ...any) {
	fmt.Fprintln(writer, fmt.Sprintf(format, args...))
}
