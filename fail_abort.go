//go:build debug && !exdebug

package gcontract

import (
	"fmt"
	"os"
)

// fail reports v on stderr and terminates the process.
// This is the default failure mode; no recovery is possible.
// Build with the additional exdebug tag to panic instead.
func fail(v Violation) {
	fmt.Fprintf(os.Stderr, "*** assertion failed at %s:%d\n%s\n", v.File, v.Line, v.Message)
	os.Exit(1)
}
