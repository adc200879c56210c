// Package detector inspects the process environment to decide how output is presented.
package detector

import (
	"os"

	"golang.org/x/term"
)

var (
	isTerminal = func() bool { return term.IsTerminal(int(os.Stdout.Fd())) }
	getenv     = os.Getenv
)

// Interactive reports whether stdout is a terminal and no CI environment variable is set.
func Interactive() bool {
	ci := getenv("CI")
	isCI := ci == "true" || ci == "1"
	return isTerminal() && !isCI
}
