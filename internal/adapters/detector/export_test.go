package detector

// SetTerminal replaces the terminal check and returns a restore func.
func SetTerminal(fn func() bool) func() {
	old := isTerminal
	isTerminal = fn
	return func() { isTerminal = old }
}
