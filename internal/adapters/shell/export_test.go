package shell

// ShellCommand exposes shellCommand for testing.
var ShellCommand = shellCommand

// LookPath exposes lookPath for testing.
var LookPath = lookPath

// SetEnv replaces the environment passed to commands.
// This is exported for testing purposes only.
func (e *Executor) SetEnv(env []string) {
	e.env = env
}
