// Package linear provides a synchronous, line-buffered progress renderer.
package linear

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/muesli/termenv"
	"go.trai.ch/anvil/internal/core/domain"
	"go.trai.ch/anvil/internal/ui/output"
	"go.trai.ch/anvil/internal/ui/style"
)

// Renderer implements ports.Renderer. It prints one progress line per command
// followed by whatever the command wrote.
type Renderer struct {
	stdout io.Writer
	stderr io.Writer
	out    *termenv.Output
	errOut *termenv.Output

	mu sync.Mutex
}

// NewRenderer creates a new Renderer. A nil profile uses the basic ANSI profile
// unless NO_COLOR is set.
func NewRenderer(stdout, stderr io.Writer, profile func() termenv.Profile) *Renderer {
	if stdout == nil {
		stdout = os.Stdout
	}
	if stderr == nil {
		stderr = os.Stderr
	}
	if profile == nil {
		profile = output.ColorProfileANSI
	}

	return &Renderer{
		stdout: stdout,
		stderr: stderr,
		out:    output.NewWithProfile(stdout, profile),
		errOut: output.NewWithProfile(stderr, profile),
	}
}

// OnNothingToBuild prints the up-to-date message.
func (r *Renderer) OnNothingToBuild() {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, _ = fmt.Fprintln(r.stdout, r.out.String("Nothing to build.").Faint().String())
}

// OnCommandDone prints the progress line of a finished command and its output.
func (r *Renderer) OnCommandDone(p domain.Progress, cmd domain.Command, out []byte) {
	r.mu.Lock()
	defer r.mu.Unlock()

	color := termenv.ANSIGreen
	if cmd.Phase == domain.PhaseLink {
		color = termenv.ANSIBlue
	}
	line := r.out.String(p.String() + " " + cmd.Describe()).Foreground(color).Bold().String()
	_, _ = fmt.Fprintln(r.stdout, line)
	r.printOutputLocked(r.stdout, out)
}

// OnCommandFailed prints the failing unit with its position, the command line and its output.
func (r *Renderer) OnCommandFailed(p domain.Progress, cmd domain.Command, exitCode int, out []byte) {
	r.mu.Lock()
	defer r.mu.Unlock()

	head := r.errOut.String(fmt.Sprintf("%s %s %s failed (exit code %d)",
		p, style.Cross, cmd.Describe(), exitCode)).Foreground(termenv.ANSIRed).Bold().String()
	_, _ = fmt.Fprintln(r.stderr, head)
	_, _ = fmt.Fprintln(r.stderr, r.errOut.String(cmd.Line).Faint().String())
	r.printOutputLocked(r.stderr, out)
}

// printOutputLocked writes command output, terminating a trailing partial line.
// Must be called with r.mu held.
func (r *Renderer) printOutputLocked(w io.Writer, out []byte) {
	out = bytes.TrimRight(out, "\r\n")
	if len(out) == 0 {
		return
	}
	_, _ = w.Write(out)
	_, _ = io.WriteString(w, "\n")
}
