// Package shell runs build commands through the host shell.
package shell

import (
	"context"
	"errors"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"go.trai.ch/anvil/internal/core/domain"
	"go.trai.ch/anvil/internal/core/ports"
	"go.trai.ch/zerr"
)

// waitDelay bounds how long an interrupted command may keep its output pipes open.
const waitDelay = 2 * time.Second

// Executor implements ports.Executor using os/exec.
type Executor struct {
	logger ports.Logger
	goos   string
	env    []string
}

// NewExecutor creates a new shell Executor.
func NewExecutor(logger ports.Logger) *Executor {
	return &Executor{
		logger: logger,
		goos:   runtime.GOOS,
		env:    os.Environ(),
	}
}

// Execute runs line through sh -c (cmd /C on Windows) and returns its exit code.
// A non-zero exit is not an error; the error is reserved for commands that could not
// be started or were interrupted.
func (e *Executor) Execute(ctx context.Context, line string, stdout, stderr io.Writer) (int, error) {
	name, args := shellCommand(e.goos, line)

	executable := name
	if e.goos != "windows" {
		lp, err := lookPath(name, e.env)
		if err != nil {
			return -1, zerr.With(zerr.Wrap(domain.ErrCommandStartFailed, err.Error()), "shell", name)
		}
		executable = lp
	}

	cmd := exec.CommandContext(ctx, executable, args...) //nolint:gosec // synthesized build command
	if len(cmd.Args) > 0 {
		cmd.Args[0] = name
	}
	cmd.Env = e.env
	cmd.Stdout = stdout
	cmd.Stderr = stderr
	cmd.WaitDelay = waitDelay

	e.logger.Debug(line)

	err := cmd.Run()
	if err == nil {
		return 0, nil
	}
	if ctxErr := ctx.Err(); ctxErr != nil {
		return -1, zerr.Wrap(ctxErr, "command interrupted")
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode(), nil
	}
	return -1, zerr.With(zerr.Wrap(domain.ErrCommandStartFailed, err.Error()), "command", line)
}

func shellCommand(goos, line string) (string, []string) {
	if goos == "windows" {
		return "cmd", []string{"/C", line}
	}
	return "sh", []string{"-c", line}
}

// lookPath searches for an executable in the directories named by the PATH entry of env.
func lookPath(file string, env []string) (string, error) {
	var path string
	for _, e := range env {
		if strings.HasPrefix(e, "PATH=") {
			path = strings.TrimPrefix(e, "PATH=")
			break
		}
	}

	if path == "" {
		return "", exec.ErrNotFound
	}

	for _, dir := range filepath.SplitList(path) {
		if dir == "" {
			// Unix shell semantics: path element "" means "."
			dir = "."
		}
		path := filepath.Join(dir, file)
		if err := findExecutable(path); err == nil {
			return path, nil
		}
	}
	return "", exec.ErrNotFound
}

func findExecutable(file string) error {
	d, err := os.Stat(file)
	if err != nil {
		return err
	}
	if m := d.Mode(); !m.IsDir() && m&0o111 != 0 {
		return nil
	}
	return os.ErrPermission
}
