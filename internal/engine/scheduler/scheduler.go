// Package scheduler runs a build plan in two waves, compile then link.
package scheduler

import (
	"bytes"
	"context"
	"runtime"
	"sync"

	"go.trai.ch/anvil/internal/core/domain"
	"go.trai.ch/anvil/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// State is the lifecycle state of a build.
type State string

const (
	// StateIdle indicates no build has started.
	StateIdle State = "Idle"
	// StateCompiling indicates the compile wave is running.
	StateCompiling State = "Compiling"
	// StateLinking indicates the link wave is running.
	StateLinking State = "Linking"
	// StateDone indicates every command succeeded.
	StateDone State = "Done"
	// StateFailed indicates a command failed or the build was interrupted.
	StateFailed State = "Failed"
)

// Scheduler executes the commands of a plan on a bounded pool of workers.
type Scheduler struct {
	executor ports.Executor

	mu    sync.RWMutex
	state State
}

// NewScheduler creates a new Scheduler with the given executor.
func NewScheduler(executor ports.Executor) *Scheduler {
	return &Scheduler{
		executor: executor,
		state:    StateIdle,
	}
}

// State returns the state of the last build.
func (s *Scheduler) State() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

func (s *Scheduler) setState(state State) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = state
}

// Run executes the compile wave and, if it succeeds, the link wave. Results are reported
// to the renderer in submission order. The first command that exits non-zero ends the
// build with a *domain.CommandError at its own position: nothing further is dispatched,
// and commands already dispatched run to completion first. jobs <= 0 uses one worker per CPU.
func (s *Scheduler) Run(ctx context.Context, plan domain.Plan, renderer ports.Renderer, jobs int) error {
	total := plan.Len()
	if total == 0 {
		renderer.OnNothingToBuild()
		s.setState(StateDone)
		return nil
	}
	if jobs <= 0 {
		jobs = runtime.NumCPU()
	}

	s.setState(StateCompiling)
	if err := s.runWave(ctx, plan.Compile, 0, total, renderer, jobs); err != nil {
		s.setState(StateFailed)
		return err
	}

	s.setState(StateLinking)
	if err := s.runWave(ctx, plan.Link, len(plan.Compile), total, renderer, jobs); err != nil {
		s.setState(StateFailed)
		return err
	}

	s.setState(StateDone)
	return nil
}

type outcome struct {
	code    int
	output  []byte
	err     error
	skipped bool
}

// gate is closed once the link of a target has finished or will never run.
// failed is written before done is closed.
type gate struct {
	done   chan struct{}
	failed bool
}

type waveState struct {
	ctx      context.Context
	s        *Scheduler
	cmds     []domain.Command
	slots    []chan outcome
	gates    map[string]*gate
	sem      chan struct{}
	stop     chan struct{}
	stopOnce sync.Once
}

func (s *Scheduler) runWave(
	ctx context.Context,
	cmds []domain.Command,
	offset, total int,
	renderer ports.Renderer,
	jobs int,
) error {
	if len(cmds) == 0 {
		return nil
	}

	w := &waveState{
		ctx:   ctx,
		s:     s,
		cmds:  cmds,
		slots: make([]chan outcome, len(cmds)),
		gates: make(map[string]*gate, len(cmds)),
		sem:   make(chan struct{}, jobs),
		stop:  make(chan struct{}),
	}
	for i, cmd := range cmds {
		w.slots[i] = make(chan outcome, 1)
		if cmd.Phase == domain.PhaseLink {
			w.gates[cmd.Target] = &gate{done: make(chan struct{})}
		}
	}

	var g errgroup.Group
	dispatched := make(chan struct{})
	go func() {
		defer close(dispatched)
		w.dispatch(&g)
	}()

	// wait lets in-flight commands finish before returning.
	wait := func() {
		<-dispatched
		_ = g.Wait()
	}

	for i, cmd := range cmds {
		res := <-w.slots[i]
		progress := domain.Progress{Index: offset + i + 1, Total: total}

		switch {
		case res.skipped:
			wait()
			if err := ctx.Err(); err != nil {
				return zerr.Wrap(err, "build interrupted")
			}
			return zerr.With(zerr.Wrap(domain.ErrCommandFailed, "dependency failed"), "command", cmd.Describe())
		case res.err != nil:
			wait()
			return zerr.With(zerr.Wrap(res.err, "command did not run"), "command", cmd.Describe())
		case res.code != 0:
			renderer.OnCommandFailed(progress, cmd, res.code, res.output)
			wait()
			return &domain.CommandError{Progress: progress, Command: cmd, ExitCode: res.code}
		default:
			renderer.OnCommandDone(progress, cmd, res.output)
		}
	}

	wait()
	if err := ctx.Err(); err != nil {
		return zerr.Wrap(err, "build interrupted")
	}
	return nil
}

// dispatch starts commands in submission order, one per free worker slot. Once a
// command has failed or the context is done, the remaining commands are marked skipped.
// Every earlier command is already dispatched at that point and runs to completion.
func (w *waveState) dispatch(g *errgroup.Group) {
	for i := range w.cmds {
		select {
		case w.sem <- struct{}{}:
		case <-w.ctx.Done():
		}
		if w.stopped() {
			w.skipFrom(i)
			return
		}
		g.Go(func() error {
			defer func() { <-w.sem }()
			w.slots[i] <- w.execute(w.cmds[i])
			return nil
		})
	}
}

func (w *waveState) skipFrom(i int) {
	for j := i; j < len(w.cmds); j++ {
		if gt, ok := w.gates[w.cmds[j].Target]; ok && w.cmds[j].Phase == domain.PhaseLink {
			gt.failed = true
			close(gt.done)
		}
		w.slots[j] <- outcome{skipped: true}
	}
}

func (w *waveState) stopped() bool {
	if w.ctx.Err() != nil {
		return true
	}
	select {
	case <-w.stop:
		return true
	default:
		return false
	}
}

// execute runs cmd once its needs have linked. It is skipped only when a need failed
// or the context is done.
func (w *waveState) execute(cmd domain.Command) (res outcome) {
	if gt, ok := w.gates[cmd.Target]; ok && cmd.Phase == domain.PhaseLink {
		defer func() {
			gt.failed = res.skipped || res.err != nil || res.code != 0
			close(gt.done)
		}()
	}

	for _, need := range cmd.Needs {
		gt, ok := w.gates[need]
		if !ok {
			continue
		}
		select {
		case <-gt.done:
			if gt.failed {
				return outcome{skipped: true}
			}
		case <-w.ctx.Done():
			return outcome{skipped: true}
		}
	}

	var buf bytes.Buffer
	code, err := w.s.executor.Execute(w.ctx, cmd.Line, &buf, &buf)
	if err != nil || code != 0 {
		w.stopOnce.Do(func() { close(w.stop) })
	}
	return outcome{code: code, output: buf.Bytes(), err: err}
}
