package domain

import (
	"fmt"
	"math"
)

// Phase is the wave a command runs in.
type Phase uint8

const (
	// PhaseCompile turns one source file into one object file.
	PhaseCompile Phase = iota
	// PhaseLink archives or links the objects of one target.
	PhaseLink
)

func (p Phase) String() string {
	if p == PhaseLink {
		return "link"
	}
	return "compile"
}

// Command is a single shell command produced for the build.
type Command struct {
	Phase  Phase
	Target string
	// Label names the unit in progress output: the object file for compiles, the target for links.
	Label string
	// Line is the full shell command line.
	Line string
	// Needs lists targets whose link command must finish first. Only used in the link wave.
	Needs []string
}

// Describe returns the progress verb and label, e.g. "Building a.cpp.o" or "Linking app".
func (c Command) Describe() string {
	if c.Phase == PhaseLink {
		return "Linking " + c.Label
	}
	return "Building " + c.Label
}

// Plan is the ordered set of commands for one build.
type Plan struct {
	Compile []Command
	Link    []Command
	// Sources lists the source files compiled, parallel to Compile.
	Sources []string
	// Fingerprints holds the command fingerprint of every target in the build order.
	Fingerprints map[string]string
}

// Len returns the total number of commands.
func (p Plan) Len() int {
	return len(p.Compile) + len(p.Link)
}

// Empty reports whether there is nothing to run.
func (p Plan) Empty() bool {
	return p.Len() == 0
}

// Progress is the position of a command in the whole build.
type Progress struct {
	// Index is 1-based.
	Index int
	Total int
}

// Percent returns the completion percentage rounded to the nearest integer.
func (p Progress) Percent() int {
	if p.Total <= 0 {
		return 0
	}
	return int(math.Round(float64(p.Index) / float64(p.Total) * 100))
}

func (p Progress) String() string {
	return fmt.Sprintf("[%d/%d|%d%%]", p.Index, p.Total, p.Percent())
}

// CommandError reports a command that exited with a non-zero status.
type CommandError struct {
	Progress Progress
	Command  Command
	ExitCode int
}

func (e *CommandError) Error() string {
	return fmt.Sprintf("%s %s exited with code %d", e.Progress, e.Command.Describe(), e.ExitCode)
}

// Unwrap makes CommandError match ErrCommandFailed.
func (e *CommandError) Unwrap() error {
	return ErrCommandFailed
}
