// Package compiler locates and identifies the host C++ compiler.
package compiler

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"regexp"
	"strings"

	"go.trai.ch/anvil/internal/core/domain"
	"go.trai.ch/anvil/internal/core/ports"
	"go.trai.ch/zerr"
)

// Candidates are tried in order when neither an override nor a cached path is usable.
var Candidates = []string{"clang++", "g++", "cl.exe"}

var (
	clangVersion = regexp.MustCompile(`clang version (\d+(?:\.\d+)*)`)
	gccVersion   = regexp.MustCompile(`(?:g\+\+|GCC|gcc).*?\s(\d+\.\d+(?:\.\d+)?)`)
	msvcVersion  = regexp.MustCompile(`Microsoft.*Version (\d+(?:\.\d+)*)`)
)

// Resolver implements ports.CompilerResolver by searching PATH.
type Resolver struct {
	logger     ports.Logger
	lookPath   func(string) (string, error)
	banner     func(ctx context.Context, path string) (string, error)
	candidates []string
}

// NewResolver creates a Resolver over the system PATH.
func NewResolver(logger ports.Logger) *Resolver {
	return &Resolver{
		logger:     logger,
		lookPath:   exec.LookPath,
		banner:     versionBanner,
		candidates: Candidates,
	}
}

// Resolve returns the compiler to use. An explicit preferred compiler must exist; a cached
// path is reused only while it still exists; otherwise the candidates are searched.
func (r *Resolver) Resolve(ctx context.Context, preferred, cached string) (domain.Compiler, error) {
	path, err := r.locate(preferred, cached)
	if err != nil {
		return domain.Compiler{}, err
	}

	c := domain.Compiler{Path: path, Family: domain.FamilyUnknown}
	banner, err := r.banner(ctx, path)
	if err != nil {
		r.logger.Debug(fmt.Sprintf("could not identify %s: %v", path, err))
		return c, nil
	}
	c.Family, c.Version = Identify(banner)
	return c, nil
}

func (r *Resolver) locate(preferred, cached string) (string, error) {
	if preferred != "" {
		path, err := r.lookPath(preferred)
		if err != nil {
			return "", zerr.With(zerr.Wrap(domain.ErrNoCompiler, err.Error()), "compiler", preferred)
		}
		return path, nil
	}

	if cached != "" {
		if path, err := r.lookPath(cached); err == nil {
			return path, nil
		}
		r.logger.Debug(fmt.Sprintf("cached compiler %s is gone, searching again", cached))
	}

	for _, name := range r.candidates {
		if path, err := r.lookPath(name); err == nil {
			return path, nil
		}
	}
	return "", zerr.With(
		zerr.Wrap(domain.ErrNoCompiler, "no C++ compiler on PATH"),
		"searched", strings.Join(r.candidates, ", "),
	)
}

// Identify extracts the compiler family and version from a --version banner.
func Identify(banner string) (domain.CompilerFamily, string) {
	switch {
	case strings.Contains(banner, "clang version"):
		if m := clangVersion.FindStringSubmatch(banner); m != nil {
			return domain.FamilyClang, m[1]
		}
		return domain.FamilyClang, ""
	case strings.Contains(banner, "Microsoft"):
		if m := msvcVersion.FindStringSubmatch(banner); m != nil {
			return domain.FamilyMSVC, m[1]
		}
		return domain.FamilyMSVC, ""
	case strings.Contains(banner, "Free Software Foundation"), strings.Contains(banner, "GCC"):
		firstLine, _, _ := strings.Cut(banner, "\n")
		if m := gccVersion.FindStringSubmatch(firstLine); m != nil {
			return domain.FamilyGCC, m[1]
		}
		return domain.FamilyGCC, ""
	default:
		return domain.FamilyUnknown, ""
	}
}

func versionBanner(ctx context.Context, path string) (string, error) {
	var out bytes.Buffer
	cmd := exec.CommandContext(ctx, path, "--version") //nolint:gosec // compiler path from PATH lookup
	cmd.Stdout = &out
	cmd.Stderr = &out
	if err := cmd.Run(); err != nil {
		return "", err
	}
	return out.String(), nil
}
