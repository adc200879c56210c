package compiler

import "context"

// SetLookPath replaces the PATH lookup.
// This is exported for testing purposes only.
func (r *Resolver) SetLookPath(fn func(string) (string, error)) {
	r.lookPath = fn
}

// SetBanner replaces the --version probe.
// This is exported for testing purposes only.
func (r *Resolver) SetBanner(fn func(ctx context.Context, path string) (string, error)) {
	r.banner = fn
}
