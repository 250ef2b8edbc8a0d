// Package paths defines the Path type, enumeration options, and sentinel
// errors shared by the enumerator.
package paths

import (
	"context"
	"errors"
)

var (
	// ErrNilDAG is returned when a nil *dag.DAG is passed to Enumerate.
	ErrNilDAG = errors.New("paths: dag is nil")

	// ErrNodeNotFound indicates that source or target is not in the graph.
	ErrNodeNotFound = errors.New("paths: node not found")

	// ErrSameNode indicates source and target are the same node; path
	// enumeration between a node and itself is undefined here.
	ErrSameNode = errors.New("paths: source equals target")
)

// Path is an ordered sequence of distinct node IDs forming a simple path in
// the undirected skeleton, from source to target. Immutable once returned.
type Path []string

// Option configures optional behavior of Enumerate.
type Option func(*Options)

// Options holds configurable parameters for path enumeration.
type Options struct {
	// Ctx allows cancellation or timeouts; defaults to context.Background().
	Ctx context.Context

	// MaxLen, if positive, caps the number of nodes per path. Paths that
	// would exceed the cap are abandoned, not truncated. Default 0 (no cap).
	MaxLen int
}

// DefaultOptions returns an Options struct with a background context and no
// length cap.
func DefaultOptions() Options {
	return Options{
		Ctx:    context.Background(),
		MaxLen: 0,
	}
}

// WithContext returns an Option that sets the cancellation context.
// Passing a nil context has no effect (Background is retained).
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithMaxLen returns an Option capping path length to n nodes.
// Non-positive n means no cap.
func WithMaxLen(n int) Option {
	return func(o *Options) {
		o.MaxLen = n
	}
}
