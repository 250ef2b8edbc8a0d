// Package backdoor defines the analysis record types, the per-path blocking
// Condition, identification options, and sentinel errors.
package backdoor

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// MaxCandidates bounds subset enumeration: with more eligible adjustment
// nodes than this, Identify returns ErrTooManyCandidates unless
// WithoutEnumeration is set.
const MaxCandidates = 20

var (
	// ErrNilDAG is returned when a nil *dag.DAG is passed in.
	ErrNilDAG = errors.New("backdoor: dag is nil")

	// ErrUnknownNode indicates that treatment or outcome is not in the graph.
	ErrUnknownNode = errors.New("backdoor: unknown node")

	// ErrSameNode indicates treatment and outcome are the same node;
	// identification is undefined for identical nodes.
	ErrSameNode = errors.New("backdoor: treatment equals outcome")

	// ErrInvalidPath indicates a path that is too short, visits a node
	// outside the graph, or has non-adjacent consecutive nodes.
	ErrInvalidPath = errors.New("backdoor: invalid path")

	// ErrTooManyCandidates indicates more eligible adjustment nodes than
	// MaxCandidates; use WithoutEnumeration to derive conditions only.
	ErrTooManyCandidates = errors.New("backdoor: too many candidate nodes to enumerate")
)

// PathAnalysis is the per-path record produced by AnalyzePath: one
// treatment→outcome path with its backdoor flag and interior-node labeling.
type PathAnalysis struct {
	// Nodes is the path itself, treatment first, outcome last.
	Nodes []string

	// Backdoor reports whether the first edge points into the treatment.
	Backdoor bool

	// Colliders lists interior nodes whose two path neighbors are both
	// parents in the directed graph, in path order.
	Colliders []string

	// ColliderAssociated is the sorted union of every collider with all of
	// its descendants. Conditioning on any of these opens the path.
	ColliderAssociated []string

	// NonColliders lists every interior node that is not a collider,
	// in path order.
	NonColliders []string
}

// Condition is the blocking requirement one backdoor path imposes on an
// adjustment set: include at least one of RequireOne, or (when the path has
// colliders) include none of AvoidAll.
type Condition struct {
	// Path is the backdoor path this condition blocks.
	Path []string

	// RequireOne holds the path's non-colliders, in path order.
	RequireOne []string

	// AvoidAll holds the collider-associated nodes, sorted.
	// Empty iff the path has no colliders.
	AvoidAll []string
}

// Blocked reports whether the adjustment set satisfies this condition.
// A condition with neither RequireOne nor AvoidAll (a backdoor path with no
// interior nodes) is never blocked.
func (c Condition) Blocked(set map[string]struct{}) bool {
	for _, id := range c.RequireOne {
		if _, ok := set[id]; ok {
			return true
		}
	}
	if len(c.AvoidAll) == 0 {
		return false
	}
	for _, id := range c.AvoidAll {
		if _, ok := set[id]; ok {
			return false // conditioning on a collider or its descendant opens the path
		}
	}

	return true // unconditioned colliders block by default
}

// String renders the condition in readable symbolic form.
func (c Condition) String() string {
	p := strings.Join(c.Path, "→")
	switch {
	case len(c.RequireOne) == 0 && len(c.AvoidAll) == 0:
		return fmt.Sprintf("path %s: not blockable (no interior nodes)", p)
	case len(c.AvoidAll) == 0:
		return fmt.Sprintf("path %s: adjust for at least one of {%s}", p, strings.Join(c.RequireOne, ", "))
	case len(c.RequireOne) == 0:
		return fmt.Sprintf("path %s: adjust for none of {%s}", p, strings.Join(c.AvoidAll, ", "))
	default:
		return fmt.Sprintf("path %s: adjust for at least one of {%s}, or none of {%s}",
			p, strings.Join(c.RequireOne, ", "), strings.Join(c.AvoidAll, ", "))
	}
}

// Identification is the full result of a backdoor-criterion query.
type Identification struct {
	// Treatment and Outcome echo the queried pair.
	Treatment string
	Outcome   string

	// TreatmentDescendants is the sorted inclusive descendant closure of the
	// treatment (the treatment itself plus every node it can reach).
	TreatmentDescendants []string

	// Paths holds every simple treatment–outcome path with its labeling,
	// backdoor and causal alike.
	Paths []PathAnalysis

	// BackdoorPaths is the backdoor subset of Paths, in the same order.
	BackdoorPaths []PathAnalysis

	// Conditions holds one blocking condition per backdoor path.
	Conditions []Condition

	// Candidates is the sorted pool of eligible adjustment nodes: every node
	// except the treatment, the outcome, and the treatment's descendants.
	Candidates []string

	// ValidSets lists every subset of Candidates satisfying all Conditions,
	// ordered by size then lexicographically. Nil when enumeration was
	// skipped; may legitimately contain the empty set.
	ValidSets [][]string

	// MinimalSets holds the valid sets with no valid proper subset.
	MinimalSets [][]string

	// MaximalSets holds the valid sets with no valid proper superset.
	MaximalSets [][]string

	// Identifiable reports whether at least one valid adjustment set exists.
	// When enumeration was skipped it is a screen only: false means provably
	// unidentifiable (some backdoor path cannot be blocked by any candidate),
	// true means not ruled out.
	Identifiable bool
}

// ConditionString joins the per-path conditions into the conjunction an
// adjustment set must satisfy.
func (r *Identification) ConditionString() string {
	if len(r.Conditions) == 0 {
		return "no backdoor paths: the empty set satisfies the backdoor criterion"
	}
	parts := make([]string, len(r.Conditions))
	for i, c := range r.Conditions {
		parts[i] = c.String()
	}

	return strings.Join(parts, "; and ")
}

// Option configures optional behavior of Identify.
type Option func(*Options)

// Options holds configurable parameters for identification.
type Options struct {
	// Ctx allows cancellation; it is threaded through path enumeration.
	// Defaults to context.Background().
	Ctx context.Context

	// Enumerate controls whether valid adjustment sets are enumerated.
	// Default true; disable via WithoutEnumeration for large graphs.
	Enumerate bool
}

// DefaultOptions returns an Options struct with a background context and
// subset enumeration enabled.
func DefaultOptions() Options {
	return Options{
		Ctx:       context.Background(),
		Enumerate: true,
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

// WithoutEnumeration returns an Option that skips subset enumeration,
// leaving ValidSets, MinimalSets and MaximalSets nil. Identify then derives
// only the symbolic Conditions.
func WithoutEnumeration() Option {
	return func(o *Options) {
		o.Enumerate = false
	}
}
