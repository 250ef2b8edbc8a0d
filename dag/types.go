// Package dag declares the Edge and DAG types, sentinel errors, construction
// options, and the New constructor. Validation, including cycle detection,
// happens once inside New; every later query is read-only.
package dag

import (
	"errors"
	"sort"
)

// Sentinel errors for DAG construction and queries.
var (
	// ErrEmptyNodeID indicates an edge endpoint or declared node with an empty ID.
	ErrEmptyNodeID = errors.New("dag: node ID is empty")

	// ErrSelfLoop indicates an edge whose endpoints are the same node.
	ErrSelfLoop = errors.New("dag: self-loop not allowed")

	// ErrCycleDetected indicates the directed edge set admits a cycle.
	ErrCycleDetected = errors.New("dag: cycle detected")

	// ErrNodeNotFound indicates a query referenced a node outside the graph.
	ErrNodeNotFound = errors.New("dag: node not found")
)

// Edge is a directed edge From→To between two node identifiers.
type Edge struct {
	// From is the source node ID.
	From string

	// To is the destination node ID.
	To string
}

// Option configures DAG construction.
type Option func(*options)

// options holds construction-time settings applied before validation.
type options struct {
	nodes []string // isolated nodes declared in addition to edge endpoints
}

// WithNodes declares nodes that must exist in the DAG even when no edge
// touches them. Endpoints of edges never need declaring.
func WithNodes(ids ...string) Option {
	return func(o *options) {
		o.nodes = append(o.nodes, ids...)
	}
}

// DAG is an immutable directed acyclic graph.
//
// All fields are populated by New and never written afterwards, so a DAG
// value may be shared freely across goroutines without synchronization.
type DAG struct {
	// nodes is the sorted catalog of node IDs.
	nodes []string

	// children[u] holds the set of v with a directed edge u→v.
	children map[string]map[string]struct{}

	// parents[v] holds the set of u with a directed edge u→v.
	parents map[string]map[string]struct{}

	// edgeCount is the number of distinct directed edges stored.
	edgeCount int
}

// New builds an immutable DAG from the given edge list. Nodes are implied by
// edge endpoints; isolated nodes are declared via WithNodes. Duplicate edges
// collapse silently. Construction fails on empty IDs (ErrEmptyNodeID),
// self-loops (ErrSelfLoop), and cycles (ErrCycleDetected).
// Complexity: O(V + E) plus O(V log V) for the sorted node catalog.
func New(edges []Edge, opts ...Option) (*DAG, error) {
	// 1. Fold options
	var cfg options
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2. Allocate adjacency storage with a capacity hint
	d := &DAG{
		children: make(map[string]map[string]struct{}, len(edges)),
		parents:  make(map[string]map[string]struct{}, len(edges)),
	}
	seen := make(map[string]struct{}, len(edges)*2+len(cfg.nodes))

	// 3. Register declared isolated nodes
	var id string
	for _, id = range cfg.nodes {
		if id == "" {
			return nil, ErrEmptyNodeID
		}
		seen[id] = struct{}{}
	}

	// 4. Register edges, validating endpoints and collapsing duplicates
	var e Edge
	for _, e = range edges {
		if e.From == "" || e.To == "" {
			return nil, ErrEmptyNodeID
		}
		if e.From == e.To {
			return nil, ErrSelfLoop
		}
		seen[e.From] = struct{}{}
		seen[e.To] = struct{}{}
		if _, dup := d.children[e.From][e.To]; dup {
			continue // edges stored once
		}
		if d.children[e.From] == nil {
			d.children[e.From] = make(map[string]struct{})
		}
		if d.parents[e.To] == nil {
			d.parents[e.To] = make(map[string]struct{})
		}
		d.children[e.From][e.To] = struct{}{}
		d.parents[e.To][e.From] = struct{}{}
		d.edgeCount++
	}

	// 5. Freeze the sorted node catalog
	d.nodes = make([]string, 0, len(seen))
	for id = range seen {
		d.nodes = append(d.nodes, id)
	}
	sort.Strings(d.nodes)

	// 6. Reject cyclic edge sets before exposing the graph
	if err := d.validateAcyclic(); err != nil {
		return nil, err
	}

	return d, nil
}
