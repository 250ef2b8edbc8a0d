package paths

import (
	"fmt"

	"github.com/Wenhua-Hu/causality/dag"
)

// walker encapsulates state during simple-path enumeration.
type walker struct {
	graph   *dag.DAG            // underlying graph, queried via its skeleton
	target  string              // enumeration stops when the stack reaches it
	opts    Options             // cancellation and length cap
	onStack map[string]struct{} // nodes currently on the path stack
	stack   []string            // current partial path, source first
	found   []Path              // completed source→target paths
}

// Enumerate returns every simple path between source and target in the
// undirected skeleton of d, each ordered source→target. The result order is
// deterministic (sorted neighbor exploration). An empty slice with a nil
// error means the nodes are disconnected.
func Enumerate(d *dag.DAG, source, target string, opts ...Option) ([]Path, error) {
	// 1. Validate input graph
	if d == nil {
		return nil, ErrNilDAG
	}

	// 2. Validate endpoints
	if source == target {
		return nil, ErrSameNode
	}
	if !d.HasNode(source) || !d.HasNode(target) {
		return nil, ErrNodeNotFound
	}

	// 3. Apply options
	eopts := DefaultOptions()
	for _, fn := range opts {
		fn(&eopts)
	}

	// 4. Walk
	w := &walker{
		graph:   d,
		target:  target,
		opts:    eopts,
		onStack: make(map[string]struct{}, d.NodeCount()),
		stack:   make([]string, 0, d.NodeCount()),
	}
	if err := w.extend(source); err != nil {
		return nil, err
	}

	return w.found, nil
}

// extend pushes id onto the current path and recurses into its skeleton
// neighbors, recording a snapshot whenever the target is reached.
func (w *walker) extend(id string) error {
	// 1. Cancellation check
	select {
	case <-w.opts.Ctx.Done():
		return w.opts.Ctx.Err()
	default:
	}

	// 2. Length cap: abandon branches that would exceed it
	if w.opts.MaxLen > 0 && len(w.stack)+1 > w.opts.MaxLen {
		return nil
	}

	// 3. Push onto the stack
	w.stack = append(w.stack, id)
	w.onStack[id] = struct{}{}
	defer func() {
		w.stack = w.stack[:len(w.stack)-1]
		delete(w.onStack, id)
	}()

	// 4. Target reached: snapshot the stack and backtrack
	if id == w.target {
		snapshot := make(Path, len(w.stack))
		copy(snapshot, w.stack)
		w.found = append(w.found, snapshot)

		return nil
	}

	// 5. Recurse into unvisited skeleton neighbors, sorted for determinism
	nbs, err := w.graph.UndirectedNeighbors(id)
	if err != nil {
		return fmt.Errorf("paths: UndirectedNeighbors(%q): %w", id, err)
	}
	for _, nid := range nbs {
		if _, visiting := w.onStack[nid]; visiting {
			continue // simple paths never revisit a node
		}
		if err = w.extend(nid); err != nil {
			return err
		}
	}

	return nil
}
