package backdoor

import (
	"fmt"
	"sort"

	"github.com/Wenhua-Hu/causality/dag"
)

// AnalyzePath classifies one treatment–outcome path against the directed
// graph: backdoor or not, and collider / non-collider for every interior
// node. It is a pure function of (d, path); repeated calls on an unchanged
// graph return identical records.
//
// A node at interior position i is a collider iff both path neighbors are
// its parents: d.HasEdge(path[i-1], path[i]) and d.HasEdge(path[i+1], path[i]).
// The collider-associated set unions each collider with all its descendants
// (inclusive closure), since conditioning on any of them opens the path.
//
// Returns ErrNilDAG for a nil graph and ErrInvalidPath for paths with fewer
// than two nodes, nodes outside the graph, or non-adjacent consecutive nodes.
func AnalyzePath(d *dag.DAG, path []string) (PathAnalysis, error) {
	// 1. Validate inputs
	if d == nil {
		return PathAnalysis{}, ErrNilDAG
	}
	if len(path) < 2 {
		return PathAnalysis{}, fmt.Errorf("%w: need at least two nodes, got %d", ErrInvalidPath, len(path))
	}
	for _, id := range path {
		if !d.HasNode(id) {
			return PathAnalysis{}, fmt.Errorf("%w: node %q not in graph", ErrInvalidPath, id)
		}
	}
	for i := 0; i+1 < len(path); i++ {
		if !d.HasEdge(path[i], path[i+1]) && !d.HasEdge(path[i+1], path[i]) {
			return PathAnalysis{}, fmt.Errorf("%w: %q and %q are not adjacent", ErrInvalidPath, path[i], path[i+1])
		}
	}

	// 2. Snapshot the path
	rec := PathAnalysis{Nodes: make([]string, len(path))}
	copy(rec.Nodes, path)

	// 3. Backdoor filter: first edge must point into the treatment
	rec.Backdoor = d.HasEdge(path[1], path[0])

	// 4. Classify interior nodes
	associated := make(map[string]struct{})
	for i := 1; i+1 < len(path); i++ {
		cur := path[i]
		if d.HasEdge(path[i-1], cur) && d.HasEdge(path[i+1], cur) {
			rec.Colliders = append(rec.Colliders, cur)
			// Inclusive closure: the collider itself plus its descendants.
			associated[cur] = struct{}{}
			desc, err := d.Descendants(cur)
			if err != nil {
				return PathAnalysis{}, fmt.Errorf("backdoor: Descendants(%q): %w", cur, err)
			}
			for _, id := range desc {
				associated[id] = struct{}{}
			}
			continue
		}
		rec.NonColliders = append(rec.NonColliders, cur)
	}

	// 5. Sort the associated union for deterministic output
	if len(associated) > 0 {
		rec.ColliderAssociated = make([]string, 0, len(associated))
		for id := range associated {
			rec.ColliderAssociated = append(rec.ColliderAssociated, id)
		}
		sort.Strings(rec.ColliderAssociated)
	}

	return rec, nil
}

// condition derives the blocking requirement this path imposes on an
// adjustment set. Only meaningful for backdoor paths.
func (a PathAnalysis) condition() Condition {
	return Condition{
		Path:       a.Nodes,
		RequireOne: a.NonColliders,
		AvoidAll:   a.ColliderAssociated,
	}
}
