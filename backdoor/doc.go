// Package backdoor implements backdoor-criterion identification over a
// dag.DAG: per-path collider classification, backdoor-path filtering, and
// derivation of every valid covariate-adjustment set for a treatment/outcome
// pair.
//
// What
//
//   - AnalyzePath(d, path) labels one undirected path:
//   - Backdoor: the first edge points into the treatment (path[1]→path[0])
//   - Colliders: interior nodes whose two path neighbors are both parents
//   - ColliderAssociated: each collider together with all its descendants;
//     conditioning on any of these opens the path instead of blocking it
//   - NonColliders: every other interior node
//   - Identify(d, treatment, outcome, opts...) runs the full pipeline:
//     enumerate simple paths, analyze each, keep the backdoor ones, derive a
//     per-path blocking Condition, and enumerate every subset of eligible
//     nodes that satisfies the conjunction, plus its minimal and maximal
//     representatives.
//
// Blocking rule (per backdoor path)
//
//	An adjustment set blocks a path when it contains at least one of the
//	path's non-colliders, or, if the path has colliders, when it contains
//	none of the collider-associated nodes (an unconditioned collider already
//	blocks). A backdoor path with no interior nodes cannot be blocked at
//	all, which makes the query unidentifiable via this criterion.
//
// Eligibility
//
//	Candidate adjustment nodes exclude the treatment, the outcome, and
//	every descendant of the treatment. Exceeding MaxCandidates eligible
//	nodes fails subset enumeration with ErrTooManyCandidates; pass
//	WithoutEnumeration to derive only the symbolic conditions.
//
// Results, not errors
//
//   - No backdoor paths: the empty set trivially satisfies the criterion,
//     so Identifiable is true and ValidSets contains {}.
//   - No satisfying subset: Identifiable is false with a nil error; the
//     caller may fall back to other identification strategies (front-door,
//     instrumental variables) outside this package's scope.
//
// Complexity (V = |Nodes|, P = simple paths, k = eligible candidates)
//
//   - AnalyzePath: O(len(path) · V) worst case (descendant closures)
//   - Identify:    O(P · V) analysis plus O(2^k · P) subset enumeration
//
// Errors
//
//   - ErrNilDAG            if the graph pointer is nil.
//   - ErrUnknownNode       if treatment or outcome is not in the graph.
//   - ErrSameNode          if treatment equals outcome.
//   - ErrInvalidPath       if AnalyzePath receives a malformed path.
//   - ErrTooManyCandidates if subset enumeration would be intractable.
package backdoor
