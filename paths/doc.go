// Package paths enumerates every simple path between two nodes of a dag.DAG
// over its undirected skeleton, the traversal that backdoor-criterion
// reasoning is built on.
//
// What
//
//   - Enumerate(d, source, target, opts...) returns all simple paths
//     (no repeated nodes) connecting source and target, where an edge u→v
//     or v→u makes u and v adjacent.
//   - Each path is an ordered node sequence starting at source and ending
//     at target. Neighbor exploration is sorted, so the path list order is
//     reproducible run to run.
//   - An empty result is a valid answer, not an error: it means the two
//     nodes are disconnected in the skeleton.
//
// Why
//
//	The backdoor criterion quantifies over every undirected connection
//	between treatment and outcome. Directed traversal misses the
//	"into-the-treatment" paths that matter most, so enumeration runs on the
//	skeleton and leaves edge orientation to the classifier.
//
// Termination
//
//	A path never revisits a node, so its length is bounded by the node
//	count; enumeration terminates on any finite graph. The path count is
//	exponential in dense graphs, which is acceptable at teaching scale.
//	Use WithMaxLen to cap path length, or WithContext to cancel.
//
// Complexity (V = |Nodes|, P = number of simple paths)
//
//   - Time:   O(P · V) in the worst case (each emitted path is copied)
//   - Memory: O(V) for the recursion stack plus O(P · V) for results
//
// Options
//
//   - WithContext(ctx)  cancellation between recursion steps.
//   - WithMaxLen(n)     drop paths longer than n nodes (0 = unbounded).
//
// Errors
//
//   - ErrNilDAG        if the graph pointer is nil.
//   - ErrNodeNotFound  if source or target is not in the graph.
//   - ErrSameNode      if source equals target.
//   - context.Canceled (or the context's error) if cancelled mid-walk.
package paths
