// Package dag provides an immutable directed acyclic graph over opaque
// string node identifiers, built once from a static edge list and queried
// for parent/child adjacency, undirected-skeleton adjacency, and descendant
// closure.
//
// What
//
//   - New(edges, opts...) validates and freezes the graph in one step:
//   - node IDs must be non-empty
//   - self-loops are rejected
//   - duplicate directed edges collapse to one
//   - a cycle anywhere fails construction with ErrCycleDetected
//   - Queries after construction never mutate:
//   - HasNode / HasEdge: exact membership predicates
//   - Parents / Children: directed adjacency, sorted
//   - UndirectedNeighbors: adjacency in the undirected skeleton, sorted
//   - Descendants: every node reachable by one or more directed edges,
//     sorted, excluding the node itself
//
// Why
//
//	Causal-identification algorithms (path enumeration, collider
//	classification, adjustment-set derivation) need a graph snapshot whose
//	acyclicity is already certain and whose queries are safe to evaluate
//	concurrently. Immutability gives both without locks.
//
// Determinism
//
//	Nodes, Parents, Children, UndirectedNeighbors and Descendants all return
//	lexicographically sorted slices, so downstream traversals are fully
//	reproducible.
//
// Complexity (V = |Nodes|, E = |Edges|)
//
//   - New:         O(V + E) validation plus O(V log V) sorting
//   - HasNode/HasEdge: O(1)
//   - Parents/Children/UndirectedNeighbors: O(deg) copy of a precomputed slice
//   - Descendants: O(V + E) DFS per call
//
// Errors
//
//   - ErrEmptyNodeID    if an edge endpoint or declared node is "".
//   - ErrSelfLoop       if an edge connects a node to itself.
//   - ErrCycleDetected  if the directed edges admit a cycle.
//   - ErrNodeNotFound   if a query names a node outside the graph.
package dag
