package dag

import "sort"

// HasNode reports whether id is a node of the graph.
// Complexity: O(log V)
func (d *DAG) HasNode(id string) bool {
	i := sort.SearchStrings(d.nodes, id)

	return i < len(d.nodes) && d.nodes[i] == id
}

// HasEdge reports whether the directed edge from→to exists.
// Complexity: O(1)
func (d *DAG) HasEdge(from, to string) bool {
	_, ok := d.children[from][to]

	return ok
}

// Nodes returns the sorted catalog of node IDs. The returned slice is a copy.
// Complexity: O(V)
func (d *DAG) Nodes() []string {
	out := make([]string, len(d.nodes))
	copy(out, d.nodes)

	return out
}

// NodeCount returns the number of nodes.
func (d *DAG) NodeCount() int {
	return len(d.nodes)
}

// EdgeCount returns the number of distinct directed edges.
func (d *DAG) EdgeCount() int {
	return d.edgeCount
}

// Parents returns the sorted IDs of nodes with a directed edge into id.
// Returns ErrNodeNotFound if id is not in the graph.
// Complexity: O(deg log deg)
func (d *DAG) Parents(id string) ([]string, error) {
	if !d.HasNode(id) {
		return nil, ErrNodeNotFound
	}

	return sortedKeys(d.parents[id]), nil
}

// Children returns the sorted IDs of nodes reached by a directed edge from id.
// Returns ErrNodeNotFound if id is not in the graph.
// Complexity: O(deg log deg)
func (d *DAG) Children(id string) ([]string, error) {
	if !d.HasNode(id) {
		return nil, ErrNodeNotFound
	}

	return sortedKeys(d.children[id]), nil
}

// UndirectedNeighbors returns the sorted IDs adjacent to id in the
// undirected skeleton: every u with an edge u→id or id→u.
// Returns ErrNodeNotFound if id is not in the graph.
// Complexity: O(deg log deg)
func (d *DAG) UndirectedNeighbors(id string) ([]string, error) {
	if !d.HasNode(id) {
		return nil, ErrNodeNotFound
	}
	merged := make(map[string]struct{}, len(d.parents[id])+len(d.children[id]))
	for u := range d.parents[id] {
		merged[u] = struct{}{}
	}
	for u := range d.children[id] {
		merged[u] = struct{}{}
	}

	return sortedKeys(merged), nil
}

// Descendants returns the sorted IDs of every node reachable from id via one
// or more directed edges, excluding id itself. Callers needing the inclusive
// closure union id back in.
// Returns ErrNodeNotFound if id is not in the graph.
// Complexity: O(V + E) time, O(V) memory.
func (d *DAG) Descendants(id string) ([]string, error) {
	if !d.HasNode(id) {
		return nil, ErrNodeNotFound
	}
	reached := make(map[string]struct{})
	d.collectDescendants(id, reached)

	return sortedKeys(reached), nil
}

// collectDescendants accumulates all children of id transitively into reached.
// Termination is guaranteed because New rejected cyclic edge sets.
func (d *DAG) collectDescendants(id string, reached map[string]struct{}) {
	for child := range d.children[id] {
		if _, done := reached[child]; done {
			continue
		}
		reached[child] = struct{}{}
		d.collectDescendants(child, reached)
	}
}

// sortedKeys copies the keys of set into a lexicographically sorted slice.
func sortedKeys(set map[string]struct{}) []string {
	out := make([]string, 0, len(set))
	for id := range set {
		out = append(out, id)
	}
	sort.Strings(out)

	return out
}
