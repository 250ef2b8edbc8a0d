package dag

// Visitation states for cycle detection.
const (
	white = iota // white: not visited yet
	gray         // gray: on the recursion stack
	black        // black: fully explored
)

// validateAcyclic runs a three-color DFS over every node and returns
// ErrCycleDetected on the first back-edge. Called exactly once, from New.
// Complexity: O(V + E) time, O(V) memory.
func (d *DAG) validateAcyclic() error {
	state := make(map[string]int, len(d.nodes))
	for _, id := range d.nodes {
		if state[id] == white {
			if err := d.visit(id, state); err != nil {
				return err
			}
		}
	}

	return nil
}

// visit explores id depth-first, marking states and detecting back-edges.
func (d *DAG) visit(id string, state map[string]int) error {
	// 1. A gray node on the stack means a back-edge
	if state[id] == gray {
		return ErrCycleDetected
	}
	// 2. Black nodes are already fully explored
	if state[id] == black {
		return nil
	}
	// 3. Mark in-progress and recurse into children
	state[id] = gray
	for child := range d.children[id] {
		if err := d.visit(child, state); err != nil {
			return err
		}
	}
	// 4. Mark fully explored
	state[id] = black

	return nil
}
