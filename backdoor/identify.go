package backdoor

import (
	"fmt"
	"sort"

	"github.com/Wenhua-Hu/causality/dag"
	"github.com/Wenhua-Hu/causality/paths"
)

// Identify runs the full backdoor-criterion pipeline for a treatment/outcome
// pair: enumerate every simple treatment–outcome path, analyze and partition
// them, derive one blocking Condition per backdoor path, and enumerate the
// subsets of eligible nodes that satisfy the conjunction.
//
// An unidentifiable query (no subset blocks every backdoor path) is a
// result, not an error: Identifiable is false and the error is nil.
func Identify(d *dag.DAG, treatment, outcome string, opts ...Option) (*Identification, error) {
	// 1. Validate inputs
	if d == nil {
		return nil, ErrNilDAG
	}
	if treatment == outcome {
		return nil, fmt.Errorf("%w: %q", ErrSameNode, treatment)
	}
	if !d.HasNode(treatment) {
		return nil, fmt.Errorf("%w: treatment %q", ErrUnknownNode, treatment)
	}
	if !d.HasNode(outcome) {
		return nil, fmt.Errorf("%w: outcome %q", ErrUnknownNode, outcome)
	}

	// 2. Apply options
	iopts := DefaultOptions()
	for _, fn := range opts {
		fn(&iopts)
	}

	res := &Identification{Treatment: treatment, Outcome: outcome}

	// 3. Inclusive descendant closure of the treatment
	desc, err := d.Descendants(treatment)
	if err != nil {
		return nil, fmt.Errorf("backdoor: Descendants(%q): %w", treatment, err)
	}
	res.TreatmentDescendants = append(desc, treatment)
	sort.Strings(res.TreatmentDescendants)

	// 4. Enumerate and analyze every simple path
	found, err := paths.Enumerate(d, treatment, outcome, paths.WithContext(iopts.Ctx))
	if err != nil {
		return nil, fmt.Errorf("backdoor: enumerate paths: %w", err)
	}
	for _, p := range found {
		rec, aerr := AnalyzePath(d, p)
		if aerr != nil {
			return nil, aerr
		}
		res.Paths = append(res.Paths, rec)
		if rec.Backdoor {
			res.BackdoorPaths = append(res.BackdoorPaths, rec)
			res.Conditions = append(res.Conditions, rec.condition())
		}
	}

	// 5. Eligible candidates: every node except treatment, outcome, and the
	//    treatment's descendants
	excluded := make(map[string]struct{}, len(res.TreatmentDescendants)+1)
	for _, id := range res.TreatmentDescendants {
		excluded[id] = struct{}{}
	}
	excluded[outcome] = struct{}{}
	for _, id := range d.Nodes() {
		if _, out := excluded[id]; !out {
			res.Candidates = append(res.Candidates, id)
		}
	}

	// 6. Enumerate satisfying subsets, or screen without enumerating
	if !iopts.Enumerate {
		res.Identifiable = screen(res.Conditions, res.Candidates)

		return res, nil
	}
	if len(res.Candidates) > MaxCandidates {
		return nil, fmt.Errorf("%w: %d eligible nodes", ErrTooManyCandidates, len(res.Candidates))
	}
	res.ValidSets = enumerateValid(res.Conditions, res.Candidates)
	res.MinimalSets = minimalSets(res.ValidSets)
	res.MaximalSets = maximalSets(res.ValidSets)
	res.Identifiable = len(res.ValidSets) > 0

	return res, nil
}

// screen is the enumeration-free identifiability check: false means provably
// unidentifiable, i.e. some backdoor path has no collider and no candidate
// non-collider, so no eligible set can ever block it. True only means not
// ruled out.
func screen(conds []Condition, candidates []string) bool {
	pool := make(map[string]struct{}, len(candidates))
	for _, id := range candidates {
		pool[id] = struct{}{}
	}
	for _, c := range conds {
		if len(c.AvoidAll) > 0 {
			continue // an unconditioned collider can block this path
		}
		blockable := false
		for _, id := range c.RequireOne {
			if _, ok := pool[id]; ok {
				blockable = true
				break
			}
		}
		if !blockable {
			return false
		}
	}

	return true
}

// enumerateValid tests every subset of candidates against all conditions and
// returns the satisfying ones, ordered by size then lexicographically.
// Exponential in len(candidates); callers gate via MaxCandidates.
func enumerateValid(conds []Condition, candidates []string) [][]string {
	valid := make([][]string, 0)
	set := make(map[string]struct{}, len(candidates))

	var mask uint64
	total := uint64(1) << uint(len(candidates))
	for mask = 0; mask < total; mask++ {
		// Materialize the subset (candidates are sorted, so subsets are too)
		subset := make([]string, 0)
		for i, id := range candidates {
			if mask&(1<<uint(i)) != 0 {
				subset = append(subset, id)
				set[id] = struct{}{}
			}
		}

		blocked := true
		for _, c := range conds {
			if !c.Blocked(set) {
				blocked = false
				break
			}
		}
		if blocked {
			valid = append(valid, subset)
		}

		for id := range set {
			delete(set, id)
		}
	}

	sort.Slice(valid, func(i, j int) bool {
		if len(valid[i]) != len(valid[j]) {
			return len(valid[i]) < len(valid[j])
		}
		for k := range valid[i] {
			if valid[i][k] != valid[j][k] {
				return valid[i][k] < valid[j][k]
			}
		}

		return false
	})

	return valid
}

// minimalSets keeps the valid sets with no valid proper subset.
func minimalSets(valid [][]string) [][]string {
	out := make([][]string, 0)
	for i, s := range valid {
		minimal := true
		for j, other := range valid {
			if i != j && properSubset(other, s) {
				minimal = false
				break
			}
		}
		if minimal {
			out = append(out, s)
		}
	}

	return out
}

// maximalSets keeps the valid sets with no valid proper superset.
func maximalSets(valid [][]string) [][]string {
	out := make([][]string, 0)
	for i, s := range valid {
		maximal := true
		for j, other := range valid {
			if i != j && properSubset(s, other) {
				maximal = false
				break
			}
		}
		if maximal {
			out = append(out, s)
		}
	}

	return out
}

// properSubset reports whether a ⊂ b. Both slices are sorted.
func properSubset(a, b []string) bool {
	if len(a) >= len(b) {
		return false
	}
	i := 0
	for _, id := range a {
		for i < len(b) && b[i] < id {
			i++
		}
		if i >= len(b) || b[i] != id {
			return false
		}
		i++
	}

	return true
}
