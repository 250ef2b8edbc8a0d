package paths_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Wenhua-Hu/causality/dag"
	"github.com/Wenhua-Hu/causality/paths"
)

// confoundedDAG builds the worked teaching graph:
// B→A, B→Z, C→Z, C→D, A→X, Z→X, Z→Y, D→Y, X→W, W→Y.
func confoundedDAG(t *testing.T) *dag.DAG {
	t.Helper()
	d, err := dag.New([]dag.Edge{
		{From: "B", To: "A"}, {From: "B", To: "Z"},
		{From: "C", To: "Z"}, {From: "C", To: "D"},
		{From: "A", To: "X"}, {From: "Z", To: "X"},
		{From: "Z", To: "Y"}, {From: "D", To: "Y"},
		{From: "X", To: "W"}, {From: "W", To: "Y"},
	})
	require.NoError(t, err)

	return d
}

// TestEnumerate_NilDAG verifies that a nil graph returns ErrNilDAG.
func TestEnumerate_NilDAG(t *testing.T) {
	got, err := paths.Enumerate(nil, "X", "Y")
	assert.Nil(t, got)
	assert.ErrorIs(t, err, paths.ErrNilDAG)
}

// TestEnumerate_SameNode rejects source == target.
func TestEnumerate_SameNode(t *testing.T) {
	d := confoundedDAG(t)
	_, err := paths.Enumerate(d, "X", "X")
	assert.ErrorIs(t, err, paths.ErrSameNode)
}

// TestEnumerate_UnknownNode rejects endpoints outside the graph.
func TestEnumerate_UnknownNode(t *testing.T) {
	d := confoundedDAG(t)

	_, err := paths.Enumerate(d, "missing", "Y")
	assert.ErrorIs(t, err, paths.ErrNodeNotFound)

	_, err = paths.Enumerate(d, "X", "missing")
	assert.ErrorIs(t, err, paths.ErrNodeNotFound)
}

// TestEnumerate_Disconnected returns an empty result, not an error.
func TestEnumerate_Disconnected(t *testing.T) {
	d, err := dag.New(
		[]dag.Edge{{From: "A", To: "B"}},
		dag.WithNodes("C"),
	)
	require.NoError(t, err)

	got, err := paths.Enumerate(d, "A", "C")
	assert.NoError(t, err)
	assert.Empty(t, got)
}

// TestEnumerate_DirectEdgeOnly yields the single two-node path.
func TestEnumerate_DirectEdgeOnly(t *testing.T) {
	d, err := dag.New([]dag.Edge{{From: "A", To: "B"}})
	require.NoError(t, err)

	got, err := paths.Enumerate(d, "A", "B")
	require.NoError(t, err)
	assert.Equal(t, []paths.Path{{"A", "B"}}, got)
}

// TestEnumerate_IgnoresDirection finds paths that run against edge
// orientation: with Z→X and Z→Y, X and Y connect through Z.
func TestEnumerate_IgnoresDirection(t *testing.T) {
	d, err := dag.New([]dag.Edge{
		{From: "Z", To: "X"},
		{From: "Z", To: "Y"},
	})
	require.NoError(t, err)

	got, err := paths.Enumerate(d, "X", "Y")
	require.NoError(t, err)
	assert.Equal(t, []paths.Path{{"X", "Z", "Y"}}, got)
}

// TestEnumerate_WorkedGraph finds all five simple X–Y paths in the teaching
// graph, in deterministic sorted-exploration order.
func TestEnumerate_WorkedGraph(t *testing.T) {
	d := confoundedDAG(t)

	got, err := paths.Enumerate(d, "X", "Y")
	require.NoError(t, err)
	assert.Equal(t, []paths.Path{
		{"X", "A", "B", "Z", "C", "D", "Y"},
		{"X", "A", "B", "Z", "Y"},
		{"X", "W", "Y"},
		{"X", "Z", "C", "D", "Y"},
		{"X", "Z", "Y"},
	}, got)
}

// TestEnumerate_SimplePathInvariant checks that no returned path repeats a
// node and that endpoints match the query.
func TestEnumerate_SimplePathInvariant(t *testing.T) {
	d := confoundedDAG(t)

	got, err := paths.Enumerate(d, "X", "Y")
	require.NoError(t, err)
	for _, p := range got {
		assert.Equal(t, "X", p[0])
		assert.Equal(t, "Y", p[len(p)-1])
		seen := make(map[string]bool, len(p))
		for _, id := range p {
			assert.Falsef(t, seen[id], "node %s repeated in path %v", id, p)
			seen[id] = true
		}
	}
}

// TestEnumerate_Idempotent re-runs enumeration on an unchanged graph and
// expects byte-identical output.
func TestEnumerate_Idempotent(t *testing.T) {
	d := confoundedDAG(t)

	first, err := paths.Enumerate(d, "X", "Y")
	require.NoError(t, err)
	second, err := paths.Enumerate(d, "X", "Y")
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

// TestEnumerate_MaxLen abandons paths longer than the cap.
func TestEnumerate_MaxLen(t *testing.T) {
	d := confoundedDAG(t)

	got, err := paths.Enumerate(d, "X", "Y", paths.WithMaxLen(3))
	require.NoError(t, err)
	assert.Equal(t, []paths.Path{
		{"X", "W", "Y"},
		{"X", "Z", "Y"},
	}, got)
}

// TestEnumerate_Cancelled aborts with the context error.
func TestEnumerate_Cancelled(t *testing.T) {
	d := confoundedDAG(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := paths.Enumerate(d, "X", "Y", paths.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)
}
