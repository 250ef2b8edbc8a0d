package paths_test

import (
	"fmt"
	"testing"

	"github.com/Wenhua-Hu/causality/dag"
	"github.com/Wenhua-Hu/causality/paths"
)

// BenchmarkEnumerate_Chain measures enumeration on a directed chain of N
// edges: exactly one simple path exists.
func BenchmarkEnumerate_Chain(b *testing.B) {
	const N = 200
	edges := make([]dag.Edge, 0, N)
	for i := 0; i < N; i++ {
		edges = append(edges, dag.Edge{
			From: fmt.Sprintf("v%d", i),
			To:   fmt.Sprintf("v%d", i+1),
		})
	}
	d, err := dag.New(edges)
	if err != nil {
		b.Fatal(err)
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = paths.Enumerate(d, "v0", fmt.Sprintf("v%d", N))
	}
}

// BenchmarkEnumerate_Ladder measures enumeration on a ladder of K rungs,
// where the simple-path count grows exponentially in K.
func BenchmarkEnumerate_Ladder(b *testing.B) {
	const K = 10
	var edges []dag.Edge
	for i := 0; i < K; i++ {
		edges = append(edges,
			dag.Edge{From: fmt.Sprintf("l%d", i), To: fmt.Sprintf("l%d", i+1)},
			dag.Edge{From: fmt.Sprintf("r%d", i), To: fmt.Sprintf("r%d", i+1)},
			dag.Edge{From: fmt.Sprintf("l%d", i), To: fmt.Sprintf("r%d", i)},
		)
	}
	edges = append(edges, dag.Edge{From: fmt.Sprintf("l%d", K), To: fmt.Sprintf("r%d", K)})
	d, err := dag.New(edges)
	if err != nil {
		b.Fatal(err)
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = paths.Enumerate(d, "l0", fmt.Sprintf("r%d", K))
	}
}
