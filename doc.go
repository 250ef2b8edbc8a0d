// Package causality identifies valid covariate-adjustment sets in a causal
// directed acyclic graph via the backdoor criterion.
//
// 🚀 What is causality?
//
//	A small, deterministic, zero-dependency library that walks the backdoor
//	criterion end to end:
//		• dag/      — immutable DAG built once from an edge list, validated acyclic
//		• paths/    — every simple path between two nodes over the undirected skeleton
//		• backdoor/ — collider classification, backdoor-path filtering, and
//		              derivation of all / minimal / maximal valid adjustment sets
//
// ✨ Why choose causality?
//
//   - Deterministic – every node collection is sorted, every run reproducible
//   - Explicit – per-path collider / non-collider labeling, not just a final set
//   - Pure Go – no cgo, no hidden deps
//   - Honest failure modes – "unidentifiable via backdoor" is a result, not an error
//
// Quick ASCII example (treatment X, outcome Y, confounder Z):
//
//	    Z───→X
//	    │    │
//	    ↓    ↓
//	    Y←───W
//
//	the path X←Z→Y is a backdoor path; conditioning on {Z} blocks it.
//
// Start with dag.New to build the graph, then backdoor.Identify for the full
// pipeline, or paths.Enumerate and backdoor.AnalyzePath to drive each stage
// yourself.
package causality
