// Package treegen generates random ordered trees for tests, examples,
// and benchmarks.
//
// 🚀 How trees are sampled
//
//	RandomTree draws a uniformly random Prüfer sequence of length n-2
//	and decodes it — a bijection between sequences and labeled trees on
//	n vertices, so every labeled tree is equally likely. The undirected
//	result is then oriented by a depth-first walk from vertex 0 with
//	neighbors visited in ascending numeric order, which fixes both the
//	edge directions and the sibling order deterministically.
//
// ✨ Key features:
//   - deterministic for a fixed seed (WithSeed / WithRand)
//   - customizable vertex IDs via WithIDFn
//   - directed (default) or undirected containers via RandomOrderedTree
//
// ⚙️ Usage:
//
//	tree, err := treegen.RandomTree(10, treegen.WithSeed(42))
//	// tree is an *ograph.Graph forest with exactly one root, "0"
//
// Determinism:
//   - Stable vertex order: 0..n-1 ascending.
//   - Stable orientation: DFS from vertex 0, neighbors ascending.
//   - Deterministic outcomes for a fixed seed due to the fixed orders.
package treegen
