// Package subtree is the high-level API of treealign: maximum common
// ordered subtree embedding and isomorphism over ograph forests.
//
// 🚀 What happens under the hood?
//
//	Each input forest is encoded as a balanced token sequence (one open
//	and one close token per node, depth-first, sibling order preserved).
//	Both forests share one growing alphabet, so their token namespaces
//	never collide. The balanced-sequence DP (balembed or baliso) finds
//	the optimal pair of sub-sequences, and the codec turns each back
//	into a forest whose vertices are a subset of the original's.
//
//	T1, T2 ──Encode──▶ s1, s2 ──DP──▶ sub1, sub2 ──Decode──▶ E1, E2
//
// ✨ Key features:
//   - MaximumCommonOrderedSubtreeEmbedding — node deletion + edge
//     contraction (E_i equals T_i with non-embedded nodes contracted)
//   - MaximumCommonOrderedSubtreeIsomorphism — whole-subtree pruning only
//   - affinity modes: label equality, node-ID auto, always-match, or a
//     custom non-negative scorer
//   - engine selection forwarded to the DP (iterative / recursive)
//   - Encoder/Decode exposed for callers that want to stay at the
//     sequence level
//
// ⚙️ Usage:
//
//	t1, _ := ograph.FromEdges([2]string{"0", "1"})
//	t2, _ := ograph.FromEdges([2]string{"0", "1"}, [2]string{"1", "2"})
//	e1, e2, value, err := subtree.MaximumCommonOrderedSubtreeEmbedding(t1, t2, nil)
//	// value == 2, e1 and e2 are the common two-node path
//
// Validation happens synchronously at entry: empty forests raise
// ErrEmptyForest, and anything that is not an ordered directed forest
// (undirected, cyclic, multi-parent) raises ErrUnsupportedGraph.
package subtree
