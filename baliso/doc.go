// Package baliso computes the Longest Common Balanced Isomorphism of
// two balanced token sequences — the restricted sibling of package
// balembed.
//
// 🚀 Embedding vs. isomorphism
//
//	An embedding may delete ANY node: the deleted node's children are
//	reattached in place (edge contraction). An isomorphism may only
//	prune WHOLE subtrees — an interior node never disappears while its
//	descendants survive. Formally, the deletion moves lose the
//	head·tail concatenation:
//
//	  1. drop the whole first subtree of s1 → recurse on (tail1, s2)
//	  2. drop the whole first subtree of s2 → recurse on (s1, tail2)
//	  3. match the two roots (affinity > 0) → combine F(head1, head2)
//	     and F(tail1, tail2) plus the affinity score
//
//	Because heads never merge into tails, the reachable sub-problems
//	are exactly the closure under {head, tail}; DecompNoCat and
//	AllDecompNoCat expose that enumeration.
//
// The isomorphism value never exceeds the embedding value of the same
// inputs — pruning is a special case of deletion.
//
// ✨ Two engines, identical results:
//   - ImplRecursive — top-down memoized recursion
//   - ImplIterative — bottom-up fill over AllDecompNoCat pairs ordered
//     by total length; the default
//
// ⚙️ Usage:
//
//	opts := baliso.DefaultOptions()
//	common, err := baliso.LongestCommonBalancedIsomorphism(s1, s2, otc, &opts)
//
// Ties prefer the match, then dropping from s1, then from s2 — the same
// rule as balembed, so cross-variant comparisons stay deterministic.
package baliso
