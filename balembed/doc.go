// Package balembed computes the Longest Common Balanced Embedding of
// two balanced token sequences — the sequence-level core of the maximum
// common ordered subtree embedding problem.
//
// 🚀 What is a balanced embedding?
//
//	Both inputs encode ordered forests. A common embedding is what
//	remains after deleting nodes from either forest and contracting the
//	resulting edges (children reattach to the deleted node's parent, in
//	place). The DP finds the pair of balanced sub-sequences — one per
//	input — that encodes a maximum-affinity common embedded forest.
//
// The recurrence decomposes each sequence as s = a·tail, a = o·head·c,
// and takes the best of three moves:
//
//  1. delete the first root of s1  → recurse on (head1·tail1, s2)
//  2. delete the first root of s2  → recurse on (s1, head2·tail2)
//  3. match the two roots (affinity > 0) → combine F(head1, head2)
//     and F(tail1, tail2) plus the affinity score
//
// Ties prefer the match, then move 1, then move 2, so both engines
// reconstruct identical witnesses.
//
// ✨ Two engines, identical results:
//   - ImplRecursive — top-down memoized recursion; stack depth grows
//     with sequence length (Go stacks grow on demand, but very deep
//     inputs are better served by the iterative engine)
//   - ImplIterative — enumerates every reachable sub-problem, orders
//     pairs by total length and fills the memo bottom-up; the default
//
// ⚙️ Usage:
//
//	opts := balembed.DefaultOptions()
//	common, err := balembed.LongestCommonBalancedEmbedding(s1, s2, otc, &opts)
//	// common.Sub1 ⊑ s1, common.Sub2 ⊑ s2, common.Value = total affinity
//
// Performance:
//
//   - Time:   Θ(|s1|²·|s2|²) worst case; far sparser in practice because
//     only decompositions that actually arise are memoized
//   - Memory: one memo entry per visited sub-problem pair
//
// The memo table lives for a single call and is keyed by value, so
// equal sub-sequences produced along different recursion paths share
// one entry.
package balembed
