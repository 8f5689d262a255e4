// Package balseq models balanced token sequences — the wire format of
// ordered forests inside treealign.
//
// 🚀 What is a balanced sequence?
//
//	Every node of an ordered forest contributes one OPEN token and one
//	matching CLOSE token; a depth-first walk emits the open on discovery
//	and the close on completion. The resulting sequence is properly
//	nested, has length 2·|V|, and lists sibling subtrees left to right:
//
//	  ╙── a             (a (b) (c (d)))   →   o(a) o(b) c(b) o(c) o(d) c(d) c(c) c(a)
//	      ├─╼ b
//	      └─╼ c
//	          └─╼ d
//
//	The dynamic programs in balembed and baliso never touch graphs: they
//	recurse over these sequences via the head/tail decomposition.
//
// ✨ Key features:
//   - container modes: (Number, Vector), (Number, Tuple), (Chr, String),
//     (Chr, Tuple) — dispatched once at the boundary, the algorithms see
//     a uniform token view
//   - Alphabet: allocates disjoint open/close token pairs in visit order
//     and records the open→close bijection
//   - Decompose: s = a·tail with a = open·head·close, in O(|a|)
//   - value-based Key() so equal sequences share one memo row no matter
//     how they were produced
//   - RandomBalancedSequence: seedable generation of random forests
//
// ⚙️ Usage:
//
//	alpha, _ := balseq.NewAlphabet(balseq.ModeDefault)
//	seq, otc, _ := balseq.RandomBalancedSequence(10, balseq.ModeDefault,
//		balseq.WithSeed(42), balseq.WithAlphabet(alpha))
//	a, head, tail, _ := balseq.Decompose(seq, otc)
//
// Sequences are immutable once built; Slice returns zero-copy views and
// Concat allocates fresh backing.
package balseq
