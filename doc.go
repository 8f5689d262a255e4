// Package treealign finds the largest common piece of two ordered trees.
//
// 🚀 What is treealign?
//
//	An exact combinatorial-optimization library that computes the
//	maximum common ordered subtree embedding (MCOSE) and the maximum
//	common ordered subtree isomorphism (MCOSI) of two rooted, ordered,
//	node-labeled forests. Useful for:
//	  • Diffing abstract syntax trees & document outlines
//	  • Aligning taxonomies and nested configuration
//	  • Structure-aware deduplication of hierarchical records
//
// ✨ Why choose treealign?
//
//   - Exact optima       — no heuristics, no approximation
//   - Deterministic      — fixed tie-breaking, seedable generators
//   - Pure Go            — no cgo, a minimal dependency surface
//   - Two DP engines     — recursive-memoized and iterative bottom-up,
//     guaranteed to agree
//
// Under the hood, everything is organized into flat subpackages:
//
//	ograph/    — ordered directed graph container & forest validation
//	balseq/    — balanced token sequences: alphabets, decomposition, RNG
//	balembed/  — longest common balanced embedding (node deletion + contraction)
//	baliso/    — longest common balanced isomorphism (subtree pruning only)
//	subtree/   — forest ↔ sequence codec and the top-level MCOSE/MCOSI calls
//	treegen/   — seedable random (ordered) tree generation
//	forestfmt/ — glyph rendering and bracket-notation parsing for forests
//
// Quick UTF sketch of an ordered forest and its balanced sequence:
//
//	╙── a            (a (b) (c (d)))
//	    ├─╼ b
//	    └─╼ c
//	        └─╼ d
//
// Start with subtree.MaximumCommonOrderedSubtreeEmbedding for the
// high-level API, or balembed.LongestCommonBalancedEmbedding to drive
// the dynamic program on raw balanced sequences.
//
//	go get github.com/katalvlaran/treealign
package treealign
