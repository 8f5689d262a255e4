// Package ograph provides the ordered directed graph container used by
// every algorithm in treealign.
//
// 🚀 What is ograph?
//
//	A small in-memory graph whose defining property is ORDER:
//	  • vertices remember insertion order,
//	  • each vertex keeps its successors in the order their edges were added,
//	  • roots (vertices without a parent) iterate in insertion order.
//
//	That ordering is what makes "ordered forest" a meaningful input to the
//	subtree matching algorithms: sibling order and root order are data,
//	not an accident of map iteration.
//
// ✨ Key features:
//   - AddVertex / AddEdge with auto-created endpoints
//   - optional per-vertex labels (Label falls back to the vertex ID)
//   - ordered queries: Vertices, Edges, Roots, Successors, Predecessors
//   - ValidateForest: directedness, single-parent and acyclicity checks
//     backed by a disjoint-set forest
//   - Clone for independent copies
//
// ⚙️ Usage:
//
//	g := ograph.New()
//	_ = g.AddEdge("0", "1")
//	_ = g.AddEdge("1", "2")
//	if err := g.ValidateForest(); err != nil { ... }
//
// The container itself accepts arbitrary directed (or, via WithUndirected,
// undirected) graphs; forest-ness is a property checked at the point of
// use, not enforced on every mutation.
//
// Complexity: all mutators and single-vertex queries are O(1) amortized
// (plus O(out-degree) for duplicate-edge detection); ValidateForest is
// near-linear in V+E via union-find.
package ograph
