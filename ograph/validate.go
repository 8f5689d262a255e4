package ograph

import (
	"fmt"

	"github.com/spakin/disjoint"
)

// ValidateForest checks that g is an ordered directed forest:
// directed, every vertex has at most one parent, and the edge set is
// acyclic.
//
// Acyclicity is established with a disjoint-set forest: once in-degrees
// are known to be ≤ 1, an edge joining two vertices that already share a
// set closes a cycle.
//
// Complexity: O(V + E·α(V)).
func (g *Graph) ValidateForest() error {
	// 1) Structural preconditions.
	if g == nil {
		return ErrNilGraph
	}
	if !g.directed {
		return ErrUndirected
	}

	// 2) In-degree check: a forest vertex has at most one parent.
	var id string
	for _, id = range g.order {
		if len(g.pred[id]) > 1 {
			return fmt.Errorf("ograph: vertex %q has %d parents: %w",
				id, len(g.pred[id]), ErrMultiParent)
		}
	}

	// 3) Cycle check via union-find over the undirected skeleton.
	sets := make(map[string]*disjoint.Element, len(g.order))
	for _, id = range g.order {
		sets[id] = disjoint.NewElement()
	}
	var child string
	for _, id = range g.order {
		for _, child = range g.succ[id] {
			if sets[id].Find() == sets[child].Find() {
				return fmt.Errorf("ograph: edge %q→%q closes a cycle: %w",
					id, child, ErrCycle)
			}
			disjoint.Union(sets[id], sets[child])
		}
	}

	return nil
}
