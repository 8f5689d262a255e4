package ograph

import "fmt"

// Directed reports whether edges are one-way.
func (g *Graph) Directed() bool { return g.directed }

// VertexCount returns the number of vertices.
func (g *Graph) VertexCount() int { return len(g.vertices) }

// EdgeCount returns the number of edges.
func (g *Graph) EdgeCount() int { return g.edgeCount }

// IsEmpty reports whether the graph has no vertices.
func (g *Graph) IsEmpty() bool { return len(g.vertices) == 0 }

// HasVertex reports whether vertex id exists.
func (g *Graph) HasVertex(id string) bool {
	_, ok := g.vertices[id]

	return ok
}

// HasEdge reports whether the edge from→to exists.
// Complexity: O(out-degree(from)).
func (g *Graph) HasEdge(from, to string) bool {
	for _, s := range g.succ[from] {
		if s == to {
			return true
		}
	}

	return false
}

// Vertex returns a copy of the vertex with the given id.
func (g *Graph) Vertex(id string) (Vertex, error) {
	v, ok := g.vertices[id]
	if !ok {
		return Vertex{}, fmt.Errorf("ograph: Vertex(%q): %w", id, ErrVertexNotFound)
	}

	return *v, nil
}

// Label returns the vertex label, falling back to the vertex ID when no
// label was set. The AffinityEqual mode of package subtree compares
// exactly this value.
func (g *Graph) Label(id string) (string, error) {
	v, ok := g.vertices[id]
	if !ok {
		return "", fmt.Errorf("ograph: Label(%q): %w", id, ErrVertexNotFound)
	}
	if v.Label != "" {
		return v.Label, nil
	}

	return v.ID, nil
}

// Vertices returns all vertex IDs in insertion order.
func (g *Graph) Vertices() []string {
	return append([]string(nil), g.order...)
}

// Edges returns all edges as (from, to) pairs: vertices in insertion
// order, each vertex's outgoing edges in sibling order.
func (g *Graph) Edges() [][2]string {
	edges := make([][2]string, 0, g.edgeCount)
	seen := make(map[[2]string]bool, g.edgeCount)
	var id, s string
	for _, id = range g.order {
		for _, s = range g.succ[id] {
			if !g.directed {
				// Undirected adjacency is stored twice; report each edge once.
				if seen[[2]string{s, id}] {
					continue
				}
				seen[[2]string{id, s}] = true
			}
			edges = append(edges, [2]string{id, s})
		}
	}

	return edges
}

// Successors returns the ordered children of vertex id.
func (g *Graph) Successors(id string) ([]string, error) {
	if !g.HasVertex(id) {
		return nil, fmt.Errorf("ograph: Successors(%q): %w", id, ErrVertexNotFound)
	}

	return append([]string(nil), g.succ[id]...), nil
}

// Predecessors returns the ordered parents of vertex id.
func (g *Graph) Predecessors(id string) ([]string, error) {
	if !g.HasVertex(id) {
		return nil, fmt.Errorf("ograph: Predecessors(%q): %w", id, ErrVertexNotFound)
	}

	return append([]string(nil), g.pred[id]...), nil
}

// Roots returns the vertices without a parent, in insertion order.
// For a directed forest these are the tree sources.
func (g *Graph) Roots() []string {
	roots := make([]string, 0, len(g.order))
	for _, id := range g.order {
		if len(g.pred[id]) == 0 {
			roots = append(roots, id)
		}
	}

	return roots
}
