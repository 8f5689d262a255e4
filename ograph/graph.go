package ograph

import "fmt"

// AddVertex inserts vertex id if it is not present yet and applies opts.
// Re-adding an existing vertex is allowed and only re-applies opts, so
// builders may declare vertices before or after wiring their edges.
// Complexity: O(1) amortized.
func (g *Graph) AddVertex(id string, opts ...VertexOption) error {
	if id == "" {
		return ErrEmptyVertexID
	}

	v, ok := g.vertices[id]
	if !ok {
		v = &Vertex{ID: id}
		g.vertices[id] = v
		g.order = append(g.order, id)
	}
	for _, opt := range opts {
		opt(v)
	}

	return nil
}

// AddEdge inserts the edge from→to, auto-creating missing endpoints.
// Successor and predecessor lists record edges in insertion order; that
// order is the sibling order of an ordered forest.
//
// Undirected graphs record the edge in both directions but count it once.
// Complexity: O(out-degree(from)) for the duplicate check.
func (g *Graph) AddEdge(from, to string) error {
	// 1) Validate endpoints.
	if from == "" || to == "" {
		return ErrEmptyVertexID
	}
	if from == to {
		return fmt.Errorf("ograph: AddEdge(%q, %q): %w", from, to, ErrSelfLoop)
	}

	// 2) Reject duplicates before mutating anything.
	for _, s := range g.succ[from] {
		if s == to {
			return fmt.Errorf("ograph: AddEdge(%q, %q): %w", from, to, ErrDuplicateEdge)
		}
	}

	// 3) Auto-create endpoints in mention order.
	if err := g.AddVertex(from); err != nil {
		return err
	}
	if err := g.AddVertex(to); err != nil {
		return err
	}

	// 4) Record adjacency.
	g.succ[from] = append(g.succ[from], to)
	g.pred[to] = append(g.pred[to], from)
	if !g.directed {
		g.succ[to] = append(g.succ[to], from)
		g.pred[from] = append(g.pred[from], to)
	}
	g.edgeCount++

	return nil
}

// FromEdges builds a directed ordered graph from a list of (from, to)
// pairs, the way test fixtures and examples usually describe a forest.
func FromEdges(pairs ...[2]string) (*Graph, error) {
	g := New()
	for _, p := range pairs {
		if err := g.AddEdge(p[0], p[1]); err != nil {
			return nil, err
		}
	}

	return g, nil
}

// Clone returns an independent copy of g sharing no mutable state.
// Complexity: O(V + E).
func (g *Graph) Clone() *Graph {
	c := &Graph{
		directed:  g.directed,
		vertices:  make(map[string]*Vertex, len(g.vertices)),
		order:     append([]string(nil), g.order...),
		succ:      make(map[string][]string, len(g.succ)),
		pred:      make(map[string][]string, len(g.pred)),
		edgeCount: g.edgeCount,
	}
	for id, v := range g.vertices {
		dup := *v
		c.vertices[id] = &dup
	}
	for id, list := range g.succ {
		c.succ[id] = append([]string(nil), list...)
	}
	for id, list := range g.pred {
		c.pred[id] = append([]string(nil), list...)
	}

	return c
}
