// Package ograph defines the Graph and Vertex types, construction options,
// and sentinel errors for ordered directed graphs.
//
// Errors:
//
//	ErrNilGraph       - graph pointer is nil.
//	ErrEmptyVertexID  - vertex ID is the empty string.
//	ErrVertexNotFound - requested vertex does not exist.
//	ErrDuplicateEdge  - the edge already exists.
//	ErrSelfLoop       - an edge from a vertex to itself.
//	ErrUndirected     - a forest operation received an undirected graph.
//	ErrMultiParent    - a vertex has more than one parent.
//	ErrCycle          - the edge set contains a cycle.
package ograph

import "errors"

// Sentinel errors for ordered graph operations.
var (
	// ErrNilGraph indicates a nil *Graph was passed to an operation.
	ErrNilGraph = errors.New("ograph: graph is nil")

	// ErrEmptyVertexID indicates a vertex ID was the empty string.
	ErrEmptyVertexID = errors.New("ograph: vertex ID is empty")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("ograph: vertex not found")

	// ErrDuplicateEdge indicates the same edge was added twice.
	ErrDuplicateEdge = errors.New("ograph: edge already exists")

	// ErrSelfLoop indicates an edge whose endpoints coincide.
	ErrSelfLoop = errors.New("ograph: self-loop not allowed")

	// ErrUndirected indicates a forest check on an undirected graph.
	ErrUndirected = errors.New("ograph: graph is not directed")

	// ErrMultiParent indicates a vertex with in-degree greater than one.
	ErrMultiParent = errors.New("ograph: vertex has multiple parents")

	// ErrCycle indicates the graph contains a cycle.
	ErrCycle = errors.New("ograph: graph contains a cycle")
)

// Vertex is a node of an ordered graph.
//
// ID uniquely identifies the vertex within its Graph. Label is the value
// seen by node-affinity predicates; the empty string means "unset", in
// which case Graph.Label falls back to the ID.
type Vertex struct {
	// ID is the unique identifier for this vertex.
	ID string

	// Label is the optional node label used for affinity scoring.
	Label string
}

// GraphOption configures a Graph at construction time.
type GraphOption func(g *Graph)

// WithUndirected builds an undirected container. Undirected graphs are
// rejected by ValidateForest and by the subtree entry points; the option
// exists so adapters can represent inputs of the wrong graph class.
func WithUndirected() GraphOption {
	return func(g *Graph) { g.directed = false }
}

// VertexOption configures a single vertex when it is added.
type VertexOption func(v *Vertex)

// WithLabel attaches a label to the vertex being added.
func WithLabel(label string) VertexOption {
	return func(v *Vertex) { v.Label = label }
}

// Graph is an insertion-ordered directed (or undirected) graph.
//
// Not safe for concurrent mutation; the treealign core is single-threaded
// and every algorithm treats its input graphs as read-only.
type Graph struct {
	directed bool

	vertices map[string]*Vertex // vertex ID → vertex
	order    []string           // vertex IDs in insertion order

	succ map[string][]string // ordered successor lists
	pred map[string][]string // ordered predecessor lists

	edgeCount int
}

// New creates an empty ordered graph. Directed by default.
// Complexity: O(1).
func New(opts ...GraphOption) *Graph {
	g := &Graph{
		directed: true,
		vertices: make(map[string]*Vertex),
		succ:     make(map[string][]string),
		pred:     make(map[string][]string),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}
