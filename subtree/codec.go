package subtree

import (
	"fmt"

	"github.com/katalvlaran/treealign/balseq"
	"github.com/katalvlaran/treealign/ograph"
)

// Encoding is the balanced-sequence image of one forest: the sequence,
// the shared open→close map, and the token↔vertex correspondence.
type Encoding struct {
	Seq         balseq.Sequence
	OpenToClose balseq.OpenToClose
	OpenToNode  map[balseq.Token]string
	NodeToOpen  map[string]balseq.Token
}

// Encoder turns forests into balanced sequences. One encoder owns one
// growing alphabet, so every forest it encodes lands on a disjoint
// token namespace — exactly what a DP over two inputs needs.
type Encoder struct {
	alpha *balseq.Alphabet
}

// NewEncoder creates an encoder for the given container mode.
func NewEncoder(mode balseq.Mode) (*Encoder, error) {
	alpha, err := balseq.NewAlphabet(mode)
	if err != nil {
		return nil, fmt.Errorf("subtree: encoder: %w", err)
	}

	return &Encoder{alpha: alpha}, nil
}

// OpenToClose returns the live open→close map spanning every forest
// encoded so far.
func (e *Encoder) OpenToClose() balseq.OpenToClose { return e.alpha.OpenToClose() }

// Encode walks g root by root in sibling order, emitting the open token
// on first visit and the close token after the node's children. The
// graph must be an ordered directed forest; anything else reports
// ErrUnsupportedGraph.
//
// Complexity: O(V) token emissions on top of the forest validation.
func (e *Encoder) Encode(g *ograph.Graph) (*Encoding, error) {
	// 1) Validate the graph class.
	if g == nil {
		return nil, ograph.ErrNilGraph
	}
	if err := g.ValidateForest(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnsupportedGraph, err)
	}

	// 2) Ordered DFS with per-node token allocation.
	enc := &Encoding{
		OpenToClose: e.alpha.OpenToClose(),
		OpenToNode:  make(map[balseq.Token]string, g.VertexCount()),
		NodeToOpen:  make(map[string]balseq.Token, g.VertexCount()),
	}
	toks := make([]balseq.Token, 0, 2*g.VertexCount())

	var walk func(id string) error
	walk = func(id string) error {
		open, close, err := e.alpha.Next()
		if err != nil {
			return fmt.Errorf("subtree: encode %q: %w", id, err)
		}
		enc.OpenToNode[open] = id
		enc.NodeToOpen[id] = open
		toks = append(toks, open)

		children, err := g.Successors(id)
		if err != nil {
			return err
		}
		for _, child := range children {
			if err = walk(child); err != nil {
				return err
			}
		}
		toks = append(toks, close)

		return nil
	}

	for _, root := range g.Roots() {
		if err := walk(root); err != nil {
			return nil, err
		}
	}
	enc.Seq = balseq.New(e.alpha.Mode(), toks)

	return enc, nil
}

// Decode inverts the codec for a balanced sub-sequence of an encoded
// forest: opens push vertices, closes pop, and a vertex opened under a
// non-empty stack becomes a child of the vertex below it. Labels are
// copied from src, so the result is a fresh forest over a subset of
// src's vertices.
func Decode(sub balseq.Sequence, enc *Encoding, src *ograph.Graph) (*ograph.Graph, error) {
	if err := sub.Validate(enc.OpenToClose); err != nil {
		return nil, fmt.Errorf("subtree: decode: %w", err)
	}

	out := ograph.New()
	var stack []string
	for i := 0; i < sub.Len(); i++ {
		tok := sub.At(i)
		id, isOpen := enc.OpenToNode[tok]
		if !isOpen {
			stack = stack[:len(stack)-1]
			continue
		}

		v, err := src.Vertex(id)
		if err != nil {
			return nil, fmt.Errorf("subtree: decode token %d: %w", tok, err)
		}
		if err = out.AddVertex(id, ograph.WithLabel(v.Label)); err != nil {
			return nil, err
		}
		if len(stack) > 0 {
			if err = out.AddEdge(stack[len(stack)-1], id); err != nil {
				return nil, err
			}
		}
		stack = append(stack, id)
	}

	return out, nil
}
