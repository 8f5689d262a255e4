package subtree

import (
	"fmt"

	"github.com/katalvlaran/treealign/balembed"
	"github.com/katalvlaran/treealign/ograph"
)

// MaximumCommonOrderedSubtreeEmbedding computes the largest common
// embedded forest of t1 and t2 under the configured node affinity.
//
// An embedding deletes nodes and contracts the freed edges: a deleted
// node's children take its place among their grandparent's children,
// sibling order intact. The returned forests E1 ⊑ t1 and E2 ⊑ t2 are
// freshly allocated, use the original vertex IDs and labels, and are
// isomorphic to each other as ordered forests; under a boolean
// affinity, value counts the matched vertex pairs.
//
// Validation at entry: nil graphs report ograph.ErrNilGraph, empty
// forests ErrEmptyForest, and non-forest inputs ErrUnsupportedGraph.
//
// Time complexity: Θ(|V1|²·|V2|²) worst case, usually far sparser.
func MaximumCommonOrderedSubtreeEmbedding(t1, t2 *ograph.Graph, opts *Options) (*ograph.Graph, *ograph.Graph, float64, error) {
	// 1) Resolve options and validate inputs.
	o, enc1, enc2, encoder, err := prepare(t1, t2, opts)
	if err != nil {
		return nil, nil, 0, err
	}

	// 2) Lower the affinity and run the embedding DP.
	aff, err := tokenAffinity(o, t1, t2, enc1, enc2)
	if err != nil {
		return nil, nil, 0, err
	}
	dpOpts := balembed.Options{Affinity: aff, Impl: balembed.Impl(o.Impl)}
	common, err := balembed.LongestCommonBalancedEmbedding(enc1.Seq, enc2.Seq, encoder.OpenToClose(), &dpOpts)
	if err != nil {
		return nil, nil, 0, err
	}

	// 3) Reconstruct both witnesses as forests.
	e1, err := Decode(common.Sub1, enc1, t1)
	if err != nil {
		return nil, nil, 0, err
	}
	e2, err := Decode(common.Sub2, enc2, t2)
	if err != nil {
		return nil, nil, 0, err
	}

	return e1, e2, common.Value, nil
}

// prepare validates options and both inputs, then encodes them over a
// shared alphabet. Both tree-level operations funnel through here.
func prepare(t1, t2 *ograph.Graph, opts *Options) (Options, *Encoding, *Encoding, *Encoder, error) {
	o := DefaultOptions()
	if opts != nil {
		o = *opts
	}
	if err := o.Validate(); err != nil {
		return o, nil, nil, nil, err
	}

	for i, g := range []*ograph.Graph{t1, t2} {
		if g == nil {
			return o, nil, nil, nil, fmt.Errorf("subtree: input %d: %w", i+1, ograph.ErrNilGraph)
		}
		if g.IsEmpty() {
			return o, nil, nil, nil, fmt.Errorf("subtree: input %d: %w", i+1, ErrEmptyForest)
		}
	}

	encoder, err := NewEncoder(o.Mode)
	if err != nil {
		return o, nil, nil, nil, err
	}
	enc1, err := encoder.Encode(t1)
	if err != nil {
		return o, nil, nil, nil, fmt.Errorf("subtree: input 1: %w", err)
	}
	enc2, err := encoder.Encode(t2)
	if err != nil {
		return o, nil, nil, nil, fmt.Errorf("subtree: input 2: %w", err)
	}

	return o, enc1, enc2, encoder, nil
}
