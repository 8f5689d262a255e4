package subtree

import (
	"github.com/katalvlaran/treealign/baliso"
	"github.com/katalvlaran/treealign/ograph"
)

// MaximumCommonOrderedSubtreeIsomorphism computes the largest common
// subtree isomorphism of t1 and t2 under the configured node affinity.
//
// Unlike the embedding, an isomorphism may only prune whole subtrees:
// an interior node never disappears while its descendants survive, so
// the result is never larger than the embedding of the same inputs.
//
// Validation and return conventions match
// MaximumCommonOrderedSubtreeEmbedding.
func MaximumCommonOrderedSubtreeIsomorphism(t1, t2 *ograph.Graph, opts *Options) (*ograph.Graph, *ograph.Graph, float64, error) {
	// 1) Resolve options and validate inputs.
	o, enc1, enc2, encoder, err := prepare(t1, t2, opts)
	if err != nil {
		return nil, nil, 0, err
	}

	// 2) Lower the affinity and run the isomorphism DP.
	aff, err := tokenAffinity(o, t1, t2, enc1, enc2)
	if err != nil {
		return nil, nil, 0, err
	}
	dpOpts := baliso.Options{Affinity: aff, Impl: baliso.Impl(o.Impl)}
	common, err := baliso.LongestCommonBalancedIsomorphism(enc1.Seq, enc2.Seq, encoder.OpenToClose(), &dpOpts)
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
