package balembed

import (
	"fmt"

	"github.com/katalvlaran/treealign/balseq"
)

// LongestCommonBalancedEmbedding returns balanced sub-sequences of s1
// and s2 encoding a maximum-affinity common embedded forest, plus its
// value.
//
// Preconditions, checked here: both sequences are balanced over otc and
// use only its tokens. Empty sequences are legal and yield the empty
// result — emptiness is only an error at the tree-level API.
//
// Time complexity:   Θ(|s1|²·|s2|²) worst case.
// Memory complexity: one memo entry per visited sub-problem pair; the
// table is released when the call returns.
func LongestCommonBalancedEmbedding(s1, s2 balseq.Sequence, otc balseq.OpenToClose, opts *Options) (Common, error) {
	// 1) Resolve and validate options.
	o := DefaultOptions()
	if opts != nil {
		o = *opts
	}
	if err := o.Validate(); err != nil {
		return Common{}, fmt.Errorf("balembed: impl %q: %w", o.Impl, err)
	}
	if o.Impl == "" {
		o.Impl = ImplIterative
	}
	if o.Affinity == nil {
		o.Affinity = EqualTokens
	}

	// 2) Validate inputs.
	if otc == nil {
		return Common{}, ErrNilOpenToClose
	}
	if err := s1.Validate(otc); err != nil {
		return Common{}, fmt.Errorf("balembed: sequence 1: %w", err)
	}
	if err := s2.Validate(otc); err != nil {
		return Common{}, fmt.Errorf("balembed: sequence 2: %w", err)
	}

	// 3) Run the selected engine. The DP is total on valid input.
	eng := newEngine(otc, o.Affinity)
	var r result
	switch o.Impl {
	case ImplRecursive:
		r = eng.solveRecursive(makeSV(s1), makeSV(s2))
	default:
		r = eng.solveIterative(makeSV(s1), makeSV(s2))
	}

	return Common{
		Sub1:  balseq.New(s1.Mode(), r.sub1),
		Sub2:  balseq.New(s2.Mode(), r.sub2),
		Value: r.val,
	}, nil
}
