package balseq

import (
	"fmt"
	"math/rand"
)

// Options configures RandomBalancedSequence.
//
// Fields:
//
//	Rng   - random source; nil means a fresh source seeded with DefaultSeed.
//	Alpha - alphabet to allocate tokens from; nil means a fresh one.
//	        Passing a shared alphabet keeps several random sequences on
//	        disjoint token namespaces, ready for one DP call.
type Options struct {
	Rng   *rand.Rand
	Alpha *Alphabet
}

// DefaultSeed seeds the random source when none is supplied, keeping
// zero-option calls reproducible.
const DefaultSeed int64 = 1

// Option mutates Options.
type Option func(*Options)

// WithRand sets an explicit random source.
func WithRand(r *rand.Rand) Option {
	return func(o *Options) { o.Rng = r }
}

// WithSeed installs a fresh random source seeded deterministically.
func WithSeed(seed int64) Option {
	return func(o *Options) { o.Rng = rand.New(rand.NewSource(seed)) }
}

// WithAlphabet draws token pairs from an existing alphabet instead of a
// fresh one. Its mode must match the requested mode.
func WithAlphabet(a *Alphabet) Option {
	return func(o *Options) { o.Alpha = a }
}

// RandomBalancedSequence generates a random balanced sequence over n
// fresh token pairs, together with the open→close map
// of the alphabet used.
//
// The walk keeps a stack of pending closes: at every step it may open a
// new node (while pairs remain) or close the deepest pending one (while
// the stack is non-empty), chosen by a fair coin when both are legal.
// Forests arise naturally — the stack may empty and reopen. The shapes
// are not uniformly distributed.
//
// Deterministic for a fixed seed. Complexity: O(n).
func RandomBalancedSequence(n int, mode Mode, opts ...Option) (Sequence, OpenToClose, error) {
	// 1) Validate arguments.
	if n < 0 {
		return Sequence{}, nil, fmt.Errorf("balseq: n=%d: %w", n, ErrNegativeCount)
	}
	if err := mode.Validate(); err != nil {
		return Sequence{}, nil, err
	}

	// 2) Resolve options.
	var o Options
	for _, fn := range opts {
		fn(&o)
	}
	if o.Rng == nil {
		o.Rng = rand.New(rand.NewSource(DefaultSeed))
	}
	if o.Alpha == nil {
		alpha, err := NewAlphabet(mode)
		if err != nil {
			return Sequence{}, nil, err
		}
		o.Alpha = alpha
	}
	if o.Alpha.Mode() != mode {
		return Sequence{}, nil, fmt.Errorf("balseq: alphabet mode mismatch: %w", ErrBadMode)
	}

	// 3) Random open/close walk.
	toks := make([]Token, 0, 2*n)
	var stack []Token
	opened := 0
	for opened < n || len(stack) > 0 {
		openNext := opened < n && (len(stack) == 0 || o.Rng.Intn(2) == 0)
		if openNext {
			op, cl, err := o.Alpha.Next()
			if err != nil {
				return Sequence{}, nil, err
			}
			toks = append(toks, op)
			stack = append(stack, cl)
			opened++
			continue
		}
		toks = append(toks, stack[len(stack)-1])
		stack = stack[:len(stack)-1]
	}

	return view(mode, toks), o.Alpha.OpenToClose(), nil
}
