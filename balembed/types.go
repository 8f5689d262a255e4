// Package balembed defines options, affinity predicates, and sentinel
// errors for the balanced-embedding DP.
//
// Errors:
//
//	ErrUnknownImpl     - requested engine tag is not available.
//	ErrNilOpenToClose  - the open→close map is nil.
package balembed

import (
	"errors"

	"github.com/katalvlaran/treealign/balseq"
)

// Sentinel errors for the embedding DP entry points.
var (
	// ErrUnknownImpl indicates an engine tag outside AvailableImpls.
	ErrUnknownImpl = errors.New("balembed: unknown impl")

	// ErrNilOpenToClose indicates a nil open→close map.
	ErrNilOpenToClose = errors.New("balembed: open_to_close map is nil")
)

// Impl selects a DP engine.
type Impl string

const (
	// ImplIterative fills the memo bottom-up over all reachable
	// sub-problems. The default engine.
	ImplIterative Impl = "iterative"

	// ImplRecursive is the natural top-down memoized recursion.
	ImplRecursive Impl = "recursive"
)

// AvailableImpls lists the engine tags, default first. Every tag yields
// the same value and, under the fixed tie-breaking, the same witness.
func AvailableImpls() []Impl {
	return []Impl{ImplIterative, ImplRecursive}
}

// Affinity scores a pair of open tokens. A positive score allows the
// two nodes to match and contributes to the objective; zero means the
// pair is incompatible. Scores must be non-negative.
type Affinity func(t1, t2 balseq.Token) float64

// EqualTokens matches identical tokens with score 1.
var EqualTokens Affinity = func(t1, t2 balseq.Token) float64 {
	if t1 == t2 {
		return 1
	}

	return 0
}

// AnyTokens matches every pair with score 1.
var AnyTokens Affinity = func(balseq.Token, balseq.Token) float64 { return 1 }

// Options configures LongestCommonBalancedEmbedding.
//
// Fields:
//
//	Affinity - token compatibility score; nil means EqualTokens.
//	Impl     - engine tag; empty means ImplIterative.
type Options struct {
	Affinity Affinity
	Impl     Impl
}

// DefaultOptions returns the canonical configuration.
func DefaultOptions() Options {
	return Options{Affinity: EqualTokens, Impl: ImplIterative}
}

// Validate checks the engine tag against AvailableImpls.
func (o *Options) Validate() error {
	if o.Impl == "" {
		return nil
	}
	for _, impl := range AvailableImpls() {
		if o.Impl == impl {
			return nil
		}
	}

	return ErrUnknownImpl
}

// Common is the DP result: a pair of balanced sub-sequences encoding
// the common embedded forest in each input, and the total affinity.
// Under a boolean affinity, Value equals the number of matched nodes.
type Common struct {
	Sub1  balseq.Sequence
	Sub2  balseq.Sequence
	Value float64
}
