// Package subtree defines options, affinity modes, and sentinel errors
// for the tree-level API.
//
// Errors:
//
//	ErrEmptyForest      - an input forest has no vertices.
//	ErrUnsupportedGraph - an input is not an ordered directed forest.
//	ErrUnknownAffinity  - the affinity mode is unrecognized or incomplete.
package subtree

import (
	"errors"

	"github.com/katalvlaran/treealign/balseq"
	"github.com/katalvlaran/treealign/ograph"
)

// Sentinel errors for tree-level validation.
var (
	// ErrEmptyForest indicates an empty input where a non-empty forest
	// was required.
	ErrEmptyForest = errors.New("subtree: input forest is empty")

	// ErrUnsupportedGraph indicates an input outside the ordered
	// directed forest class (undirected, cyclic, or multi-parent).
	ErrUnsupportedGraph = errors.New("subtree: input is not an ordered directed forest")

	// ErrUnknownAffinity indicates an unrecognized affinity mode, or
	// AffinityCustom without a Score function.
	ErrUnknownAffinity = errors.New("subtree: unknown node affinity")
)

// AffinityMode selects how two vertices are scored for matching.
type AffinityMode uint8

const (
	// AffinityEqual matches vertices whose labels are equal; a vertex
	// without an explicit label uses its ID as the label. The default.
	AffinityEqual AffinityMode = iota

	// AffinityAuto compares labels when both vertices carry one and
	// falls back to vertex-ID equality otherwise.
	AffinityAuto

	// AffinityAny matches every pair with score 1, so the optimum is
	// governed by shape alone.
	AffinityAny

	// AffinityCustom delegates to Options.Score.
	AffinityCustom
)

// Options configures the tree-level operations.
//
// Fields:
//
//	Affinity - vertex compatibility mode; AffinityEqual by default.
//	Score    - custom scorer, required iff Affinity == AffinityCustom.
//	           Must return non-negative values; 0 means "no match".
//	Impl     - DP engine tag forwarded to balembed/baliso; empty means
//	           the iterative default.
//	Mode     - container mode for the balanced encoding; the zero value
//	           is balseq.ModeDefault.
type Options struct {
	Affinity AffinityMode
	Score    func(v1, v2 ograph.Vertex) float64
	Impl     string
	Mode     balseq.Mode
}

// DefaultOptions returns the canonical configuration.
func DefaultOptions() Options {
	return Options{Affinity: AffinityEqual, Mode: balseq.ModeDefault}
}

// Validate checks the affinity configuration; the engine tag is
// validated by the DP package it is forwarded to.
func (o *Options) Validate() error {
	if o.Affinity > AffinityCustom {
		return ErrUnknownAffinity
	}
	if o.Affinity == AffinityCustom && o.Score == nil {
		return ErrUnknownAffinity
	}

	return o.Mode.Validate()
}
