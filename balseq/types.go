// Package balseq defines tokens, container modes, and sentinel errors
// for balanced sequences.
//
// Errors:
//
//	ErrBadMode           - unsupported (ItemType, ContainerType) pair.
//	ErrEmptySequence     - a non-empty sequence was required.
//	ErrUnbalanced        - opens and closes do not nest.
//	ErrUnknownToken      - a token outside the open/close alphabets.
//	ErrAlphabetExhausted - the chr alphabet ran out of code points.
//	ErrNegativeCount     - a negative node count was requested.
//	ErrNilRand           - a random source was required but nil.
package balseq

import "errors"

// Sentinel errors for balanced-sequence operations.
var (
	// ErrBadMode indicates an unsupported item/container combination.
	ErrBadMode = errors.New("balseq: unsupported container mode")

	// ErrEmptySequence indicates an operation that needs a non-empty sequence.
	ErrEmptySequence = errors.New("balseq: sequence is empty")

	// ErrUnbalanced indicates the sequence is not properly nested.
	ErrUnbalanced = errors.New("balseq: sequence is not balanced")

	// ErrUnknownToken indicates a token outside the open→close map's domain and range,
	// or, from Decompose, a leading token that is not an open.
	ErrUnknownToken = errors.New("balseq: token not in alphabet")

	// ErrAlphabetExhausted indicates no more token pairs can be allocated.
	ErrAlphabetExhausted = errors.New("balseq: alphabet exhausted")

	// ErrNegativeCount indicates a negative number of nodes was requested.
	ErrNegativeCount = errors.New("balseq: node count must be non-negative")

	// ErrNilRand indicates a nil random source.
	ErrNilRand = errors.New("balseq: rand source is nil")
)

// Token is an opaque symbol of a balanced alphabet. Open and close
// tokens are drawn from disjoint ranges; the pairing between them is
// carried explicitly by an OpenToClose map, never inferred from values.
type Token int32

// OpenToClose maps every open token to its matching close token. It is
// total and injective over the open alphabet; its domain doubles as the
// "is this token an open?" test.
type OpenToClose map[Token]Token

// ItemType selects the token value style.
type ItemType uint8

const (
	// ItemNumber: open tokens are 1,2,3,…; close tokens are -1,-2,-3,….
	ItemNumber ItemType = iota

	// ItemChr: open tokens are runes from one range, close tokens runes
	// from a disjoint higher range.
	ItemChr
)

// ContainerType selects the presentation of a sequence.
type ContainerType uint8

const (
	// ContainerVector: a mutable-slice flavored sequence of numbers.
	ContainerVector ContainerType = iota

	// ContainerString: the sequence renders as a string of runes.
	ContainerString

	// ContainerTuple: an immutable tuple-flavored sequence.
	ContainerTuple
)

// Mode is a (ItemType, ContainerType) pair. Only four combinations are
// supported; Validate rejects the rest.
type Mode struct {
	Item      ItemType
	Container ContainerType
}

// ModeDefault is (Number, Vector) — the cheapest mode for the DP.
var ModeDefault = Mode{Item: ItemNumber, Container: ContainerVector}

// Modes lists every supported container mode.
func Modes() []Mode {
	return []Mode{
		{Item: ItemNumber, Container: ContainerVector},
		{Item: ItemNumber, Container: ContainerTuple},
		{Item: ItemChr, Container: ContainerString},
		{Item: ItemChr, Container: ContainerTuple},
	}
}

// Validate reports whether the mode is one of the supported four.
func (m Mode) Validate() error {
	for _, ok := range Modes() {
		if m == ok {
			return nil
		}
	}

	return ErrBadMode
}
