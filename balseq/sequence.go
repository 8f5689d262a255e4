package balseq

import (
	"encoding/binary"
	"fmt"
	"strings"
)

// Sequence is an immutable run of tokens tagged with its container mode.
//
// Slice returns zero-copy views into the same backing; Concat allocates.
// Callers must not mutate a slice passed to New after construction.
type Sequence struct {
	mode Mode
	toks []Token
}

// Empty returns the empty sequence in the given mode. It encodes the
// empty forest and is the DP base case.
func Empty(mode Mode) Sequence { return Sequence{mode: mode} }

// New wraps toks as a Sequence. The slice is copied so later caller-side
// mutation cannot corrupt memo keys.
func New(mode Mode, toks []Token) Sequence {
	return Sequence{mode: mode, toks: append([]Token(nil), toks...)}
}

// view wraps toks without copying; internal constructor for slices.
func view(mode Mode, toks []Token) Sequence { return Sequence{mode: mode, toks: toks} }

// Mode returns the container mode tag.
func (s Sequence) Mode() Mode { return s.mode }

// Len returns the number of tokens.
func (s Sequence) Len() int { return len(s.toks) }

// IsEmpty reports whether the sequence has no tokens.
func (s Sequence) IsEmpty() bool { return len(s.toks) == 0 }

// At returns the i-th token.
func (s Sequence) At(i int) Token { return s.toks[i] }

// Tokens returns a copy of the underlying tokens.
func (s Sequence) Tokens() []Token { return append([]Token(nil), s.toks...) }

// Slice returns the zero-copy view s[lo:hi].
func (s Sequence) Slice(lo, hi int) Sequence { return view(s.mode, s.toks[lo:hi:hi]) }

// Concat returns a fresh sequence holding s followed by t.
func (s Sequence) Concat(t Sequence) Sequence {
	out := make([]Token, 0, len(s.toks)+len(t.toks))
	out = append(out, s.toks...)
	out = append(out, t.toks...)

	return view(s.mode, out)
}

// Key returns a value-based memo key: four little-endian bytes per
// token. Sequences that are equal as token runs produce equal keys no
// matter which slices or concatenations they came from.
func (s Sequence) Key() string { return tokenKey(s.toks) }

// Equal reports token-wise equality; modes are presentation only and do
// not participate.
func (s Sequence) Equal(t Sequence) bool {
	if len(s.toks) != len(t.toks) {
		return false
	}
	for i := range s.toks {
		if s.toks[i] != t.toks[i] {
			return false
		}
	}

	return true
}

// String renders the sequence: a rune string for chr modes, a bracketed
// number list otherwise.
func (s Sequence) String() string {
	if s.mode.Item == ItemChr {
		var b strings.Builder
		for _, t := range s.toks {
			b.WriteRune(rune(t))
		}

		return b.String()
	}

	parts := make([]string, len(s.toks))
	for i, t := range s.toks {
		parts[i] = fmt.Sprintf("%d", t)
	}

	return "[" + strings.Join(parts, " ") + "]"
}

// Validate checks that every token belongs to the alphabet described by
// otc and that the sequence nests properly. Complexity: O(len).
func (s Sequence) Validate(otc OpenToClose) error {
	// Close alphabet derived once from the open→close range.
	closes := make(map[Token]bool, len(otc))
	for _, c := range otc {
		closes[c] = true
	}

	var stack []Token
	for i, t := range s.toks {
		if c, open := otc[t]; open {
			stack = append(stack, c)
			continue
		}
		if !closes[t] {
			return fmt.Errorf("balseq: token %d at position %d: %w", t, i, ErrUnknownToken)
		}
		if len(stack) == 0 || stack[len(stack)-1] != t {
			return fmt.Errorf("balseq: close token %d at position %d: %w", t, i, ErrUnbalanced)
		}
		stack = stack[:len(stack)-1]
	}
	if len(stack) != 0 {
		return fmt.Errorf("balseq: %d unclosed opens: %w", len(stack), ErrUnbalanced)
	}

	return nil
}

// tokenKey encodes tokens as a compact byte string usable as a map key.
func tokenKey(toks []Token) string {
	b := make([]byte, 4*len(toks))
	for i, t := range toks {
		binary.LittleEndian.PutUint32(b[4*i:], uint32(t))
	}

	return string(b)
}
