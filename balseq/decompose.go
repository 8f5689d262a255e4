package balseq

import "fmt"

// Decompose splits a non-empty balanced sequence s into (a, head, tail)
// where s = a·tail and a = open·head·close:
//
//	a    — the first top-level subtree as a balanced sub-sequence,
//	head — the interior of that subtree (its children), balanced,
//	tail — the remaining sibling subtrees, balanced.
//
// All three results are zero-copy views into s. The scan stops at the
// matching close of s[0], so the cost is O(|a|), not O(|s|) — the DPs
// lean on that bound.
//
// A leading token that is not an open of otc (a close token or a
// foreign one) reports ErrUnknownToken.
func Decompose(s Sequence, otc OpenToClose) (a, head, tail Sequence, err error) {
	if s.IsEmpty() {
		return a, head, tail, ErrEmptySequence
	}

	want, open := otc[s.toks[0]]
	if !open {
		return a, head, tail, fmt.Errorf("balseq: leading token %d: %w", s.toks[0], ErrUnknownToken)
	}

	// Depth-counting scan for the close matching s[0].
	depth := 0
	var t Token
	for i := 0; i < len(s.toks); i++ {
		t = s.toks[i]
		if _, isOpen := otc[t]; isOpen {
			depth++
			continue
		}
		depth--
		if depth == 0 {
			if t != want {
				return a, head, tail, fmt.Errorf("balseq: close %d does not match open %d: %w",
					t, s.toks[0], ErrUnbalanced)
			}

			return s.Slice(0, i+1), s.Slice(1, i), s.Slice(i+1, s.Len()), nil
		}
		if depth < 0 {
			break
		}
	}

	return a, head, tail, fmt.Errorf("balseq: no matching close for %d: %w", s.toks[0], ErrUnbalanced)
}

// DecomposeUnsafe is Decompose without validation. Precondition: s is
// non-empty and balanced over otc; violating it panics or returns
// garbage. The DP hot paths call this after validating whole inputs
// once at entry.
func DecomposeUnsafe(s Sequence, otc OpenToClose) (a, head, tail Sequence) {
	depth := 0
	for i := 0; i < len(s.toks); i++ {
		if _, isOpen := otc[s.toks[i]]; isOpen {
			depth++
		} else if depth--; depth == 0 {
			return s.Slice(0, i+1), s.Slice(1, i), s.Slice(i+1, s.Len())
		}
	}
	panic("balseq: DecomposeUnsafe on unbalanced sequence")
}
