package baliso

import (
	"fmt"

	"github.com/katalvlaran/treealign/balseq"
)

// Decomp is one enumerated decomposition: the sequence itself, its
// leading open token, and the (a, head, tail) split. Head and tail are
// kept apart — the isomorphism recurrence never concatenates them.
type Decomp struct {
	Seq  balseq.Sequence
	Open balseq.Token
	A    balseq.Sequence
	Head balseq.Sequence
	Tail balseq.Sequence
}

// DecompNoCat splits a non-empty balanced sequence into (a, head, tail)
// without offering the head·tail concatenation that the embedding moves
// use. This is the only decomposition the isomorphism recurrence may
// take: dropping a subtree discards its head entirely.
func DecompNoCat(s balseq.Sequence, otc balseq.OpenToClose) (a, head, tail balseq.Sequence, err error) {
	return balseq.Decompose(s, otc)
}

// AllDecompNoCat enumerates every sub-problem reachable from s under
// the isomorphism moves: the closure of {s} under head and tail,
// deduplicated by value key. The result maps Sequence.Key() to the
// decomposition; the empty sequence is never included.
//
// Complexity: O(Σ|d|) over emitted decompositions.
func AllDecompNoCat(s balseq.Sequence, otc balseq.OpenToClose) (map[string]Decomp, error) {
	if err := s.Validate(otc); err != nil {
		return nil, fmt.Errorf("baliso: AllDecompNoCat: %w", err)
	}

	out := make(map[string]Decomp)
	queue := []balseq.Sequence{s}
	var cur balseq.Sequence
	for len(queue) > 0 {
		cur, queue = queue[0], queue[1:]
		if cur.IsEmpty() {
			continue
		}
		key := cur.Key()
		if _, seen := out[key]; seen {
			continue
		}

		a, head, tail := balseq.DecomposeUnsafe(cur, otc)
		out[key] = Decomp{Seq: cur, Open: cur.At(0), A: a, Head: head, Tail: tail}
		queue = append(queue, head, tail)
	}

	return out, nil
}
