package balembed

import "github.com/katalvlaran/treealign/balseq"

// keyBytes is the size of one token inside a memo key; sub-sequence
// keys are substrings of their parent's key, so slicing stays O(1).
const keyBytes = 4

// sv is a sequence view with its value key precomputed. Equal token
// runs always carry equal keys, which is what lets sub-problems that
// coincide across recursion paths share a single memo row.
type sv struct {
	seq balseq.Sequence
	key string
}

func makeSV(s balseq.Sequence) sv { return sv{seq: s, key: s.Key()} }

func (s sv) empty() bool { return s.seq.IsEmpty() }

// memoKey identifies one sub-problem pair.
type memoKey struct{ k1, k2 string }

// result is a memoized optimum: the witness sub-sequences (token runs)
// and their total affinity value.
type result struct {
	sub1 []balseq.Token
	sub2 []balseq.Token
	val  float64
}

// engine carries the per-call state shared by both DP variants.
type engine struct {
	otc  balseq.OpenToClose
	aff  Affinity
	memo map[memoKey]result
}

func newEngine(otc balseq.OpenToClose, aff Affinity) *engine {
	return &engine{otc: otc, aff: aff, memo: make(map[memoKey]result)}
}

// decomp is the head/tail decomposition lifted to keyed views:
// s = a·tail with a = o·head·c, plus the concatenation head·tail used
// by the deletion moves. Keys of a, head and tail are substrings of
// s.key; only headTail allocates.
func (e *engine) decomp(s sv) (o balseq.Token, head, tail, headTail sv) {
	a, h, t := balseq.DecomposeUnsafe(s.seq, e.otc)
	la := a.Len() * keyBytes

	o = s.seq.At(0)
	head = sv{seq: h, key: s.key[keyBytes : la-keyBytes]}
	tail = sv{seq: t, key: s.key[la:]}
	headTail = sv{seq: h.Concat(t), key: head.key + tail.key}

	return o, head, tail, headTail
}

// matchWitness assembles o·sub(head)·c·sub(tail) for one side of the
// match move.
func matchWitness(o, c balseq.Token, headSub, tailSub []balseq.Token) []balseq.Token {
	out := make([]balseq.Token, 0, 2+len(headSub)+len(tailSub))
	out = append(out, o)
	out = append(out, headSub...)
	out = append(out, c)
	out = append(out, tailSub...)

	return out
}
