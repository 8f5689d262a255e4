package baliso

import "github.com/katalvlaran/treealign/balseq"

// keyBytes mirrors the sequence key encoding: four bytes per token.
const keyBytes = 4

// sv is a sequence view with its value key precomputed; sub-views slice
// the parent key instead of re-encoding.
type sv struct {
	seq balseq.Sequence
	key string
}

func makeSV(s balseq.Sequence) sv { return sv{seq: s, key: s.Key()} }

func (s sv) empty() bool { return s.seq.IsEmpty() }

// memoKey identifies one sub-problem pair.
type memoKey struct{ k1, k2 string }

// result is a memoized optimum.
type result struct {
	sub1 []balseq.Token
	sub2 []balseq.Token
	val  float64
}

// engine carries per-call DP state.
type engine struct {
	otc  balseq.OpenToClose
	aff  Affinity
	memo map[memoKey]result
}

func newEngine(otc balseq.OpenToClose, aff Affinity) *engine {
	return &engine{otc: otc, aff: aff, memo: make(map[memoKey]result)}
}

// decompNoCat is DecompNoCat lifted to keyed views. No head·tail
// concatenation exists in this package's move set.
func (e *engine) decompNoCat(s sv) (o balseq.Token, head, tail sv) {
	a, h, t := balseq.DecomposeUnsafe(s.seq, e.otc)
	la := a.Len() * keyBytes

	o = s.seq.At(0)
	head = sv{seq: h, key: s.key[keyBytes : la-keyBytes]}
	tail = sv{seq: t, key: s.key[la:]}

	return o, head, tail
}

// matchWitness assembles o·sub(head)·c·sub(tail) for one side.
func matchWitness(o, c balseq.Token, headSub, tailSub []balseq.Token) []balseq.Token {
	out := make([]balseq.Token, 0, 2+len(headSub)+len(tailSub))
	out = append(out, o)
	out = append(out, headSub...)
	out = append(out, c)
	out = append(out, tailSub...)

	return out
}
