package baliso

import (
	"sort"

	"github.com/katalvlaran/treealign/balseq"
)

// dentry is one reachable sub-problem with its no-concat decomposition
// precomputed.
type dentry struct {
	s    sv
	o    balseq.Token
	head sv
	tail sv
}

// allDecompNoCat computes the closure of root under {head, tail},
// deduplicated by value key — the keyed-view twin of AllDecompNoCat.
func (e *engine) allDecompNoCat(root sv) []dentry {
	seen := make(map[string]bool)
	var out []dentry

	queue := []sv{root}
	var s sv
	for len(queue) > 0 {
		s, queue = queue[0], queue[1:]
		if s.empty() || seen[s.key] {
			continue
		}
		seen[s.key] = true

		o, head, tail := e.decompNoCat(s)
		out = append(out, dentry{s: s, o: o, head: head, tail: tail})
		queue = append(queue, head, tail)
	}

	return out
}

// solveIterative fills the memo bottom-up over all closure pairs in
// ascending total length. Candidate order matches solveRecursive.
func (e *engine) solveIterative(s1, s2 sv) result {
	if s1.empty() || s2.empty() {
		return result{}
	}

	d1 := e.allDecompNoCat(s1)
	d2 := e.allDecompNoCat(s2)
	sort.SliceStable(d1, func(i, j int) bool { return d1[i].s.seq.Len() < d1[j].s.seq.Len() })
	sort.SliceStable(d2, func(i, j int) bool { return d2[i].s.seq.Len() < d2[j].s.seq.Len() })

	type pair struct{ i, j int }
	pairs := make([]pair, 0, len(d1)*len(d2))
	for i := range d1 {
		for j := range d2 {
			pairs = append(pairs, pair{i: i, j: j})
		}
	}
	sort.SliceStable(pairs, func(a, b int) bool {
		la := d1[pairs[a].i].s.seq.Len() + d2[pairs[a].j].s.seq.Len()
		lb := d1[pairs[b].i].s.seq.Len() + d2[pairs[b].j].s.seq.Len()

		return la < lb
	})

	lookup := func(a, b sv) result {
		if a.empty() || b.empty() {
			return result{}
		}

		return e.memo[memoKey{k1: a.key, k2: b.key}]
	}

	var x, y dentry
	for _, p := range pairs {
		x, y = d1[p.i], d2[p.j]

		best := lookup(x.tail, y.s)
		if alt := lookup(x.s, y.tail); alt.val > best.val {
			best = alt
		}
		if score := e.aff(x.o, y.o); score > 0 {
			resHead := lookup(x.head, y.head)
			resTail := lookup(x.tail, y.tail)
			if val := resHead.val + resTail.val + score; val >= best.val {
				best = result{
					sub1: matchWitness(x.o, e.otc[x.o], resHead.sub1, resTail.sub1),
					sub2: matchWitness(y.o, e.otc[y.o], resHead.sub2, resTail.sub2),
					val:  val,
				}
			}
		}
		e.memo[memoKey{k1: x.s.key, k2: y.s.key}] = best
	}

	return e.memo[memoKey{k1: s1.key, k2: s2.key}]
}
