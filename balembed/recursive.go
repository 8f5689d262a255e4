package balembed

// solveRecursive is the top-down memoized recursion over sub-problem
// pairs. Candidate order implements the fixed tie-breaking: the match
// move wins ties (>=), deleting from s1 beats deleting from s2 (>).
func (e *engine) solveRecursive(s1, s2 sv) result {
	// Base case: either forest exhausted.
	if s1.empty() || s2.empty() {
		return result{}
	}

	key := memoKey{k1: s1.key, k2: s2.key}
	if r, ok := e.memo[key]; ok {
		return r
	}

	o1, head1, tail1, headTail1 := e.decomp(s1)
	o2, head2, tail2, headTail2 := e.decomp(s2)

	// Move 1: delete the first root of s1, children reattach in place.
	best := e.solveRecursive(headTail1, s2)

	// Move 2: delete the first root of s2.
	if alt := e.solveRecursive(s1, headTail2); alt.val > best.val {
		best = alt
	}

	// Move 3: match the two roots.
	if score := e.aff(o1, o2); score > 0 {
		resHead := e.solveRecursive(head1, head2)
		resTail := e.solveRecursive(tail1, tail2)
		if val := resHead.val + resTail.val + score; val >= best.val {
			best = result{
				sub1: matchWitness(o1, e.otc[o1], resHead.sub1, resTail.sub1),
				sub2: matchWitness(o2, e.otc[o2], resHead.sub2, resTail.sub2),
				val:  val,
			}
		}
	}

	e.memo[key] = best

	return best
}
