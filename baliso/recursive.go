package baliso

// solveRecursive is the top-down memoized recursion. The deletion moves
// drop entire first subtrees; interior structure can never be
// contracted away. Tie-breaking: match wins ties, dropping from s1
// beats dropping from s2.
func (e *engine) solveRecursive(s1, s2 sv) result {
	if s1.empty() || s2.empty() {
		return result{}
	}

	key := memoKey{k1: s1.key, k2: s2.key}
	if r, ok := e.memo[key]; ok {
		return r
	}

	o1, head1, tail1 := e.decompNoCat(s1)
	o2, head2, tail2 := e.decompNoCat(s2)

	// Move 1: prune the whole first subtree of s1.
	best := e.solveRecursive(tail1, s2)

	// Move 2: prune the whole first subtree of s2.
	if alt := e.solveRecursive(s1, tail2); alt.val > best.val {
		best = alt
	}

	// Move 3: match the two roots; children align against children,
	// later siblings against later siblings.
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
