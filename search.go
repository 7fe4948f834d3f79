package triadscc

// countSolutions is the recursive DPLL driver. It alternates SCC passes
// (which infer forced assignments and pick a branch candidate) with
// branching until either the state is fully assigned, the SCC pass finds
// a conflict, or limitRemaining/the global stop flag cuts the search
// short.
func (s *Solver) countSolutions(st *State, depth int, parallelFirstSplit bool, limitRemaining uint64) SearchStats {
	var out SearchStats
	if limitRemaining == 0 || s.isStopped() {
		return out
	}

	if s.cfg.SCCHeuristic || s.cfg.SCCInference {
		for st.NumAsserted < AllAsserted {
			prevAsserted := st.NumAsserted
			if !s.findStronglyConnectedComponents(st) {
				return out // inconsistent: zero solutions down this path
			}
			if prevAsserted == st.NumAsserted {
				break // fixpoint; nothing more to infer
			}
		}
	}

	if st.NumAsserted == AllAsserted {
		out.Solutions = 1
		s.tryCaptureFirstSolution(st)
		if out.Solutions >= limitRemaining {
			s.setStop()
		}
		s.trace("solved", st)
		return out
	}

	var branchLit LiteralID
	if s.cfg.SCCHeuristic && s.bestComponentLiteral != NoLiteral {
		branchLit = s.bestComponentLiteral
	} else {
		branchLit = s.chooseLiteralByClause(st)
	}

	got := s.branchOnLiteral(branchLit, st, depth, parallelFirstSplit, limitRemaining)
	if got.Solutions >= limitRemaining {
		s.setStop()
	}
	return got
}

// chooseLiteralByClause is the fallback heuristic used when the SCC pass
// produced no branch candidate: among the 9-literal positive ExactlyOne
// cell clauses, pick the one with the fewest remaining candidates, and
// branch on its first unassigned literal.
func (s *Solver) chooseLiteralByClause(st *State) LiteralID {
	minFree := -1
	var which ClauseID
	for _, c := range s.positiveCellClauses {
		free := st.ClauseFreeLiterals[c]
		if minFree == -1 || int(free) < minFree {
			minFree = int(free)
			which = c
		}
	}

	chosen := NoLiteral
	s.adjacency.ForEachLiteralInClause(which, func(l LiteralID) {
		if chosen == NoLiteral && !st.Asserted.Get(Not(l)) {
			chosen = l
		}
	})
	if chosen == NoLiteral {
		// Every literal of the chosen cell clause is already negated,
		// yet the puzzle isn't solved and no conflict was raised by
		// BCP/SCC. That should be unreachable if the clause invariants
		// hold; treat it as a broken invariant rather than silently
		// returning a bad literal.
		panic("triadscc: chooseLiteralByClause found no candidate literal; invariant violated")
	}
	return chosen
}

// branchOnLiteral explores both polarities of lit. The positive branch
// always runs on a freshly cloned State; the negative branch runs in
// place on st, since the caller discards st right after this call
// returns regardless of outcome. Each visited branching node counts as
// one guess (two for a parallel-split forking node, since both sides are
// explored).
func (s *Solver) branchOnLiteral(lit LiteralID, st *State, depth int, parallelFirstSplit bool, limitRemaining uint64) SearchStats {
	var out SearchStats
	if s.isStopped() || limitRemaining == 0 {
		return out
	}
	out.Guesses++

	if parallelFirstSplit && depth == 0 {
		return s.branchParallelDepth1(lit, st, depth, limitRemaining, out)
	}

	left := st.Clone()
	if s.Assert(lit, &left) {
		got := s.countSolutions(&left, depth+1, false, limitRemaining)
		out.Solutions += got.Solutions
		out.Guesses += got.Guesses
		if out.Solutions >= limitRemaining {
			return out
		}
	}

	if s.Assert(Not(lit), st) {
		got := s.countSolutions(st, depth+1, false, limitRemaining-out.Solutions)
		out.Solutions += got.Solutions
		out.Guesses += got.Guesses
	}
	return out
}
