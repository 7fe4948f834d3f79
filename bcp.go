package triadscc

// Assert tries to extend st with lit asserted true, propagating its
// consequences. It returns false on a conflict (lit's negation is already
// asserted somewhere on the current path); the caller must then discard
// st, since it may have been partially mutated before the conflict was
// found.
//
// Mutation is in-place and recursive: after setting lit, every clause
// that loses a candidate literal has its free-literal budget decremented,
// and once a clause's budget reaches zero its remaining literals are
// wired up as binary implications (materializeBinaries). Then every
// literal already known to be implied by lit is asserted in turn.
func (s *Solver) Assert(lit LiteralID, st *State) bool {
	if st.Asserted.Get(lit) {
		return true
	}
	if st.Asserted.Get(Not(lit)) {
		return false
	}
	st.Asserted.Set(lit)
	st.NumAsserted++
	s.stats.BCPSteps++

	s.adjacency.ForEachClauseOfNotLiteral(lit, func(c ClauseID) {
		st.ClauseFreeLiterals[c]--
		if st.ClauseFreeLiterals[c] == 0 {
			s.materializeBinaries(c, st)
		}
	})

	impls := s.implications[lit]
	n := st.ImplicationCounts[lit]
	for i := uint16(0); i < n; i++ {
		if !s.Assert(impls[i], st) {
			return false
		}
	}
	return true
}

// materializeBinaries is called the moment clause c's free-literal budget
// reaches zero: only min(c)+1 of its literals remain un-negated. If
// exactly two remain, asserting the negation of either survivor now
// implies the other, so that binary fact is recorded directly. If more
// than two remain (only possible for a clause built with min > 1, once it
// reaches its floor), the same pairwise implication is recorded among all
// of them.
//
// The comparison point is the clause's *original* free-literal budget
// (s.initialState.ClauseFreeLiterals, which never changes after setup),
// not st's current value — st's budget is zero by the time this runs, so
// only the original tells us how many literals the clause started with
// room to lose.
func (s *Solver) materializeBinaries(c ClauseID, st *State) {
	size := s.adjacency.ClauseSize(c)
	survivorsExpected := size - int(s.initialState.ClauseFreeLiterals[c])

	if survivorsExpected == 2 {
		first, second := NoLiteral, NoLiteral
		s.adjacency.ForEachLiteralInClause(c, func(l LiteralID) {
			if st.Asserted.Get(Not(l)) {
				return
			}
			if first == NoLiteral {
				first = l
			} else if second == NoLiteral {
				second = l
			}
		})
		s.addImplication(Not(first), second, st)
		s.addImplication(Not(second), first, st)
		return
	}

	s.survivorScratch = s.survivorScratch[:0]
	s.adjacency.ForEachLiteralInClause(c, func(l LiteralID) {
		if !st.Asserted.Get(Not(l)) {
			s.survivorScratch = append(s.survivorScratch, l)
		}
	})
	survivors := s.survivorScratch
	for i := 0; i < len(survivors)-1; i++ {
		for j := i + 1; j < len(survivors); j++ {
			s.addImplication(Not(survivors[i]), survivors[j], st)
			s.addImplication(Not(survivors[j]), survivors[i], st)
		}
	}
}
