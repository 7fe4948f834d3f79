package triadscc

// findStronglyConnectedComponents runs a path-based SCC traversal over
// the binary implication graph, visiting every unresolved, valid,
// even-indexed (positive) literal that hasn't been preordered yet. Beyond
// classical SCC bookkeeping, each visit may, via the inference rule,
// assert new literals; a conflict during one of those assertions aborts
// the whole pass.
//
// As a side effect it leaves s.bestComponentLiteral set to the best
// branch candidate found (or NoLiteral if none qualified): the largest
// component discovered whose negation has no component of its own yet.
func (s *Solver) findStronglyConnectedComponents(st *State) bool {
	s.preorderCounter = 0
	for i := range s.preorderIndex {
		s.preorderIndex[i] = -1
	}
	s.stackP = s.stackP[:0]
	s.stackS = s.stackS[:0]
	for i := range s.literalToComponent {
		s.literalToComponent[i] = -1
	}
	s.nextComponentID = 0
	s.bestComponentLiteral = NoLiteral
	s.bestComponentSize = -1

	s.stats.SCCRuns++

	for lit := LiteralID(0); lit < NumLiterals; lit += 2 {
		if s.preorderIndex[lit] == -1 && ValidLiteral(lit) && !st.Asserted.PosOrNeg(lit) {
			if !s.sccVisit(lit, st) {
				return false
			}
		}
	}
	return true
}

// sccVisit is the recursive core of the path-based SCC algorithm,
// augmented with the inference rule: on entering lit, if some ancestor
// still on stackP was discovered no later than Not(lit), that ancestor's
// subtree reaches both polarities of lit's variable and so the ancestor
// itself must be false.
func (s *Solver) sccVisit(lit LiteralID, st *State) bool {
	if s.cfg.SCCInference {
		commonAncestor := NoLiteral
		notPreorder := s.preorderIndex[Not(lit)]
		for _, ancestor := range s.stackP {
			if s.preorderIndex[ancestor] <= notPreorder {
				commonAncestor = ancestor
			} else {
				break
			}
		}
		if commonAncestor != NoLiteral {
			if !s.Assert(Not(commonAncestor), st) {
				return false
			}
			if st.Asserted.Get(lit) {
				return true
			}
		}
	}

	s.preorderIndex[lit] = s.preorderCounter
	s.preorderCounter++
	s.stackP = append(s.stackP, lit)
	s.stackS = append(s.stackS, lit)

	impls := s.implications[lit]
	n := st.ImplicationCounts[lit]
implicationsLoop:
	for i := uint16(0); i < n; i++ {
		implication := impls[i]
		switch {
		case st.Asserted.Get(implication):
			// Already-asserted implications correspond to subsumed
			// binary clauses and carry no further information.
		case s.preorderIndex[implication] == -1:
			if !s.sccVisit(implication, st) {
				return false
			}
			if s.cfg.SCCInference && st.Asserted.PosOrNeg(lit) {
				// Exploring that subtree resolved lit's own
				// variable (via inference); stop exploring further
				// implications, but still finish this visit below
				// so lit's own component bookkeeping is closed out.
				break implicationsLoop
			}
		case s.literalToComponent[implication] == -1:
			for s.preorderIndex[s.stackP[len(s.stackP)-1]] > s.preorderIndex[implication] {
				s.stackP = s.stackP[:len(s.stackP)-1]
			}
		}
	}

	if lit == s.stackP[len(s.stackP)-1] {
		s.stackP = s.stackP[:len(s.stackP)-1]
		componentSize := 0
		for i := len(s.stackS) - 1; i >= 0; i-- {
			componentSize++
			if s.stackS[i] == lit {
				break
			}
		}
		if !st.Asserted.PosOrNeg(lit) {
			negationHasComponent := s.literalToComponent[Not(lit)] >= 0
			for i := len(s.stackS) - componentSize; i < len(s.stackS); i++ {
				s.literalToComponent[s.stackS[i]] = s.nextComponentID
			}
			// If the negation already has a component, it's of the
			// same topological standing; prefer it, since there may
			// be a path of implication from this component to it.
			// Otherwise, prioritize the largest component seen.
			if !negationHasComponent && componentSize > s.bestComponentSize {
				s.bestComponentSize = componentSize
				s.bestComponentLiteral = lit
			}
			s.nextComponentID++
		}
		s.stackS = s.stackS[:len(s.stackS)-componentSize]
	}
	return true
}
