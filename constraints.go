package triadscc

// buildConstraints runs once, at Solver construction, and populates the
// static adjacency plus the initial State's clause-free-literal counters
// and binary implication lists. It mirrors tdoku's triad encoding: every
// box gets 9 ExactlyOne cell constraints, 6 ExactlyThree triad
// constraints, and 2*3*9 ExactlyOne constraints (horizontal/vertical x
// triad index x value) defining each triad in terms of its three cells;
// and every band of three boxes gets 4 ExactlyOne
// constraints per value per triad index, binding the "within" and
// "across" triads of its three boxes.
func (s *Solver) buildConstraints() {
	var clausesToLiterals [][]LiteralID
	var literalsToClauses [NumLiterals][]ClauseID

	addClauseWithMinimum := func(lits []LiteralID, min int) ClauseID {
		id := ClauseID(len(clausesToLiterals))
		for _, l := range lits {
			literalsToClauses[l] = append(literalsToClauses[l], id)
		}
		clausesToLiterals = append(clausesToLiterals, lits)
		s.initialState.ClauseFreeLiterals = append(
			s.initialState.ClauseFreeLiterals, uint16(len(lits)-1-min))
		if min == 1 && len(lits) == 9 {
			s.positiveCellClauses = append(s.positiveCellClauses, id)
		}
		return id
	}

	addExactlyN := func(lits []LiteralID, n int) {
		addClauseWithMinimum(lits, n)
		if n == 1 {
			for i := 0; i < len(lits)-1; i++ {
				for j := i + 1; j < len(lits); j++ {
					s.addImplication(lits[i], Not(lits[j]), &s.initialState)
					s.addImplication(lits[j], Not(lits[i]), &s.initialState)
				}
			}
			return
		}
		negations := make([]LiteralID, len(lits))
		for i, l := range lits {
			negations[i] = Not(l)
		}
		addClauseWithMinimum(negations, len(negations)-n)
	}

	for box := 0; box < NumBoxes; box++ {
		// ExactlyOne for the 9 cells, ExactlyThree for the 6 triads.
		for elem := 0; elem < NumElemsPerBox-1; elem++ {
			lits := make([]LiteralID, NumValues)
			for val := 0; val < NumValues; val++ {
				lits[val] = Literal(box, elem, val)
			}
			if elem/4 < 3 && elem%4 < 3 {
				addExactlyN(lits, 1)
			} else {
				addExactlyN(lits, 3)
			}
		}
		// Define each triad: the three cells it spans plus its own
		// negated "three values" literal form an ExactlyOne group.
		for val := 0; val < NumValues; val++ {
			for i := 0; i < 3; i++ {
				hTriad := make([]LiteralID, 0, 4)
				vTriad := make([]LiteralID, 0, 4)
				for j := 0; j < 3; j++ {
					hTriad = append(hTriad, Literal(box, i*4+j, val))
					vTriad = append(vTriad, Literal(box, i+j*4, val))
				}
				hTriad = append(hTriad, Not(Literal(box, i*4+3, val)))
				vTriad = append(vTriad, Not(Literal(box, i+12, val)))
				addExactlyN(hTriad, 1)
				addExactlyN(vTriad, 1)
			}
		}
	}

	// Band-level constraints: exactly one triad per row/column of a
	// band carries a given value, expressed both "within" a box's own
	// triad set and "across" the three boxes of the band.
	for val := 0; val < NumValues; val++ {
		for band := 0; band < 3; band++ {
			for i := 0; i < 3; i++ {
				hWithin := make([]LiteralID, 0, 3)
				hAcross := make([]LiteralID, 0, 3)
				vWithin := make([]LiteralID, 0, 3)
				vAcross := make([]LiteralID, 0, 3)
				for j := 0; j < 3; j++ {
					hWithin = append(hWithin, Literal(band*3+i, j*4+3, val))
					hAcross = append(hAcross, Literal(band*3+j, i*4+3, val))
					vWithin = append(vWithin, Literal(i*3+band, j+12, val))
					vAcross = append(vAcross, Literal(j*3+band, i+12, val))
				}
				addExactlyN(hWithin, 1)
				addExactlyN(hAcross, 1)
				addExactlyN(vWithin, 1)
				addExactlyN(vAcross, 1)
			}
		}
	}

	if s.cfg.UseCSRAdjacency {
		s.adjacency = newCSRAdjacency(clausesToLiterals, literalsToClauses[:])
	} else {
		s.adjacency = newNestedAdjacency(clausesToLiterals, literalsToClauses[:])
	}
}
