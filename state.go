package triadscc

// State is the mutable search node. It is a value type and is cheap to
// clone: Clone copies the one slice it owns so that a branch's counters
// never alias its parent's.
//
// Invariants (see Solver.buildConstraints and Solver.Assert for how they
// are maintained):
//
//  1. For every clause c, ClauseFreeLiterals[c] equals len(c)-1-min(c)
//     minus the number of c's literals whose negation is asserted.
//  2. No variable has both polarities asserted (Asserted.PosOrNeg only
//     reports whether either polarity is set; Solver.Assert is what
//     enforces it).
//  3. Every literal at index < ImplicationCounts[l] in the solver's
//     implication arena is a valid implication that holds whenever l is
//     asserted.
type State struct {
	// Asserted has a set bit for every literal currently asserted true.
	Asserted FastBitset
	// ClauseFreeLiterals[c] is the remaining budget before clause c
	// starts producing binary implications (see materializeBinaries).
	ClauseFreeLiterals []uint16
	// ImplicationCounts[l] is the length of the active prefix of the
	// solver's implications[l] arena for this state.
	ImplicationCounts [NumLiterals]uint16
	// NumAsserted is the number of set bits in Asserted. The puzzle is
	// solved once NumAsserted == AllAsserted.
	NumAsserted uint32
}

// Clone returns an independent copy of st. ImplicationCounts is an array
// and is deep-copied by the struct assignment alone; ClauseFreeLiterals is
// a slice and needs an explicit copy.
func (st State) Clone() State {
	clone := st
	clone.ClauseFreeLiterals = append([]uint16(nil), st.ClauseFreeLiterals...)
	return clone
}
