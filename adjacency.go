package triadscc

// Adjacency is the read-only, static-after-setup mapping between clauses
// and literals that BCP and the SCC engine are parameterized over. Two
// backends satisfy it: a nested-slice implementation and a compressed
// sparse row (CSR) implementation; both behave identically and differ only
// in memory layout. The backend is chosen once, at Solver construction,
// by Config.UseCSRAdjacency.
type Adjacency interface {
	// ForEachClauseOfNotLiteral calls f once for every clause that
	// contains Not(lit) (the clauses weakened by asserting lit).
	ForEachClauseOfNotLiteral(lit LiteralID, f func(ClauseID))
	// ForEachLiteralInClause calls f once for every literal in clause c.
	ForEachLiteralInClause(c ClauseID, f func(LiteralID))
	// ClauseSize returns the number of literals in clause c.
	ClauseSize(c ClauseID) int
}

// nestedAdjacency stores clause->literals and literal->clauses as plain
// slices of slices.
type nestedAdjacency struct {
	clausesToLiterals [][]LiteralID
	literalsToClauses [][]ClauseID
}

func newNestedAdjacency(clausesToLiterals [][]LiteralID, literalsToClauses [][]ClauseID) *nestedAdjacency {
	return &nestedAdjacency{
		clausesToLiterals: clausesToLiterals,
		literalsToClauses: literalsToClauses,
	}
}

func (a *nestedAdjacency) ForEachClauseOfNotLiteral(lit LiteralID, f func(ClauseID)) {
	for _, c := range a.literalsToClauses[Not(lit)] {
		f(c)
	}
}

func (a *nestedAdjacency) ForEachLiteralInClause(c ClauseID, f func(LiteralID)) {
	for _, l := range a.clausesToLiterals[c] {
		f(l)
	}
}

func (a *nestedAdjacency) ClauseSize(c ClauseID) int {
	return len(a.clausesToLiterals[c])
}

// csrAdjacency is the compressed-sparse-row backend: an offset array plus
// flat edge arrays, for both directions of the mapping.
type csrAdjacency struct {
	clauseEdges []LiteralID // literals, concatenated per clause
	clauseOff   []uint32    // len(clausesToLiterals)+1

	literalEdges []ClauseID // clauses, concatenated per literal
	literalOff   [NumLiterals + 1]uint32
}

func newCSRAdjacency(clausesToLiterals [][]LiteralID, literalsToClauses [][]ClauseID) *csrAdjacency {
	a := &csrAdjacency{}

	a.clauseOff = make([]uint32, len(clausesToLiterals)+1)
	var acc uint32
	for c, lits := range clausesToLiterals {
		a.clauseOff[c] = acc
		acc += uint32(len(lits))
	}
	a.clauseOff[len(clausesToLiterals)] = acc
	a.clauseEdges = make([]LiteralID, 0, acc)
	for _, lits := range clausesToLiterals {
		a.clauseEdges = append(a.clauseEdges, lits...)
	}

	a.literalOff[0] = 0
	for l := 0; l < NumLiterals; l++ {
		a.literalOff[l+1] = a.literalOff[l] + uint32(len(literalsToClauses[l]))
	}
	a.literalEdges = make([]ClauseID, a.literalOff[NumLiterals])
	cur := a.literalOff
	for l := 0; l < NumLiterals; l++ {
		for _, c := range literalsToClauses[l] {
			a.literalEdges[cur[l]] = c
			cur[l]++
		}
	}
	return a
}

func (a *csrAdjacency) ForEachClauseOfNotLiteral(lit LiteralID, f func(ClauseID)) {
	neg := Not(lit)
	b, e := a.literalOff[neg], a.literalOff[neg+1]
	for p := b; p < e; p++ {
		f(a.literalEdges[p])
	}
}

func (a *csrAdjacency) ForEachLiteralInClause(c ClauseID, f func(LiteralID)) {
	b, e := a.clauseOff[c], a.clauseOff[c+1]
	for p := b; p < e; p++ {
		f(a.clauseEdges[p])
	}
}

func (a *csrAdjacency) ClauseSize(c ClauseID) int {
	return int(a.clauseOff[c+1] - a.clauseOff[c])
}
