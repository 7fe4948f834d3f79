package triadscc

import "sync/atomic"

// Solver holds everything that is static after setup (the constraint
// adjacency, the implication arena, the initial State) plus the scratch
// state needed to run one search: the SCC working stacks and the
// parallel-split bookkeeping. A Solver is built once per Solve call;
// cloneForParallel makes an independent copy (sharing only the read-only
// static structures) for the depth-1 parallel split's left-hand worker.
type Solver struct {
	cfg Config

	// Static after setup.
	adjacency           Adjacency
	positiveCellClauses []ClauseID
	implications        [NumLiterals][]LiteralID
	initialState        State

	// SCC scratch: recomputed at the start of every
	// findStronglyConnectedComponents call, not part of State, and not
	// copied when State is cloned.
	preorderCounter       int
	preorderIndex         [NumLiterals]int
	stackP                []LiteralID
	stackS                []LiteralID
	literalToComponent    [NumLiterals]int
	nextComponentID       int
	bestComponentLiteral  LiteralID
	bestComponentSize     int

	// Reused scratch for materializeBinaries' "more than 2 survivors"
	// branch, to avoid an allocation on every such clause.
	survivorScratch []LiteralID

	// Parallel bookkeeping, shared only between this Solver and the
	// calling goroutine that owns it (a cloned Solver used by the
	// left-hand depth-1 worker has its own independent copies of these).
	// All relaxed: they gate termination and first-solution capture but
	// establish no ordering over user data, which is always copied or
	// solver-local.
	stop               uint32
	wroteFirstSolution uint32
	result             State

	stats Stats
}

// NewSolver builds the static constraint adjacency and initial state for
// cfg and returns a Solver ready to accept puzzles via SolveSudoku.
func NewSolver(cfg Config) *Solver {
	s := &Solver{cfg: cfg}
	s.buildConstraints()
	s.result = s.initialState
	return s
}

// cloneForParallel duplicates s for the depth-1 parallel split's left-hand
// worker. Static adjacency and the positive-cell-clause index are shared
// by reference (read-only during search); the implication arena is
// deep-copied because Assert appends to it, and the two branches must not
// share that storage. Atomics are reset.
func (s *Solver) cloneForParallel() *Solver {
	clone := &Solver{
		cfg:                 s.cfg,
		adjacency:           s.adjacency,
		positiveCellClauses: s.positiveCellClauses,
		initialState:        s.initialState,
	}
	for lit, impls := range s.implications {
		if impls != nil {
			clone.implications[lit] = append([]LiteralID(nil), impls...)
		}
	}
	clone.result = clone.initialState
	return clone
}

func (s *Solver) isStopped() bool {
	return atomic.LoadUint32(&s.stop) != 0
}

func (s *Solver) setStop() {
	atomic.StoreUint32(&s.stop, 1)
}

// tryCaptureFirstSolution records st as s.result iff no solution has been
// captured by s yet, atomically. Returns true iff it won the race.
func (s *Solver) tryCaptureFirstSolution(st *State) bool {
	if atomic.CompareAndSwapUint32(&s.wroteFirstSolution, 0, 1) {
		s.result = st.Clone()
		return true
	}
	return false
}

// addImplication appends the fact "asserting from implies to" to from's
// implication list for state st. The backing array is owned by the
// Solver and reused across state copies; only the per-state length
// (ImplicationCounts) distinguishes what is "active" for st. A later
// reassertion of a longer branch overwrites stale entries in place when
// there is room, and grows the array only when there isn't — unwinding a
// branch is therefore free, since it's just forgetting a length.
func (s *Solver) addImplication(from, to LiteralID, st *State) {
	impls := s.implications[from]
	n := st.ImplicationCounts[from]
	if int(n) == len(impls) {
		s.implications[from] = append(impls, to)
	} else {
		s.implications[from][n] = to
	}
	st.ImplicationCounts[from] = n + 1
	s.stats.Implications++
}
