package triadscc

import (
	"sync"
	"sync/atomic"
)

// parallelOutcome carries one depth-1 worker's result back across the
// goroutine boundary: its search stats, and — if it was the side that
// captured the first solution — a copy of that solution.
type parallelOutcome struct {
	stats      SearchStats
	wroteFirst bool
	result     State
}

// branchParallelDepth1 forks the first branching decision of the search:
// the positive branch runs on a goroutine against a cloned Solver (so it
// has its own independent implication arena to push into), while the
// negative branch runs on the calling goroutine against its own State
// copy. Only this, the very first branch decision, is ever parallelized;
// everything below depth 0 is sequential.
func (s *Solver) branchParallelDepth1(lit LiteralID, st *State, depth int, limitRemaining uint64, out SearchStats) SearchStats {
	// The forking node counts as two guesses: both branches are
	// explored, concurrently, and each is a real decision.
	out.Guesses++

	leftState := st.Clone()
	leftSolver := s.cloneForParallel()

	var wg sync.WaitGroup
	wg.Add(1)
	var leftOut parallelOutcome
	go func() {
		defer wg.Done()
		if leftSolver.Assert(lit, &leftState) {
			leftOut.stats = leftSolver.countSolutions(&leftState, depth+1, false, limitRemaining)
			if leftOut.stats.Solutions > 0 && atomic.LoadUint32(&leftSolver.wroteFirstSolution) != 0 {
				leftOut.wroteFirst = true
				leftOut.result = leftSolver.result
			}
		}
	}()

	rightState := st.Clone()
	var rightStats SearchStats
	if s.Assert(Not(lit), &rightState) {
		rightStats = s.countSolutions(&rightState, depth+1, false, limitRemaining)
	}

	wg.Wait()

	out.Solutions += leftOut.stats.Solutions + rightStats.Solutions
	out.Guesses += leftOut.stats.Guesses + rightStats.Guesses

	// Adopt the left worker's solution only if we haven't already
	// captured one ourselves.
	if leftOut.wroteFirst && atomic.CompareAndSwapUint32(&s.wroteFirstSolution, 0, 1) {
		s.result = leftOut.result
	}

	// Each worker enumerates up to limitRemaining on its own, so the sum
	// is capped here.
	if out.Solutions >= limitRemaining {
		out.Solutions = limitRemaining
		s.setStop()
	}
	return out
}
