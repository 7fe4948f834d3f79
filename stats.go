package triadscc

import (
	"fmt"
	"io"

	"github.com/kr/pretty"
)

// SearchStats is the informational result of a search call: the number of
// solutions found (capped at the caller's limit) and the number of
// branching decisions made along the way. A parallel depth-1 split counts
// its forking node twice, once for each side it explores.
type SearchStats struct {
	Solutions uint64
	Guesses   uint64
}

// Stats are free-running, per-Solver telemetry counters. They are purely
// informational: nothing in BCP, the SCC engine, or the search driver
// reads them back to make a decision. A Solver cloned for the depth-1
// parallel split gets its own independent Stats, the same way the
// original thread-local counters were scoped per worker.
type Stats struct {
	BCPSteps     uint64
	Implications uint64
	SCCRuns      uint64
}

// Stats returns a snapshot of s's telemetry counters.
func (s *Solver) Stats() Stats {
	return s.stats
}

// traceSnapshot is the shape handed to kr/pretty when Config.Trace is on.
// It deliberately summarizes State rather than dumping the full
// 2592-literal bitset: a full dump would dwarf the state it's meant to
// illuminate.
type traceSnapshot struct {
	Label              string
	NumAsserted        uint32
	PositiveCellsFree  []uint16
	BestComponentLit   LiteralID
	BestComponentSize  int
}

func (s *Solver) trace(label string, st *State) {
	if !s.cfg.Trace {
		return
	}
	free := make([]uint16, 0, len(s.positiveCellClauses))
	for _, c := range s.positiveCellClauses {
		free = append(free, st.ClauseFreeLiterals[c])
	}
	snap := traceSnapshot{
		Label:             label,
		NumAsserted:       st.NumAsserted,
		PositiveCellsFree: free,
		BestComponentLit:  s.bestComponentLiteral,
		BestComponentSize: s.bestComponentSize,
	}
	w := s.cfg.TraceOut
	if w == nil {
		w = io.Discard
	}
	fmt.Fprintf(w, "%# v\n", pretty.Formatter(snap))
}
