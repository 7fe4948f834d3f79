package triadscc

import "io"

// Configuration bits accepted by Solve, matching the external contract
// exactly: bit 0 enables SCC inference, bit 1 enables the SCC branching
// heuristic, bit 8 selects the CSR adjacency backend, bit 9 enables the
// depth-1 parallel split, and bit 10 is reserved for a SIMD backend that,
// in this portable implementation, is simply an alias for bit 8.
const (
	ConfigSCCInference   uint32 = 1 << 0
	ConfigSCCHeuristic   uint32 = 1 << 1
	ConfigCSRAdjacency   uint32 = 1 << 8
	ConfigParallelDepth1 uint32 = 1 << 9
	ConfigSIMDAdjacency  uint32 = 1 << 10
)

// Config is the decoded, immutable form of the configuration bit field.
// Replacing a global or thread-local configuration struct, it is built
// once at the Solve entry point and threaded explicitly through the
// Solver from then on.
type Config struct {
	SCCInference    bool
	SCCHeuristic    bool
	UseCSRAdjacency bool
	ParallelDepth1  bool

	// Trace, when set, makes the solver write pretty-printed state
	// snapshots to TraceOut when a search starts and each time a solution
	// is found. It has no effect on solution count or search order.
	Trace    bool
	TraceOut io.Writer
}

// ConfigFromBits decodes the configuration bit field described on the
// Config* constants above and in §6 of the solver's external contract.
func ConfigFromBits(bits uint32) Config {
	cfg := Config{
		SCCInference:    bits&ConfigSCCInference != 0,
		SCCHeuristic:    bits&ConfigSCCHeuristic != 0,
		UseCSRAdjacency: bits&(ConfigCSRAdjacency|ConfigSIMDAdjacency) != 0,
		ParallelDepth1:  bits&ConfigParallelDepth1 != 0,
		TraceOut:        io.Discard,
	}
	return cfg
}
