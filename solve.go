package triadscc

import "sync/atomic"

// Solve determines whether a Sudoku puzzle has a solution and, if so,
// produces one.
//
// puzzle is either 81 characters (classic encoding: '.' for empty,
// '1'..'9' for a clue, row-major) or 729 characters — 81 cells times 9
// pencilmark bytes each, where '.' at offset j within a cell's 9 bytes
// means value j+1 is excluded and any other byte means it's permitted.
// Pencilmark mode is detected when the input is longer than 81 bytes and
// its 82nd byte (index 81) is >= '.' (ASCII 46); an input of exactly 81
// bytes is always read as classic.
//
// configuration is the bit field described by ConfigFromBits. limit caps
// the number of solutions enumerated; the returned count never exceeds
// it. solution is the 81-digit completed board when count > 0, and is
// empty otherwise. guesses is the total number of branching decisions
// made, counting both sides of a parallel split.
func Solve(puzzle string, limit uint64, configuration uint32) (solution string, guesses uint64, count uint64) {
	return SolveWithConfig(puzzle, limit, ConfigFromBits(configuration))
}

// SolveWithConfig is Solve with an already-decoded Config, for callers
// that want tracing or want to reuse a Config value across calls.
func SolveWithConfig(puzzle string, limit uint64, cfg Config) (solution string, guesses uint64, count uint64) {
	s := NewSolver(cfg)
	return s.SolveSudoku(puzzle, limit)
}

// SolveInto is Solve for callers solving many puzzles who want to avoid an
// allocation per call: out must have length 81 and is overwritten with the
// first solution found. ok reports whether a solution was found; when it
// is false, out is left untouched.
func SolveInto(out []byte, puzzle string, limit uint64, configuration uint32) (guesses uint64, count uint64, ok bool) {
	if len(out) != 81 {
		panic("triadscc: SolveInto requires len(out) == 81")
	}
	s := NewSolver(ConfigFromBits(configuration))
	solution, guesses, count := s.SolveSudoku(puzzle, limit)
	if count == 0 {
		return guesses, 0, false
	}
	copy(out, solution)
	return guesses, count, true
}

// SolveSudoku runs one puzzle through s. A Solver may be reused across
// calls (its static adjacency and initial state are read-only after
// construction), but each call resets the per-search atomics, so
// concurrent calls on the same Solver are not safe.
func (s *Solver) SolveSudoku(puzzle string, limit uint64) (solution string, guesses uint64, count uint64) {
	atomic.StoreUint32(&s.stop, 0)
	atomic.StoreUint32(&s.wroteFirstSolution, 0)
	s.result = s.initialState

	state := s.initialState.Clone()
	pencilmark := len(puzzle) > 81 && puzzle[81] >= '.'
	if !s.initializePuzzle(puzzle, pencilmark, &state) {
		return "", 0, 0
	}

	s.trace("initial", &state)
	stats := s.countSolutions(&state, 0, s.cfg.ParallelDepth1, limit)

	if stats.Solutions == 0 {
		return "", stats.Guesses, 0
	}
	return s.decodeSolution(), stats.Guesses, stats.Solutions
}

// initializePuzzle asserts the puzzle's clues (classic mode) or
// exclusions (pencilmark mode) into st, returning false the moment a
// conflict is found.
func (s *Solver) initializePuzzle(input string, pencilmark bool, st *State) bool {
	for i := 0; i < 81; i++ {
		box, elem := boxElem(i)
		if pencilmark {
			for val := 0; val < NumValues; val++ {
				if input[i*NumValues+val] == '.' {
					if !s.Assert(Not(Literal(box, elem, val)), st) {
						return false
					}
				}
			}
			continue
		}
		digit := input[i]
		if digit != '.' {
			val := int(digit - '1')
			if !s.Assert(Literal(box, elem, val), st) {
				return false
			}
		}
	}
	return true
}

// decodeSolution renders s.result's asserted cell literals back into an
// 81-digit board string.
func (s *Solver) decodeSolution() string {
	out := make([]byte, 81)
	for i := 0; i < 81; i++ {
		box, elem := boxElem(i)
		for val := 0; val < NumValues; val++ {
			if s.result.Asserted.Get(Literal(box, elem, val)) {
				out[i] = byte('1' + val)
				break
			}
		}
	}
	return string(out)
}
