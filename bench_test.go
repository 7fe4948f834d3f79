package triadscc

import "testing"

func BenchmarkSolveHardest(b *testing.B) {
	for _, cfg := range []struct {
		name string
		bits uint32
	}{
		{"plain", 0x0},
		{"scc-inference", 0x1},
		{"scc-heuristic", 0x3},
		{"csr-adjacency", 0x3 | ConfigCSRAdjacency},
		{"parallel-depth1", 0x3 | ConfigParallelDepth1},
	} {
		b.Run(cfg.name, func(b *testing.B) {
			s := NewSolver(ConfigFromBits(cfg.bits))
			for i := 0; i < b.N; i++ {
				_, guesses, count := s.SolveSudoku(hardestPuzzle, 1)
				if count != 1 {
					b.Fatalf("count = %d, want 1", count)
				}
				b.ReportMetric(float64(guesses), "guesses/op")
			}
		})
	}
}

func BenchmarkSolveEmptyEnumerateTwo(b *testing.B) {
	s := NewSolver(ConfigFromBits(0x3))
	for i := 0; i < b.N; i++ {
		_, guesses, count := s.SolveSudoku(emptyPuzzle, 2)
		if count != 2 {
			b.Fatalf("count = %d, want 2", count)
		}
		b.ReportMetric(float64(guesses), "guesses/op")
	}
}

func BenchmarkSolveRandomizedPartial(b *testing.B) {
	full, _, count := Solve(emptyPuzzle, 1, 0x3)
	if count != 1 {
		b.Fatal("could not build a seed board")
	}
	board := []byte(full)
	for _, i := range []int{2, 9, 17, 23, 31, 40, 48, 55, 63, 70, 77} {
		board[i] = '.'
	}
	puzzle := string(board)

	s := NewSolver(ConfigFromBits(0x3))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, guesses, count := s.SolveSudoku(puzzle, 1)
		if count != 1 {
			b.Fatalf("count = %d, want 1", count)
		}
		b.ReportMetric(float64(guesses), "guesses/op")
	}
}
