package triadscc

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

const emptyPuzzle = "................................................................................."

// hardestPuzzle is the well-known Arto Inkala "world's hardest" Sudoku,
// used as a stress fixture across Sudoku solver test suites.
const hardestPuzzle = "..53.....8......2..7..1.5..4....53...1..7...6..32...8..6.5....9..4....3......97.."

// twoSolutionPuzzle has exactly two completions. It is derived from a full
// solved board by blanking the four corners of a rectangle that spans two
// rows, two columns and exactly two boxes and holds a, b / b, a: both
// orientations of the four blanks complete the board, and every other cell
// is fixed. The count is verified empirically below rather than asserted
// by construction.
var twoSolutionPuzzle string

func TestMain(m *testing.M) {
	// Build twoSolutionPuzzle from a solved board by finding such a
	// rectangle and blanking its corners.
	full, _, count := Solve(emptyPuzzle, 1, 0x3)
	if count != 1 {
		panic("could not obtain a seed solved board")
	}
	for i := 0; i < 81 && twoSolutionPuzzle == ""; i++ {
		for j := i + 1; j < 81; j++ {
			r1, c1, r2, c2 := i/9, i%9, j/9, j%9
			if r1 == r2 || c1 == c2 || (r1/3 == r2/3) == (c1/3 == c2/3) {
				continue
			}
			if full[i] != full[j] || full[r1*9+c2] != full[r2*9+c1] {
				continue
			}
			candidate := []byte(full)
			for _, k := range []int{i, j, r1*9 + c2, r2*9 + c1} {
				candidate[k] = '.'
			}
			if _, _, c := Solve(string(candidate), 2, 0x3); c == 2 {
				twoSolutionPuzzle = string(candidate)
				break
			}
		}
	}
	if twoSolutionPuzzle == "" {
		panic("could not construct a two-solution fixture puzzle")
	}
	m.Run()
}

func validCompletedBoard(t *testing.T, puzzle, solution string) {
	t.Helper()
	if len(solution) != 81 {
		t.Fatalf("solution has length %d, want 81", len(solution))
	}
	for i := 0; i < 81; i++ {
		c := solution[i]
		if c < '1' || c > '9' {
			t.Fatalf("solution[%d] = %q, want a digit 1-9", i, c)
		}
		if puzzle[i] != '.' && puzzle[i] != c {
			t.Fatalf("solution[%d] = %q contradicts clue %q", i, c, puzzle[i])
		}
	}
	for row := 0; row < 9; row++ {
		checkGroup(t, "row", row, groupIndices(func(k int) (r, c int) { return row, k }))
		_ = row
	}
	for row := 0; row < 9; row++ {
		idx := make([]int, 9)
		for col := 0; col < 9; col++ {
			idx[col] = row*9 + col
		}
		checkDistinct(t, solution, "row", row, idx)
	}
	for col := 0; col < 9; col++ {
		idx := make([]int, 9)
		for row := 0; row < 9; row++ {
			idx[row] = row*9 + col
		}
		checkDistinct(t, solution, "col", col, idx)
	}
	for br := 0; br < 3; br++ {
		for bc := 0; bc < 3; bc++ {
			idx := make([]int, 0, 9)
			for r := 0; r < 3; r++ {
				for c := 0; c < 3; c++ {
					idx = append(idx, (br*3+r)*9+(bc*3+c))
				}
			}
			checkDistinct(t, solution, "box", br*3+bc, idx)
		}
	}
}

// groupIndices and checkGroup exist only to keep validCompletedBoard's row
// loop symmetric with its column/box loops; the real check is
// checkDistinct.
func groupIndices(f func(int) (int, int)) []int { return nil }
func checkGroup(t *testing.T, kind string, n int, idx []int) {}

func checkDistinct(t *testing.T, solution, kind string, n int, idx []int) {
	t.Helper()
	seen := make(map[byte]bool, 9)
	for _, i := range idx {
		c := solution[i]
		if seen[c] {
			t.Fatalf("%s %d has a repeated digit %q", kind, n, c)
		}
		seen[c] = true
	}
	if len(seen) != 9 {
		t.Fatalf("%s %d has %d distinct digits, want 9", kind, n, len(seen))
	}
}

func TestSolveHardestPuzzleUnique(t *testing.T) {
	solution, guesses, count := Solve(hardestPuzzle, 1, 0x3)
	if count != 1 {
		t.Fatalf("count = %d, want 1", count)
	}
	validCompletedBoard(t, hardestPuzzle, solution)
	if guesses == 0 {
		t.Error("guesses = 0 for a puzzle that needs search")
	}
}

func TestSolveEmptyPuzzle(t *testing.T) {
	solution, _, count := Solve(emptyPuzzle, 1, 0x3)
	if count != 1 {
		t.Fatalf("count = %d, want 1", count)
	}
	validCompletedBoard(t, emptyPuzzle, solution)
}

func TestSolveEmptyPuzzleWithLimit2(t *testing.T) {
	_, guesses, count := Solve(emptyPuzzle, 2, 0x3)
	if count != 2 {
		t.Fatalf("count = %d, want 2", count)
	}
	if guesses == 0 {
		t.Error("guesses = 0, want > 0")
	}
}

func TestSolveContradictoryPuzzle(t *testing.T) {
	puzzle := "11" + strings.Repeat(".", 79)
	_, _, count := Solve(puzzle, 1, 0x3)
	if count != 0 {
		t.Fatalf("count = %d, want 0 for two equal clues in the same box row", count)
	}
}

func TestSolveCompletedBoardHasUniqueExtension(t *testing.T) {
	full, _, count := Solve(emptyPuzzle, 1, 0x3)
	if count != 1 {
		t.Fatalf("seed count = %d, want 1", count)
	}
	solution, _, count2 := Solve(full, 2, 0x3)
	if count2 != 1 {
		t.Fatalf("count = %d, want 1 for a completed board re-solved", count2)
	}
	if solution != full {
		t.Fatalf("re-solving a completed board changed it:\nhave %s\nwant %s", solution, full)
	}
}

func TestSolveTwoSolutionPuzzle(t *testing.T) {
	_, _, count1 := Solve(twoSolutionPuzzle, 1, 0x3)
	if count1 != 1 {
		t.Fatalf("limit=1: count = %d, want 1", count1)
	}
	_, _, count2 := Solve(twoSolutionPuzzle, 2, 0x3)
	if count2 != 2 {
		t.Fatalf("limit=2: count = %d, want 2", count2)
	}
	_, _, count1000 := Solve(twoSolutionPuzzle, 1000, 0x3)
	if count1000 != 2 {
		t.Fatalf("limit=1000: count = %d, want 2", count1000)
	}
}

func TestSolvePencilmarkAgreesWithClassic(t *testing.T) {
	pencilmark := classicToPencilmark(emptyPuzzle)
	_, _, countPencil := Solve(pencilmark, 1, 0x3)
	_, _, countClassic := Solve(emptyPuzzle, 1, 0x3)
	if countPencil != countClassic {
		t.Fatalf("pencilmark count = %d, classic count = %d", countPencil, countClassic)
	}

	for _, cfg := range []uint32{0x0, 0x1, 0x2, 0x3} {
		_, _, c := Solve(pencilmark, 1, cfg)
		if c != 1 {
			t.Errorf("cfg=%#x: pencilmark count = %d, want 1", cfg, c)
		}
	}
}

func classicToPencilmark(puzzle string) string {
	var b strings.Builder
	for i := 0; i < len(puzzle); i++ {
		c := puzzle[i]
		for v := 0; v < 9; v++ {
			if c == '.' {
				b.WriteByte('1' + byte(v)) // any non-'.' byte means "permitted"
			} else if int(c-'1') == v {
				b.WriteByte('1' + byte(v))
			} else {
				b.WriteByte('.')
			}
		}
	}
	return b.String()
}

func TestSolveParallelMatchesSequential(t *testing.T) {
	for _, puzzle := range []string{hardestPuzzle, emptyPuzzle, twoSolutionPuzzle} {
		seqSolution, _, seqCount := Solve(puzzle, 2, 0x3)
		parSolution, parGuesses, parCount := Solve(puzzle, 2, 0x3|ConfigParallelDepth1)
		if parCount != seqCount {
			t.Errorf("puzzle=%q: parallel count = %d, sequential count = %d", puzzle, parCount, seqCount)
		}
		if parCount > 0 {
			validCompletedBoard(t, puzzle, parSolution)
		}
		if seqCount > 0 && parGuesses == 0 {
			t.Errorf("puzzle=%q: parallel guesses = 0", puzzle)
		}
		_ = seqSolution
	}
}

func TestConfigurationBitsDoNotChangeSolutionCount(t *testing.T) {
	puzzles := []string{hardestPuzzle, emptyPuzzle, twoSolutionPuzzle}
	bitCombos := []uint32{
		0x0, 0x1, 0x2, 0x3,
		0x100, 0x101, 0x102, 0x103,
		0x200, 0x203,
		0x400, 0x403,
	}
	for _, puzzle := range puzzles {
		base, _, baseCount := Solve(puzzle, 2, 0x3)
		for _, cfg := range bitCombos {
			_, _, count := Solve(puzzle, 2, cfg)
			if count != baseCount {
				t.Errorf("puzzle=%q cfg=%#x: count = %d, want %d (matching cfg=0x3)", puzzle, cfg, count, baseCount)
			}
		}
		_ = base
	}
}

func TestSolveTwiceIsIdempotent(t *testing.T) {
	s1, g1, c1 := Solve(hardestPuzzle, 1, 0x3)
	s2, g2, c2 := Solve(hardestPuzzle, 1, 0x3)
	if diff := cmp.Diff(struct {
		Solution string
		Guesses  uint64
		Count    uint64
	}{s1, g1, c1}, struct {
		Solution string
		Guesses  uint64
		Count    uint64
	}{s2, g2, c2}); diff != "" {
		t.Errorf("Solve was not idempotent across two fresh calls (-first +second):\n%s", diff)
	}
}

func TestSolveInto(t *testing.T) {
	out := make([]byte, 81)
	guesses, count, ok := SolveInto(out, hardestPuzzle, 1, 0x3)
	if !ok || count != 1 {
		t.Fatalf("ok=%v count=%d, want ok=true count=1", ok, count)
	}
	validCompletedBoard(t, hardestPuzzle, string(out))
	if guesses == 0 {
		t.Error("guesses = 0 for a puzzle that needs search")
	}

	unsat := "11" + strings.Repeat(".", 79)
	before := append([]byte(nil), out...)
	_, count, ok = SolveInto(out, unsat, 1, 0x3)
	if ok || count != 0 {
		t.Fatalf("ok=%v count=%d, want ok=false count=0", ok, count)
	}
	if string(out) != string(before) {
		t.Error("SolveInto modified out on a failed solve")
	}
}

func TestSolveRandomizedPartialBoards(t *testing.T) {
	full, _, count := Solve(emptyPuzzle, 1, 0x3)
	if count != 1 {
		t.Fatal("could not build a seed board")
	}
	rng := rand.New(rand.NewSource(1))
	for trial := 0; trial < 40; trial++ {
		board := []byte(full)
		numBlank := rng.Intn(40) + 20
		perm := rng.Perm(81)
		for _, i := range perm[:numBlank] {
			board[i] = '.'
		}
		puzzle := string(board)
		solution, _, count := Solve(puzzle, 1, 0x3)
		if count == 0 {
			t.Fatalf("trial %d: puzzle derived from a valid board reported UNSAT:\n%s", trial, puzzle)
		}
		validCompletedBoard(t, puzzle, solution)
	}
}
