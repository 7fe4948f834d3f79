// Command triadscc solves Sudoku puzzles read one per line from a file or
// from standard input, using the triad/SCC DPLL solver.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"

	triadscc "github.com/dgraham6/sudoku-sat-perf-lab"
)

func main() {
	log.SetFlags(0)
	verbose := flag.Bool("v", false, "verbose mode: print per-puzzle guess counts")
	limit := flag.Uint64("limit", 1, "maximum number of solutions to enumerate per puzzle")
	configHex := flag.String("config", "3", "configuration bits, in hex (bit0=SCC inference, bit1=SCC heuristic, bit8=CSR adjacency, bit9=parallel depth-1 split)")
	flag.Usage = func() {
		fmt.Fprint(os.Stderr, `triadscc: a Sudoku solver over a triad-augmented Boolean encoding.

Usage:

  triadscc [-v] [-limit N] [-config HEX] [input.txt]

triadscc reads one puzzle per line, each either 81 characters (classic:
'.' for empty, '1'-'9' for a clue) or 729 characters (pencilmark: 9 bytes
per cell, '.' excludes that value). For each puzzle it writes either UNSAT,
or SAT followed by the first solution found.

If no input file is given, triadscc reads from standard input.
`)
	}
	flag.Parse()

	configuration, err := strconv.ParseUint(*configHex, 16, 32)
	if err != nil {
		log.Fatalf("invalid -config %q: %s", *configHex, err)
	}

	var r io.Reader = os.Stdin
	if flag.NArg() >= 1 {
		f, err := os.Open(flag.Arg(0))
		if err != nil {
			log.Fatal(err)
		}
		defer f.Close()
		r = f
	}

	s := bufio.NewScanner(r)
	s.Buffer(make([]byte, 1024), 1024)
	lineNum := 0
	for s.Scan() {
		lineNum++
		line := strings.TrimSpace(s.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		solution, guesses, count := triadscc.Solve(line, *limit, uint32(configuration))
		if *verbose {
			fmt.Fprintf(os.Stderr, "line %d: count=%d guesses=%d\n", lineNum, count, guesses)
		}
		if count == 0 {
			fmt.Println("UNSAT")
			continue
		}
		fmt.Println("SAT")
		fmt.Println(solution)
	}
	if err := s.Err(); err != nil {
		log.Fatal(err)
	}
}
