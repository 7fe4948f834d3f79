// Package triadscc implements a Sudoku solver built as a DPLL-style search
// over a Boolean encoding of the puzzle, augmented with per-box row/column
// triad variables and a path-based strongly-connected-component pass over
// the binary implication graph.
//
// The encoding, propagation, and search are described fully in the package
// doc comments on State, Solver.Assert, and Solver.countSolutions. At a
// glance: every (box, cell-or-triad, value) triple is a variable; BCP keeps
// a per-clause "free literal" budget that lazily grows a binary implication
// graph once a clause is nearly forced; and the SCC pass both infers forced
// assignments (when a literal and its negation share a deep-enough common
// ancestor) and picks the next branching literal (the largest component
// whose negation has no component yet).
//
// This is not a general SAT solver: there are no learned clauses, no
// watched literals, and no restarts. It solves exactly one structure, the
// 9x9 Sudoku grid (including its triad auxiliaries), encoded as described
// in Literal.
package triadscc

import "math"

const (
	// NumBoxes is the number of 3x3 boxes in a Sudoku grid.
	NumBoxes = 9
	// NumElemsPerBox addresses a 4x4 mini-grid per box: the 3x3 cells,
	// six triads (three horizontal, three vertical), and one invalid
	// slack position at (3, 3).
	NumElemsPerBox = 16
	// NumValues is the number of digits a cell or triad can hold.
	NumValues = 9

	// NumLiterals is the total number of literal ids: each of the
	// NumBoxes*NumElemsPerBox*NumValues variables has two literals
	// (positive and negative).
	NumLiterals = NumBoxes * NumElemsPerBox * NumValues * 2

	// AllAsserted is the number of asserted literals in a fully solved
	// grid: one literal, positive or negative, for every variable of the
	// 15 non-slack elements of each box.
	AllAsserted = NumBoxes * (NumElemsPerBox - 1) * NumValues
)

// LiteralID identifies a literal: an even id is the positive form of a
// variable, the odd id immediately following it is its negation.
type LiteralID uint32

// ClauseID identifies a clause by its position in the clause-to-literals
// adjacency.
type ClauseID uint32

// NoLiteral marks the absence of a literal (e.g. no branch candidate).
const NoLiteral LiteralID = math.MaxUint32

// Literal returns the id of the positive literal for the variable
// (box, elem, value). box is in [0, NumBoxes), elem in [0, NumElemsPerBox),
// value in [0, NumValues). elem addresses a 4x4 mini-grid per box: rows
// 0-2, cols 0-2 are the nine cells; row/col 3 hold the six triads; (3, 3)
// is the invalid slack position.
func Literal(box, elem, value int) LiteralID {
	return LiteralID(2 * (elem + NumElemsPerBox*(value+NumBoxes*box)))
}

// Not returns the negation of lit (flips the low bit).
func Not(lit LiteralID) LiteralID {
	return lit ^ 1
}

// ValidLiteral reports whether lit addresses a real (box, elem, value)
// variable rather than the invalid (3, 3) slack position.
func ValidLiteral(lit LiteralID) bool {
	return (uint32(lit)%32)&0x1e != 0x1e
}

// boxElem maps a row-major puzzle-string position (0..80) to its
// (box, elem) coordinates.
func boxElem(i int) (box, elem int) {
	box = (i/27)*3 + (i%9)/3
	elem = ((i/9)%3)*4 + (i % 3)
	return box, elem
}
