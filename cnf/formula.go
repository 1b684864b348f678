package cnf

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// A Clause is a disjunction of literals. Literal order is kept as given so
// that rendering a formula is deterministic.
type Clause []Lit

// CNF returns the DIMACS representation of the clause: its literals as
// signed integers followed by the 0 terminator.
func (c Clause) CNF() string {
	var sb strings.Builder
	for _, l := range c {
		fmt.Fprintf(&sb, "%d ", l.Int())
	}
	sb.WriteString("0")
	return sb.String()
}

// A Formula is an ordered sequence of clauses together with the number of
// variables it ranges over.
type Formula struct {
	NbVars  int
	Clauses []Clause
}

// Add appends c to the formula. The variable count grows when c mentions an
// identifier beyond it, so a formula built only through Add always satisfies
// the DIMACS header invariant.
func (f *Formula) Add(c Clause) {
	for _, l := range c {
		if l.Var > f.NbVars {
			f.NbVars = l.Var
		}
	}
	f.Clauses = append(f.Clauses, c)
}

// NbClauses returns the number of clauses in the formula.
func (f *Formula) NbClauses() int {
	return len(f.Clauses)
}

// WriteDimacs writes the formula in DIMACS CNF format: a "p cnf" header
// stating the variable and clause counts, then one line per clause.
func (f *Formula) WriteDimacs(w io.Writer) error {
	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintf(bw, "p cnf %d %d\n", f.NbVars, len(f.Clauses)); err != nil {
		return fmt.Errorf("could not write header: %v", err)
	}
	for _, c := range f.Clauses {
		for _, l := range c {
			if _, err := fmt.Fprintf(bw, "%d ", l.Int()); err != nil {
				return fmt.Errorf("could not write clause: %v", err)
			}
		}
		if _, err := bw.WriteString("0\n"); err != nil {
			return fmt.Errorf("could not write clause: %v", err)
		}
	}
	return bw.Flush()
}

// Dimacs returns the formula as a DIMACS CNF string.
func (f *Formula) Dimacs() string {
	var sb strings.Builder
	f.WriteDimacs(&sb) // cannot fail on a strings.Builder
	return sb.String()
}

// Ints returns the clauses as slices of signed DIMACS integers, the input
// format of in-process solver libraries.
func (f *Formula) Ints() [][]int {
	res := make([][]int, len(f.Clauses))
	for i, c := range f.Clauses {
		line := make([]int, len(c))
		for j, l := range c {
			line[j] = l.Int()
		}
		res[i] = line
	}
	return res
}
