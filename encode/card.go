package encode

import "github.com/crillab/equicut/cnf"

// AtMost appends clauses to f forcing at most k of the given literals to be
// true, using the sequential counter encoding (Sinz, "Towards an optimal
// CNF encoding of Boolean cardinality constraints", CP 2005). Counter cells
// are allocated under cat so independent chains never share variables.
//
// Cell (i, j) reads "at least j of the first i literals are true". Cells
// exist for i = 1..m-1 and j = 1..k, so a non-degenerate call allocates
// exactly (m-1)*k auxiliary variables.
//
// Degenerate bounds short-circuit: k >= len(lits) emits nothing at all, and
// k == 0 collapses to one unit clause per literal.
func AtMost(f *cnf.Formula, vars *Allocator, cat Category, lits []cnf.Lit, k int) {
	m := len(lits)
	if k >= m {
		return
	}
	if k == 0 {
		for _, l := range lits {
			f.Add(cnf.Clause{l.Negation()})
		}
		return
	}
	s := func(i, j int) cnf.Lit {
		return cnf.Pos(vars.ID(CounterKey(cat, i, j)))
	}
	f.Add(cnf.Clause{lits[0].Negation(), s(1, 1)})
	// The first row counts a single literal, so it can never reach 2.
	for j := 2; j <= k; j++ {
		f.Add(cnf.Clause{s(1, j).Negation()})
	}
	for i := 2; i <= m-1; i++ {
		li := lits[i-1].Negation()
		f.Add(cnf.Clause{li, s(i, 1)})
		f.Add(cnf.Clause{s(i-1, 1).Negation(), s(i, 1)})
		for j := 2; j <= k; j++ {
			f.Add(cnf.Clause{s(i-1, j).Negation(), s(i, j)})
			f.Add(cnf.Clause{li, s(i-1, j-1).Negation(), s(i, j)})
		}
		// Taking literal i when the first i-1 already reach k busts the bound.
		f.Add(cnf.Clause{li, s(i-1, k).Negation()})
	}
	f.Add(cnf.Clause{lits[m-1].Negation(), s(m-1, k).Negation()})
}
