package encode

import (
	"github.com/crillab/equicut/cnf"
	"github.com/crillab/equicut/instance"
)

// An Encoding is the CNF reduction of an instance, bound to the variable
// mapping it was built with.
type Encoding struct {
	Inst    *instance.Instance
	Vars    *Allocator
	Formula *cnf.Formula
}

// Encode reduces inst to a CNF formula that is satisfiable exactly when the
// instance admits a balanced partition within its crossing budget. Node and
// edge variables are assigned first, in index order, so decoding never
// depends on the counter layout. Encoding is deterministic: the same
// instance always yields the same formula, clause for clause.
func Encode(inst *instance.Instance) (*Encoding, error) {
	if err := inst.Validate(); err != nil {
		return nil, err
	}
	vars := NewAllocator()
	nodes := make([]cnf.Lit, inst.NumNodes())
	for i := range nodes {
		nodes[i] = cnf.Pos(vars.ID(NodeKey(i)))
	}
	edges := make([]cnf.Lit, len(inst.Edges))
	for j := range edges {
		edges[j] = cnf.Pos(vars.ID(EdgeKey(j)))
	}
	f := &cnf.Formula{}
	crossingClauses(f, nodes, edges, inst)
	AtMost(f, vars, SizeU, nodes, inst.N)
	negs := make([]cnf.Lit, len(nodes))
	for i, l := range nodes {
		negs[i] = l.Negation()
	}
	// At most n nodes outside U, i.e at least n inside: |U| is exactly n.
	AtMost(f, vars, SizeW, negs, inst.N)
	AtMost(f, vars, Cut, edges, inst.K)
	if f.NbVars < vars.NbVars() {
		f.NbVars = vars.NbVars()
	}
	return &Encoding{Inst: inst, Vars: vars, Formula: f}, nil
}

// crossingClauses ties each edge variable to the exclusive or of its
// endpoint variables: e_j is true exactly when edge j crosses the cut.
func crossingClauses(f *cnf.Formula, nodes, edges []cnf.Lit, inst *instance.Instance) {
	for j, e := range inst.Edges {
		xu, xv, ej := nodes[e.U], nodes[e.V], edges[j]
		f.Add(cnf.Clause{xu.Negation(), xv, ej})
		f.Add(cnf.Clause{xu, xv.Negation(), ej})
		f.Add(cnf.Clause{xu.Negation(), xv.Negation(), ej.Negation()})
		f.Add(cnf.Clause{xu, xv, ej.Negation()})
	}
}
