package encode

// Stats summarizes an encoding for reporting.
type Stats struct {
	Nodes       int
	Edges       int
	MaxCrossing int
	Vars        int
	Clauses     int
	NodeVars    int
	EdgeVars    int
	CounterVars int
}

// Stats returns the size figures of the encoding.
func (e *Encoding) Stats() Stats {
	nodes, edges := e.Inst.NumNodes(), len(e.Inst.Edges)
	return Stats{
		Nodes:       nodes,
		Edges:       edges,
		MaxCrossing: e.Inst.K,
		Vars:        e.Formula.NbVars,
		Clauses:     e.Formula.NbClauses(),
		NodeVars:    nodes,
		EdgeVars:    edges,
		CounterVars: e.Vars.NbVars() - nodes - edges,
	}
}
