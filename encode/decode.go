package encode

import (
	"fmt"

	"github.com/crillab/equicut/cnf"
	"github.com/crillab/equicut/instance"
)

// A Partition is a successful decoding: the two halves of the node set and
// the edges crossing between them, recounted directly from the instance.
type Partition struct {
	U, W     []int
	Crossing []instance.Edge
}

// A ConsistencyError reports a decoded assignment violating the instance
// invariants. It always means the encoder or the solver backend broke its
// contract; it is never a property of the instance itself, and it is
// deliberately distinct from an UNSAT verdict.
type ConsistencyError struct {
	Detail string
}

func (e *ConsistencyError) Error() string {
	return "decode: internal inconsistency: " + e.Detail
}

func inconsistencyf(format string, args ...any) *ConsistencyError {
	return &ConsistencyError{Detail: fmt.Sprintf(format, args...)}
}

// Decode maps a model of the encoding's formula back to a partition: node i
// goes to U exactly when its variable is bound to true. The crossing edges
// are recounted from the instance rather than read from the edge variables,
// then every invariant is checked again.
func (e *Encoding) Decode(m cnf.Model) (*Partition, error) {
	n := e.Inst.N
	inU := make([]bool, e.Inst.NumNodes())
	p := &Partition{}
	for i := range inU {
		id, ok := e.Vars.Lookup(NodeKey(i))
		if !ok {
			return nil, inconsistencyf("no variable was allocated for node %d", i)
		}
		if m.Value(id) {
			inU[i] = true
			p.U = append(p.U, i)
		} else {
			p.W = append(p.W, i)
		}
	}
	p.Crossing = e.Inst.Crossing(inU)
	if len(p.U) != n {
		return nil, inconsistencyf("got %d nodes in U, expected %d", len(p.U), n)
	}
	if len(p.W) != n {
		return nil, inconsistencyf("got %d nodes in W, expected %d", len(p.W), n)
	}
	if len(p.Crossing) > e.Inst.K {
		return nil, inconsistencyf("got %d crossing edges for a budget of %d", len(p.Crossing), e.Inst.K)
	}
	return p, nil
}
