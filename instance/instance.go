package instance

import "fmt"

// An Edge is an unordered pair of node indices.
type Edge struct {
	U, V int
}

// An Instance is a balanced-bisection question: can the graph over 2n nodes
// be split into two sets of n nodes with at most k crossing edges?
// Edges keep the order they were given in; parallel edges are allowed and
// each one counts separately toward the crossing budget.
type Instance struct {
	N     int // half the number of nodes
	K     int // maximum number of crossing edges
	Edges []Edge
}

// New builds an instance and validates it.
func New(n, k int, edges []Edge) (*Instance, error) {
	inst := &Instance{N: n, K: k, Edges: edges}
	if err := inst.Validate(); err != nil {
		return nil, err
	}
	return inst, nil
}

// NumNodes returns the total number of nodes, 2n.
func (inst *Instance) NumNodes() int {
	return 2 * inst.N
}

// Validate checks the instance invariants: n > 0, k >= 0, every edge
// endpoint in [0, 2n) and no self-loop.
func (inst *Instance) Validate() error {
	if inst.N <= 0 {
		return fmt.Errorf("%w: got n = %d", ErrNodeCount, inst.N)
	}
	if inst.K < 0 {
		return fmt.Errorf("%w: got k = %d", ErrBound, inst.K)
	}
	for j, e := range inst.Edges {
		if e.U < 0 || e.U >= inst.NumNodes() || e.V < 0 || e.V >= inst.NumNodes() {
			return fmt.Errorf("%w: edge %d is (%d, %d) but nodes go up to %d", ErrEdgeRange, j, e.U, e.V, inst.NumNodes()-1)
		}
		if e.U == e.V {
			return fmt.Errorf("%w: edge %d loops on node %d", ErrSelfLoop, j, e.U)
		}
	}
	return nil
}

// Crossing returns the edges having exactly one endpoint in U, where inU
// reports, for each node index, whether the node belongs to U.
func (inst *Instance) Crossing(inU []bool) []Edge {
	var crossing []Edge
	for _, e := range inst.Edges {
		if inU[e.U] != inU[e.V] {
			crossing = append(crossing, e)
		}
	}
	return crossing
}

func (inst *Instance) String() string {
	return fmt.Sprintf("nodes: %d, edges: %d, k: %d", inst.NumNodes(), len(inst.Edges), inst.K)
}
