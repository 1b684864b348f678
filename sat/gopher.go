package sat

import (
	"context"
	"time"

	"github.com/crillab/equicut/cnf"
	"github.com/crillab/gophersat/solver"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// Gopher solves formulas in process with the gophersat library. It needs no
// external binary, which makes it the fallback backend when no solver is
// installed.
type Gopher struct {
	Logger *zap.Logger
}

func (Gopher) Name() string {
	return "gophersat"
}

func (g Gopher) Solve(ctx context.Context, f *cnf.Formula) (Result, error) {
	if len(f.Clauses) == 0 {
		// Nothing constrains anything: the all-false model does.
		return Result{Status: Sat, Model: make(cnf.Model, f.NbVars)}, nil
	}
	s := solver.New(solver.ParseSlice(f.Ints()))
	start := time.Now()
	done := make(chan solver.Status, 1)
	go func() { done <- s.Solve() }()
	var st solver.Status
	select {
	case <-ctx.Done():
		// gophersat has no interruption hook; the abandoned goroutine ends
		// with the process.
		return Result{Status: Indet}, errors.Wrap(ctx.Err(), "sat: gophersat interrupted")
	case st = <-done:
	}
	logOr(g.Logger).Debug("gophersat finished",
		zap.Stringer("status", st),
		zap.Duration("took", time.Since(start)))
	res := Result{Stats: Stats{
		Conflicts: s.Stats.NbConflicts,
		Decisions: s.Stats.NbDecisions,
		Restarts:  s.Stats.NbRestarts,
	}}
	switch st {
	case solver.Sat:
		res.Status = Sat
		res.Model = make(cnf.Model, f.NbVars)
		copy(res.Model, s.Model())
	case solver.Unsat:
		res.Status = Unsat
	default:
		return Result{}, errors.Errorf("sat: gophersat returned status %v", st)
	}
	return res, nil
}
