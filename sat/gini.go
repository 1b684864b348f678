package sat

import (
	"context"
	"time"

	"github.com/crillab/equicut/cnf"
	"github.com/go-air/gini"
	"github.com/go-air/gini/z"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// Gini solves formulas in process with the gini library. Unlike gophersat it
// can stop a running solve, so cancellation does not leave a search behind.
type Gini struct {
	Logger *zap.Logger
}

func (Gini) Name() string {
	return "gini"
}

func (g Gini) Solve(ctx context.Context, f *cnf.Formula) (Result, error) {
	if len(f.Clauses) == 0 {
		return Result{Status: Sat, Model: make(cnf.Model, f.NbVars)}, nil
	}
	s := gini.New()
	maxVar := 0
	for _, c := range f.Clauses {
		for _, l := range c {
			if l.Var > maxVar {
				maxVar = l.Var
			}
			s.Add(z.Dimacs2Lit(l.Int()))
		}
		s.Add(z.LitNull)
	}
	start := time.Now()
	slv := s.GoSolve()
	ticker := time.NewTicker(5 * time.Millisecond)
	defer ticker.Stop()
	var res int
poll:
	for {
		var done bool
		if res, done = slv.Test(); done {
			break poll
		}
		select {
		case <-ctx.Done():
			slv.Stop()
			return Result{Status: Indet}, errors.Wrap(ctx.Err(), "sat: gini interrupted")
		case <-ticker.C:
		}
	}
	logOr(g.Logger).Debug("gini finished",
		zap.Int("answer", res),
		zap.Duration("took", time.Since(start)))
	switch res {
	case 1:
		// Value panics on a variable the solver never saw, hence maxVar.
		model := make(cnf.Model, f.NbVars)
		for v := 1; v <= maxVar; v++ {
			model[v-1] = s.Value(z.Var(v).Pos())
		}
		return Result{Status: Sat, Model: model}, nil
	case -1:
		return Result{Status: Unsat}, nil
	default:
		return Result{Status: Indet}, errors.Errorf("sat: gini returned %d without being cancelled", res)
	}
}
