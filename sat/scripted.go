package sat

import (
	"context"
	"time"

	"github.com/crillab/equicut/cnf"
)

// Scripted replays a predetermined answer after an optional delay. It backs
// portfolio runs and tests that need a solver with a known outcome.
type Scripted struct {
	Verdict Status
	Binding cnf.Model
	Err     error
	Delay   time.Duration
}

func (Scripted) Name() string {
	return "scripted"
}

func (s Scripted) Solve(ctx context.Context, _ *cnf.Formula) (Result, error) {
	if s.Delay > 0 {
		t := time.NewTimer(s.Delay)
		defer t.Stop()
		select {
		case <-ctx.Done():
			return Result{Status: Indet}, ctx.Err()
		case <-t.C:
		}
	}
	if s.Err != nil {
		return Result{}, s.Err
	}
	return Result{Status: s.Verdict, Model: s.Binding}, nil
}
