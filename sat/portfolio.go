package sat

import (
	"context"

	"github.com/crillab/equicut/cnf"
	"github.com/pkg/errors"
	"go.uber.org/multierr"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Portfolio races several solvers on the same formula and returns the first
// decisive answer. The remaining solvers are cancelled as soon as one of them
// reaches a verdict. A solver that fails or gives up does not abort the race.
type Portfolio struct {
	Backends []Solver
	Logger   *zap.Logger
}

func (Portfolio) Name() string {
	return "portfolio"
}

func (p Portfolio) Solve(ctx context.Context, f *cnf.Formula) (Result, error) {
	if len(p.Backends) == 0 {
		return Result{Status: Indet}, errors.Wrap(ErrUnavailable, "sat: portfolio has no backends")
	}
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	type answer struct {
		name string
		res  Result
		err  error
	}
	// Buffered so that losers can report and exit after a winner returned.
	answers := make(chan answer, len(p.Backends))
	grp := new(errgroup.Group)
	for _, b := range p.Backends {
		b := b // per-iteration copy for the closure, as go >= 1.22 would do
		grp.Go(func() error {
			res, err := b.Solve(ctx, f)
			answers <- answer{name: b.Name(), res: res, err: err}
			return nil
		})
	}
	go func() {
		grp.Wait()
		close(answers)
	}()

	var failures []error
	for a := range answers {
		switch {
		case a.err != nil:
			if ctx.Err() == nil {
				failures = append(failures, errors.Wrap(a.err, a.name))
			}
		case a.res.Status != Indet:
			logOr(p.Logger).Debug("portfolio decided",
				zap.String("winner", a.name),
				zap.Stringer("status", a.res.Status))
			return a.res, nil
		}
	}
	if err := ctx.Err(); err != nil {
		return Result{Status: Indet}, errors.Wrap(err, "sat: portfolio interrupted")
	}
	if err := multierr.Combine(failures...); err != nil {
		return Result{Status: Indet}, errors.Wrap(err, "sat: no backend reached a verdict")
	}
	return Result{Status: Indet}, nil
}
