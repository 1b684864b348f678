package sat

import (
	"context"

	"github.com/crillab/equicut/cnf"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// Status is the verdict of a solver run.
type Status byte

const (
	// Indet means no verdict was reached, typically after a timeout or a
	// cancellation.
	Indet Status = iota
	// Sat means the formula is satisfiable.
	Sat
	// Unsat means the formula is unsatisfiable.
	Unsat
)

func (s Status) String() string {
	switch s {
	case Sat:
		return "SAT"
	case Unsat:
		return "UNSAT"
	default:
		return "INDETERMINATE"
	}
}

// Backend failure sentinels. Backends wrap them with detail; callers test
// with errors.Is. Neither condition is ever reported as an UNSAT verdict.
var (
	// ErrUnavailable means the backend could not run: missing binary,
	// spawn failure or a crashed solver process.
	ErrUnavailable = errors.New("sat: solver unavailable")
	// ErrMalformed means an external solver answered something that does
	// not follow the expected output grammar.
	ErrMalformed = errors.New("sat: malformed solver output")
)

// Stats collects counters reported by a backend. Fields stay zero when a
// backend does not report them.
type Stats struct {
	Conflicts int
	Decisions int
	Restarts  int
	// Comments holds the raw "c " lines printed by an external solver.
	Comments []string
}

// A Result is a verdict plus, when satisfiable, a model of the formula.
type Result struct {
	Status Status
	Model  cnf.Model
	Stats  Stats
}

// A Solver decides CNF formulas. Implementations honour context
// cancellation on a best-effort basis and return an Indet result when
// interrupted before a verdict.
type Solver interface {
	// Name identifies the backend in logs and reports.
	Name() string
	Solve(ctx context.Context, f *cnf.Formula) (Result, error)
}

// logOr returns l, or a no-op logger when l is nil, so backends can be
// used as zero values.
func logOr(l *zap.Logger) *zap.Logger {
	if l != nil {
		return l
	}
	return zap.NewNop()
}
