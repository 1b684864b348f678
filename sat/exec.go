package sat

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/crillab/equicut/cnf"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// External runs a glucose-compatible SAT solver binary. The formula is
// written to FormulaPath (or a temporary file) and passed as the last
// argument; the verdict comes from the exit code and the standard output,
// which must follow the usual solver conversation: an optional
// "s SATISFIABLE" line, "v " model lines terminated by 0, "c " comments,
// exit code 10 for SAT and 20 for UNSAT.
type External struct {
	Path   string   // solver binary
	Args   []string // extra arguments, placed before the formula path
	Verb   int      // verbosity level forwarded as -verb=
	Logger *zap.Logger

	// FormulaPath is where the DIMACS file is written. When empty, a
	// temporary file is used and removed afterwards; otherwise the file is
	// kept as a run artifact.
	FormulaPath string
}

func (e *External) Name() string {
	return filepath.Base(e.Path)
}

func (e *External) Solve(ctx context.Context, f *cnf.Formula) (Result, error) {
	path, cleanup, err := e.writeFormula(f)
	if err != nil {
		return Result{}, err
	}
	defer cleanup()
	args := append([]string{"-model", fmt.Sprintf("-verb=%d", e.Verb)}, e.Args...)
	args = append(args, path)
	cmd := exec.CommandContext(ctx, e.Path, args...)
	// Solvers may fork helpers that keep the pipes open after a kill.
	cmd.WaitDelay = time.Second
	var stdout, stderr bytes.Buffer
	cmd.Stdout, cmd.Stderr = &stdout, &stderr
	start := time.Now()
	runErr := cmd.Run()
	if ctx.Err() != nil {
		return Result{Status: Indet}, errors.Wrap(ctx.Err(), "sat: solver interrupted")
	}
	code := 0
	if runErr != nil {
		var exitErr *exec.ExitError
		switch {
		case errors.Is(runErr, exec.ErrWaitDelay):
			// The pipes outlived the solver, the verdict is already in hand.
		case errors.As(runErr, &exitErr):
			code = exitErr.ExitCode()
		default:
			return Result{}, errors.Wrapf(ErrUnavailable, "could not run %q: %v", e.Path, runErr)
		}
	}
	logOr(e.Logger).Debug("external solver finished",
		zap.String("solver", e.Path),
		zap.Int("exit", code),
		zap.Duration("took", time.Since(start)))

	out, err := parseOutput(stdout.String(), f.NbVars)
	if err != nil {
		return Result{}, errors.Wrapf(err, "from %q", e.Path)
	}
	// The exit code is an independent verdict channel; cross-check it
	// against what the output said.
	switch code {
	case 10:
		if out.gotStatus && out.status != Sat {
			return Result{}, errors.Wrapf(ErrMalformed, "%q exited 10 but answered %v", e.Path, out.status)
		}
		out.status, out.gotStatus = Sat, true
	case 20:
		if out.gotStatus && out.status != Unsat {
			return Result{}, errors.Wrapf(ErrMalformed, "%q exited 20 but answered %v", e.Path, out.status)
		}
		out.status, out.gotStatus = Unsat, true
	case 0:
		// Some solvers always exit 0: trust the output verdict alone.
	default:
		return Result{}, errors.Wrapf(ErrUnavailable, "%q exited with code %d: %s",
			e.Path, code, strings.TrimSpace(stderr.String()))
	}
	if !out.gotStatus {
		return Result{}, errors.Wrapf(ErrMalformed, "%q produced no verdict", e.Path)
	}
	res := Result{Status: out.status, Stats: Stats{Comments: out.comments}}
	if out.status == Sat {
		if out.model == nil {
			return Result{}, errors.Wrapf(ErrMalformed, "%q answered SAT without a model", e.Path)
		}
		res.Model = out.model
	}
	return res, nil
}

// writeFormula renders f where the solver will read it.
func (e *External) writeFormula(f *cnf.Formula) (string, func(), error) {
	path := e.FormulaPath
	cleanup := func() {}
	if path == "" {
		tmp, err := os.CreateTemp("", "equicut-*.cnf")
		if err != nil {
			return "", nil, errors.Wrap(err, "could not create formula file")
		}
		path = tmp.Name()
		tmp.Close()
		cleanup = func() { os.Remove(path) }
	}
	if err := WriteFormula(path, f); err != nil {
		cleanup()
		return "", nil, err
	}
	return path, cleanup, nil
}

// WriteFormula writes f in DIMACS form at path.
func WriteFormula(path string, f *cnf.Formula) error {
	file, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "could not create formula file")
	}
	if err := f.WriteDimacs(file); err != nil {
		file.Close()
		return errors.Wrapf(err, "could not write formula to %q", path)
	}
	if err := file.Close(); err != nil {
		return errors.Wrapf(err, "could not write formula to %q", path)
	}
	return nil
}

// solverOutput is the parsed solver conversation.
type solverOutput struct {
	status    Status
	gotStatus bool
	model     cnf.Model
	comments  []string
}

// parseOutput reads a solver conversation: "s" verdict lines (bare
// SATISFIABLE/UNSATISFIABLE tokens are accepted too), "v" model lines of
// signed integers terminated by 0, and "c" comment lines. Unknown lines are
// skipped: solvers print all sorts of banners. A started but unterminated
// or incomplete model is malformed.
func parseOutput(out string, nbVars int) (solverOutput, error) {
	var (
		res      solverOutput
		ints     []int
		sawModel bool
		sawZero  bool
	)
	sc := bufio.NewScanner(strings.NewReader(out))
	sc.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		fields := strings.Fields(line)
		switch fields[0] {
		case "c":
			res.comments = append(res.comments, line)
		case "s":
			if len(fields) < 2 {
				return res, errors.Wrapf(ErrMalformed, "bad status line %q", line)
			}
			switch fields[1] {
			case "SATISFIABLE":
				res.status, res.gotStatus = Sat, true
			case "UNSATISFIABLE":
				res.status, res.gotStatus = Unsat, true
			case "UNKNOWN", "INDETERMINATE":
				res.status, res.gotStatus = Indet, true
			default:
				return res, errors.Wrapf(ErrMalformed, "bad status line %q", line)
			}
		case "v":
			sawModel = true
			for _, tok := range fields[1:] {
				if sawZero {
					break
				}
				val, err := strconv.Atoi(tok)
				if err != nil {
					return res, errors.Wrapf(ErrMalformed, "bad model token %q", tok)
				}
				if val == 0 {
					sawZero = true
					break
				}
				ints = append(ints, val)
			}
		case "SATISFIABLE", "SAT":
			res.status, res.gotStatus = Sat, true
		case "UNSATISFIABLE", "UNSAT":
			res.status, res.gotStatus = Unsat, true
		}
	}
	if err := sc.Err(); err != nil {
		return res, errors.Wrap(err, "could not read solver output")
	}
	if !sawModel {
		return res, nil
	}
	if !sawZero {
		return res, errors.Wrap(ErrMalformed, "model not terminated by 0")
	}
	model := make(cnf.Model, nbVars)
	seen := make([]bool, nbVars)
	for _, val := range ints {
		v := val
		if v < 0 {
			v = -v
		}
		// Bindings beyond the formula cannot matter; skip them.
		if v > nbVars {
			continue
		}
		model[v-1] = val > 0
		seen[v-1] = true
	}
	for i, ok := range seen {
		if !ok {
			return res, errors.Wrapf(ErrMalformed, "model omits variable %d", i+1)
		}
	}
	res.model = model
	return res, nil
}
