// Command equicut decides whether a graph on 2n nodes can be split into two
// halves of size n with at most k crossing edges, by reducing the question
// to CNF and handing it to a SAT solver.
package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/crillab/equicut/encode"
	"github.com/crillab/equicut/instance"
	"github.com/crillab/equicut/sat"
)

// version is overridden at build time.
var version = "dev"

type options struct {
	input    string
	output   string
	solver   string
	verb     int
	printCNF bool
	stats    bool
	timeout  time.Duration
	debug    bool

	n     int
	k     int
	edges string
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	o := &options{}
	cmd := &cobra.Command{
		Use:   "equicut",
		Short: "balanced graph bisection via SAT",
		Long: `equicut decides whether a graph with 2n nodes can be partitioned into
two sets of n nodes with at most k crossing edges. The instance is encoded
as a CNF formula, written out in DIMACS format and decided by a SAT solver;
a satisfying assignment is decoded and verified into the two node sets.`,
		Version:      version,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := bindConfig(cmd.Flags()); err != nil {
				return err
			}
			o.solver = viper.GetString("solver")
			o.output = viper.GetString("output")
			o.verb = viper.GetInt("verb")
			o.timeout = viper.GetDuration("timeout")
			return o.run(cmd.Context(), cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}
	flags := cmd.Flags()
	flags.StringVarP(&o.input, "input", "i", "", "instance file, simple or DIMACS graph format, optionally .bz2/.gz")
	flags.StringVarP(&o.output, "output", "o", "formula.cnf", "output file for the DIMACS CNF formula")
	flags.StringVarP(&o.solver, "solver", "s", "auto", "SAT solver: auto, gophersat, gini, portfolio, or a binary path")
	flags.IntVar(&o.verb, "verb", 0, "verbosity of the SAT solver (0 or 1)")
	flags.BoolVar(&o.printCNF, "print-cnf", false, "print the CNF formula in DIMACS format")
	flags.BoolVar(&o.stats, "stats", false, "print statistics about the encoding and the solver run")
	flags.DurationVar(&o.timeout, "timeout", 0, "give up solving after this long (0 means no limit)")
	flags.BoolVar(&o.debug, "debug", false, "enable debug logging")
	flags.IntVar(&o.n, "n", 0, "half the number of nodes (for command line input)")
	flags.IntVar(&o.k, "k", 0, "maximum number of crossing edges (for command line input)")
	flags.StringVar(&o.edges, "edges", "", "edges as 'u1,v1 u2,v2 ...'")
	return cmd
}

func (o *options) run(ctx context.Context, in io.Reader, out io.Writer) error {
	if o.verb < 0 || o.verb > 1 {
		return errors.Errorf("verb must be 0 or 1, got %d", o.verb)
	}
	logger, err := o.buildLogger()
	if err != nil {
		return err
	}
	defer logger.Sync()

	inst, err := o.resolveInstance(in, out)
	if err != nil {
		return err
	}
	logger.Debug("instance ready", zap.Stringer("instance", inst))

	enc, err := encode.Encode(inst)
	if err != nil {
		return err
	}
	if o.printCNF {
		printCNF(out, enc.Formula)
	}
	if o.stats {
		printEncodingStats(out, enc.Stats())
	}

	backend, err := o.pickSolver(logger)
	if err != nil {
		return err
	}
	if _, external := backend.(*sat.External); !external {
		// The external adapter writes the artifact itself.
		if err := sat.WriteFormula(o.output, enc.Formula); err != nil {
			return err
		}
	}
	logger.Debug("solving", zap.String("backend", backend.Name()))

	if o.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, o.timeout)
		defer cancel()
	}
	res, err := backend.Solve(ctx, enc.Formula)
	if err != nil {
		if res.Status == sat.Indet && ctx.Err() != nil {
			fmt.Fprintln(out, sat.Indet)
			return errors.New("no verdict within the time limit")
		}
		return err
	}
	if o.stats {
		printSolverStats(out, res.Stats)
	}
	switch res.Status {
	case sat.Sat:
		part, err := enc.Decode(res.Model)
		if err != nil {
			return err
		}
		printResult(out, inst, part, o.verb > 0)
	case sat.Unsat:
		fmt.Fprintln(out, "UNSATISFIABLE")
	default:
		fmt.Fprintln(out, sat.Indet)
		return errors.New("the solver reached no verdict")
	}
	return nil
}

func (o *options) buildLogger() (*zap.Logger, error) {
	if o.debug {
		return zap.NewDevelopment()
	}
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	return cfg.Build()
}

// resolveInstance finds the instance wherever the flags point: a file, the
// --n/--k/--edges triple (reading edges from stdin when --edges is absent),
// or an interactive prompt when nothing was given at all.
func (o *options) resolveInstance(in io.Reader, out io.Writer) (*instance.Instance, error) {
	switch {
	case o.input != "":
		return instance.Load(o.input)
	case o.n > 0:
		edges, err := o.resolveEdges(in)
		if err != nil {
			return nil, err
		}
		return instance.New(o.n, o.k, edges)
	default:
		return promptInstance(in, out)
	}
}

func (o *options) resolveEdges(in io.Reader) ([]instance.Edge, error) {
	if o.edges != "" {
		return instance.ParseEdgeList(o.edges)
	}
	return readEdgePairs(bufio.NewScanner(in))
}

func (o *options) pickSolver(logger *zap.Logger) (sat.Solver, error) {
	switch o.solver {
	case "", "auto":
		path, err := sat.Discover(logger)
		if errors.Is(err, sat.ErrUnavailable) {
			logger.Info("no glucose binary found, falling back to the embedded solver")
			return sat.Gopher{Logger: logger}, nil
		}
		if err != nil {
			return nil, err
		}
		return &sat.External{Path: path, Verb: o.verb, Logger: logger, FormulaPath: o.output}, nil
	case "gophersat":
		return sat.Gopher{Logger: logger}, nil
	case "gini":
		return sat.Gini{Logger: logger}, nil
	case "portfolio":
		return sat.Portfolio{
			Backends: []sat.Solver{sat.Gopher{Logger: logger}, sat.Gini{Logger: logger}},
			Logger:   logger,
		}, nil
	default:
		// Anything else names a solver binary.
		return &sat.External{Path: o.solver, Verb: o.verb, Logger: logger, FormulaPath: o.output}, nil
	}
}
