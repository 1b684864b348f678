package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/crillab/equicut/cnf"
	"github.com/crillab/equicut/encode"
	"github.com/crillab/equicut/instance"
	"github.com/crillab/equicut/sat"
)

// banner renders a section header in the tool's traditional 66-column form.
func banner(title string) string {
	const width = 66
	body := "[ " + title + " ]"
	pad := width - len(body)
	if pad < 2 {
		pad = 2
	}
	return strings.Repeat("#", pad/2) + body + strings.Repeat("#", pad-pad/2)
}

func printCNF(w io.Writer, f *cnf.Formula) {
	fmt.Fprintln(w, banner("CNF Formula in DIMACS Format"))
	fmt.Fprintln(w)
	fmt.Fprint(w, f.Dimacs())
	fmt.Fprintln(w)
}

func printEncodingStats(w io.Writer, st encode.Stats) {
	fmt.Fprintln(w, banner("Encoding Statistics"))
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Graph:")
	fmt.Fprintf(w, "  Nodes: %d\n", st.Nodes)
	fmt.Fprintf(w, "  Edges: %d\n", st.Edges)
	fmt.Fprintf(w, "  Max crossing edges (k): %d\n", st.MaxCrossing)
	fmt.Fprintln(w)
	fmt.Fprintln(w, "CNF formula:")
	fmt.Fprintf(w, "  Variables: %d\n", st.Vars)
	fmt.Fprintf(w, "  Clauses: %d\n", st.Clauses)
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Variable breakdown:")
	fmt.Fprintf(w, "  Node variables (x_i): %d\n", st.NodeVars)
	fmt.Fprintf(w, "  Edge variables (e_j): %d\n", st.EdgeVars)
	fmt.Fprintf(w, "  Counter variables (cardinality): %d\n", st.CounterVars)
	fmt.Fprintln(w)
}

func printSolverStats(w io.Writer, st sat.Stats) {
	fmt.Fprintln(w, banner("Solver Statistics"))
	fmt.Fprintln(w)
	if st.Conflicts > 0 || st.Decisions > 0 || st.Restarts > 0 {
		fmt.Fprintf(w, "  Conflicts: %d\n", st.Conflicts)
		fmt.Fprintf(w, "  Decisions: %d\n", st.Decisions)
		fmt.Fprintf(w, "  Restarts: %d\n", st.Restarts)
	}
	for _, line := range st.Comments {
		if statComment(line) {
			fmt.Fprintln(w, line)
		}
	}
	fmt.Fprintln(w)
}

// statComment reports whether a solver comment line carries statistics
// worth echoing, as opposed to banner chatter.
func statComment(line string) bool {
	lower := strings.ToLower(line)
	return strings.Contains(lower, "conflicts") ||
		strings.Contains(lower, "decisions") ||
		strings.Contains(lower, "propagations") ||
		strings.Contains(line, "CPU time")
}

func printResult(w io.Writer, inst *instance.Instance, part *encode.Partition, verbose bool) {
	fmt.Fprintln(w, "SATISFIABLE")
	fmt.Fprintf(w, "U: %v\n", part.U)
	fmt.Fprintf(w, "W: %v\n", part.W)
	fmt.Fprintf(w, "Crossing edges: %d\n", len(part.Crossing))
	if !verbose {
		return
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, banner("Detailed solution for graph partition"))
	fmt.Fprintln(w)
	fmt.Fprintf(w, "Set U (%d nodes): %v\n", len(part.U), part.U)
	fmt.Fprintf(w, "Set W (%d nodes): %v\n", len(part.W), part.W)
	fmt.Fprintf(w, "Crossing edges (%d/%d allowed):\n", len(part.Crossing), inst.K)
	if len(part.Crossing) == 0 {
		fmt.Fprintln(w, "  (none)")
	}
	for _, e := range part.Crossing {
		fmt.Fprintf(w, "  %d -- %d\n", e.U, e.V)
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Verification:")
	fmt.Fprintf(w, "  |U| = %d, expected %d: %s\n", len(part.U), inst.N, mark(len(part.U) == inst.N))
	fmt.Fprintf(w, "  |W| = %d, expected %d: %s\n", len(part.W), inst.N, mark(len(part.W) == inst.N))
	fmt.Fprintf(w, "  Crossings = %d, max %d: %s\n", len(part.Crossing), inst.K, mark(len(part.Crossing) <= inst.K))
}

func mark(ok bool) string {
	if ok {
		return "+"
	}
	return "-"
}
