package main

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/crillab/equicut/instance"
)

// promptInstance asks interactively for n, k and the edge list. It is how
// the tool behaves when started with no arguments.
func promptInstance(in io.Reader, out io.Writer) (*instance.Instance, error) {
	sc := bufio.NewScanner(in)
	fmt.Fprintln(out, "Graph Partitioning Problem - SAT Solver")
	fmt.Fprintln(out, strings.Repeat("=", 50))
	fmt.Fprintln(out)
	n, err := promptInt(sc, out, "Enter n (half the number of nodes):")
	if err != nil {
		return nil, err
	}
	k, err := promptInt(sc, out, "Enter k (maximum crossing edges):")
	if err != nil {
		return nil, err
	}
	fmt.Fprintln(out)
	fmt.Fprintf(out, "Graph has %d nodes (indexed 0 to %d)\n", 2*n, 2*n-1)
	fmt.Fprintln(out, "Enter edges, one per line as 'u v'")
	fmt.Fprintln(out, "Finish with an empty line:")
	edges, err := readEdgePairs(sc)
	if err != nil {
		return nil, err
	}
	fmt.Fprintln(out)
	return instance.New(n, k, edges)
}

func promptInt(sc *bufio.Scanner, out io.Writer, msg string) (int, error) {
	fmt.Fprintln(out, msg)
	if !sc.Scan() {
		if err := sc.Err(); err != nil {
			return 0, errors.Wrap(err, "could not read input")
		}
		return 0, errors.New("unexpected end of input")
	}
	text := strings.TrimSpace(sc.Text())
	val, err := strconv.Atoi(text)
	if err != nil {
		return 0, errors.Errorf("could not parse %q as a number", text)
	}
	return val, nil
}

// readEdgePairs reads "u v" lines until an empty line or the end of input.
func readEdgePairs(sc *bufio.Scanner) ([]instance.Edge, error) {
	var edges []instance.Edge
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			break
		}
		fields := strings.Fields(line)
		if len(fields) < 2 {
			return nil, errors.Errorf("could not parse edge %q", line)
		}
		u, err := strconv.Atoi(fields[0])
		if err != nil {
			return nil, errors.Errorf("could not parse edge %q", line)
		}
		v, err := strconv.Atoi(fields[1])
		if err != nil {
			return nil, errors.Errorf("could not parse edge %q", line)
		}
		edges = append(edges, instance.Edge{U: u, V: v})
	}
	return edges, errors.Wrap(sc.Err(), "could not read edges")
}
