package instance

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Parse reads an instance in either supported text format, deciding the
// format from the first meaningful line: "p edge" or an "e" directive means
// the DIMACS graph format, "p cnf" is rejected, anything else is the simple
// format.
func Parse(r io.Reader) (*Instance, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	var lines []string
	for sc.Scan() {
		lines = append(lines, sc.Text())
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("could not read instance: %v", err)
	}
	for _, line := range lines {
		l := strings.TrimSpace(line)
		switch {
		case l == "" || strings.HasPrefix(l, "#"):
			continue
		case strings.HasPrefix(l, "p cnf"):
			return nil, ErrCNFInput
		case strings.HasPrefix(l, "p edge"), strings.HasPrefix(l, "e "):
			return parseGraph(lines)
		case strings.HasPrefix(l, "c"):
			continue
		default:
			return parseSimple(lines)
		}
	}
	return nil, ErrEmpty
}

// parseSimple reads the simple format: a header line "n k", then one "u v"
// line per edge, 0-indexed. Lines starting with "#" or "c" are comments.
func parseSimple(lines []string) (*Instance, error) {
	var (
		n, k      int
		edges     []Edge
		gotHeader bool
	)
	for i, line := range lines {
		l := strings.TrimSpace(line)
		if l == "" || strings.HasPrefix(l, "#") || strings.HasPrefix(l, "c") {
			continue
		}
		fields := strings.Fields(l)
		if len(fields) != 2 {
			return nil, fmt.Errorf("line %d: expected two fields, got %q", i+1, l)
		}
		a, err := strconv.Atoi(fields[0])
		if err != nil {
			return nil, fmt.Errorf("line %d: could not parse %q: %v", i+1, fields[0], err)
		}
		b, err := strconv.Atoi(fields[1])
		if err != nil {
			return nil, fmt.Errorf("line %d: could not parse %q: %v", i+1, fields[1], err)
		}
		if !gotHeader {
			n, k = a, b
			gotHeader = true
			continue
		}
		edges = append(edges, Edge{U: a, V: b})
	}
	if !gotHeader {
		return nil, ErrEmpty
	}
	return New(n, k, edges)
}

// parseGraph reads the DIMACS graph format: "c n <v>" and "c k <v>" comments
// supply n and k, "p edge <nodes> <edges>" declares sizes and "e u v" lines
// declare 1-indexed edges. Missing values default to n = nodes/2 and
// k = number of edges.
func parseGraph(lines []string) (*Instance, error) {
	var (
		n, k       int
		nSet, kSet bool
		numNodes   = -1
		edges      []Edge
	)
	for i, line := range lines {
		l := strings.TrimSpace(line)
		if l == "" {
			continue
		}
		fields := strings.Fields(l)
		switch fields[0] {
		case "c":
			if len(fields) < 3 || (fields[1] != "n" && fields[1] != "k") {
				continue
			}
			val, err := strconv.Atoi(fields[2])
			if err != nil {
				return nil, fmt.Errorf("line %d: could not parse %q: %v", i+1, l, err)
			}
			if fields[1] == "n" {
				n, nSet = val, true
			} else {
				k, kSet = val, true
			}
		case "p":
			if len(fields) >= 2 && fields[1] == "cnf" {
				return nil, ErrCNFInput
			}
			if len(fields) < 4 || fields[1] != "edge" {
				return nil, fmt.Errorf("line %d: expected \"p edge <nodes> <edges>\", got %q", i+1, l)
			}
			nodes, err := strconv.Atoi(fields[2])
			if err != nil {
				return nil, fmt.Errorf("line %d: could not parse %q: %v", i+1, fields[2], err)
			}
			numNodes = nodes
			if cap(edges) == 0 {
				if ne, err := strconv.Atoi(fields[3]); err == nil && ne > 0 {
					edges = make([]Edge, 0, ne)
				}
			}
		case "e":
			if len(fields) != 3 {
				return nil, fmt.Errorf("line %d: expected \"e u v\", got %q", i+1, l)
			}
			u, err := strconv.Atoi(fields[1])
			if err != nil {
				return nil, fmt.Errorf("line %d: could not parse %q: %v", i+1, fields[1], err)
			}
			v, err := strconv.Atoi(fields[2])
			if err != nil {
				return nil, fmt.Errorf("line %d: could not parse %q: %v", i+1, fields[2], err)
			}
			// e lines are 1-indexed.
			edges = append(edges, Edge{U: u - 1, V: v - 1})
		default:
			return nil, fmt.Errorf("line %d: unexpected %q in a graph file", i+1, l)
		}
	}
	if !nSet {
		if numNodes < 0 {
			return nil, fmt.Errorf("could not determine n: no \"p edge\" line and no \"c n\" comment")
		}
		n = numNodes / 2
	}
	if !kSet {
		k = len(edges)
	}
	return New(n, k, edges)
}

// ParseEdgeList parses the literal edge syntax used on the command line:
// whitespace-separated "u,v" pairs, 0-indexed.
func ParseEdgeList(s string) ([]Edge, error) {
	var edges []Edge
	for _, tok := range strings.Fields(s) {
		parts := strings.Split(tok, ",")
		if len(parts) != 2 {
			return nil, fmt.Errorf("could not parse edge %q: expected \"u,v\"", tok)
		}
		u, err := strconv.Atoi(strings.TrimSpace(parts[0]))
		if err != nil {
			return nil, fmt.Errorf("could not parse edge %q: %v", tok, err)
		}
		v, err := strconv.Atoi(strings.TrimSpace(parts[1]))
		if err != nil {
			return nil, fmt.Errorf("could not parse edge %q: %v", tok, err)
		}
		edges = append(edges, Edge{U: u, V: v})
	}
	return edges, nil
}
