// Package cnf provides the propositional building blocks shared by the
// encoder and the solver backends: literals, clauses, formulas and models.
// A Formula can render itself in the DIMACS CNF format understood by
// virtually every SAT solver.
package cnf
