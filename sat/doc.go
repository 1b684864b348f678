// Package sat runs CNF formulas through SAT solver backends. Every backend
// implements the same Solver interface: an external glucose-compatible
// process, the embedded gophersat and gini libraries, a portfolio racing
// several backends, and a scripted double for tests. UNSAT is a verdict,
// not an error; errors mean the backend could not produce a verdict at all.
package sat
