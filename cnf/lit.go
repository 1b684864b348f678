package cnf

import "fmt"

// A Lit is a potentially negated propositional variable.
// Variable identifiers are positive integers, as in DIMACS files.
type Lit struct {
	Var     int  // The variable identifier
	Negated bool // Is the variable negated?
}

// Pos returns a positive literal for the variable v.
func Pos(v int) Lit {
	return Lit{Var: v}
}

// Neg returns a negated literal for the variable v.
func Neg(v int) Lit {
	return Lit{Var: v, Negated: true}
}

// Negation returns the logical negation of l.
func (l Lit) Negation() Lit {
	return Lit{Var: l.Var, Negated: !l.Negated}
}

// Int returns the DIMACS integer associated with l: the variable
// identifier, negative when l is negated.
func (l Lit) Int() int {
	if l.Negated {
		return -l.Var
	}
	return l.Var
}

func (l Lit) String() string {
	if l.Negated {
		return fmt.Sprintf("¬x%d", l.Var)
	}
	return fmt.Sprintf("x%d", l.Var)
}
