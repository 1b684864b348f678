package cnf

// A Model associates each variable of a formula with a binding. Index i
// holds the binding of variable i+1, following the convention of gophersat
// models.
type Model []bool

// Value returns the binding of the variable v, or false when v lies outside
// the model. Variables irrelevant to the caller may simply be absent.
func (m Model) Value(v int) bool {
	if v < 1 || v > len(m) {
		return false
	}
	return m[v-1]
}
