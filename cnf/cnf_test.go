package cnf

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLit(t *testing.T) {
	var tests = []struct {
		lit Lit
		i   int
		str string
	}{
		{Pos(1), 1, "x1"},
		{Neg(1), -1, "¬x1"},
		{Pos(42), 42, "x42"},
		{Neg(7).Negation(), 7, "x7"},
		{Pos(7).Negation(), -7, "¬x7"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.i, tt.lit.Int())
		assert.Equal(t, tt.str, tt.lit.String())
	}
}

func TestNegationInvolution(t *testing.T) {
	for v := 1; v <= 5; v++ {
		assert.Equal(t, Pos(v), Pos(v).Negation().Negation())
		assert.Equal(t, Neg(v), Neg(v).Negation().Negation())
	}
}

func TestClauseCNF(t *testing.T) {
	c := Clause{Pos(1), Neg(2), Pos(3)}
	assert.Equal(t, "1 -2 3 0", c.CNF())
}

func TestFormulaAdd(t *testing.T) {
	var f Formula
	f.Add(Clause{Pos(1), Neg(2)})
	f.Add(Clause{Neg(5)})
	f.Add(Clause{Pos(3), Pos(4)})
	assert.Equal(t, 5, f.NbVars, "variable count must follow the largest identifier seen")
	assert.Equal(t, 3, f.NbClauses())
}

func TestWriteDimacs(t *testing.T) {
	var f Formula
	f.Add(Clause{Pos(1), Neg(2), Pos(3)})
	f.Add(Clause{Neg(1), Pos(2)})
	f.Add(Clause{Neg(3)})
	want := "p cnf 3 3\n1 -2 3 0\n-1 2 0\n-3 0\n"
	var sb strings.Builder
	require.NoError(t, f.WriteDimacs(&sb))
	assert.Equal(t, want, sb.String())
	assert.Equal(t, want, f.Dimacs())
}

func TestInts(t *testing.T) {
	var f Formula
	f.Add(Clause{Pos(2), Neg(1)})
	f.Add(Clause{Neg(2)})
	assert.Equal(t, [][]int{{2, -1}, {-2}}, f.Ints())
}

func TestModelValue(t *testing.T) {
	m := Model{true, false, true}
	var tests = []struct {
		v    int
		want bool
	}{
		{1, true},
		{2, false},
		{3, true},
		{0, false},
		{4, false},
		{-1, false},
	}
	for _, tt := range tests {
		if got := m.Value(tt.v); got != tt.want {
			t.Errorf("Value(%d): expected %t, got %t", tt.v, tt.want, got)
		}
	}
}
