package encode

import (
	"testing"

	"github.com/crillab/equicut/cnf"
	"github.com/crillab/equicut/instance"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeValidModel(t *testing.T) {
	enc, err := Encode(mustInstance(t, 2, 1, pathEdges))
	require.NoError(t, err)
	model := make(cnf.Model, enc.Formula.NbVars)
	model[0], model[1] = true, true // nodes 0 and 1 go to U
	part, err := enc.Decode(model)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1}, part.U)
	assert.Equal(t, []int{2, 3}, part.W)
	assert.Equal(t, []instance.Edge{{U: 1, V: 2}}, part.Crossing)
}

func TestDecodeIgnoresCounterBindings(t *testing.T) {
	enc, err := Encode(mustInstance(t, 2, 3, pathEdges))
	require.NoError(t, err)
	model := make(cnf.Model, enc.Formula.NbVars)
	model[2], model[3] = true, true // nodes 2 and 3 go to U
	for i := enc.Inst.NumNodes(); i < len(model); i++ {
		model[i] = true // garbage in edge and counter variables
	}
	part, err := enc.Decode(model)
	require.NoError(t, err)
	assert.Equal(t, []int{2, 3}, part.U)
	assert.Equal(t, []instance.Edge{{U: 1, V: 2}}, part.Crossing,
		"crossing edges come from a recount, not from edge variables")
}

func TestDecodeUnbalanced(t *testing.T) {
	enc, err := Encode(mustInstance(t, 2, 3, pathEdges))
	require.NoError(t, err)
	model := make(cnf.Model, enc.Formula.NbVars)
	model[0], model[1], model[2] = true, true, true // three nodes in U
	_, err = enc.Decode(model)
	var ce *ConsistencyError
	require.ErrorAs(t, err, &ce)
	assert.Contains(t, ce.Detail, "nodes in U")
}

func TestDecodeEmptyModel(t *testing.T) {
	enc, err := Encode(mustInstance(t, 1, 0, nil))
	require.NoError(t, err)
	// A model shorter than the formula reads as all-false: U ends up empty.
	_, err = enc.Decode(cnf.Model{})
	var ce *ConsistencyError
	assert.ErrorAs(t, err, &ce)
}

func TestDecodeCrossingOverBudget(t *testing.T) {
	enc, err := Encode(mustInstance(t, 2, 1, pathEdges))
	require.NoError(t, err)
	model := make(cnf.Model, enc.Formula.NbVars)
	model[0], model[2] = true, true // U = {0, 2} crosses all three edges
	_, err = enc.Decode(model)
	var ce *ConsistencyError
	require.ErrorAs(t, err, &ce)
	assert.Contains(t, ce.Detail, "crossing")
}
