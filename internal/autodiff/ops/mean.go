package ops

import "github.com/nerve-ml/nerve/internal/tensor"

// MeanOp represents a full reduction to the scalar mean: output = mean(a).
//
// Backward: every input element contributed 1/n, so the scalar output
// gradient spreads as outputGrad/n over the input's shape.
type MeanOp struct {
	inputs []*tensor.Array // [a]
	output *tensor.Array   // shape [1]
}

// NewMeanOp creates a new MeanOp.
func NewMeanOp(a, output *tensor.Array) *MeanOp {
	return &MeanOp{
		inputs: []*tensor.Array{a},
		output: output,
	}
}

// Backward spreads the scalar gradient uniformly over the input.
func (op *MeanOp) Backward(outputGrad *tensor.Array, _ tensor.Backend) []*tensor.Array {
	a := op.inputs[0]
	n := float64(a.NumElements())

	grad := tensor.Full(a.Shape(), outputGrad.Data()[0]/n)
	return []*tensor.Array{grad}
}

// Inputs returns the input array [a].
func (op *MeanOp) Inputs() []*tensor.Array {
	return op.inputs
}

// Output returns the scalar-shaped mean.
func (op *MeanOp) Output() *tensor.Array {
	return op.output
}
