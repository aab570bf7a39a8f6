package ops

import "github.com/nerve-ml/nerve/internal/tensor"

// AddOp represents element-wise addition: output = a + b.
//
// Backward: d(a+b)/da = d(a+b)/db = 1, so the output gradient flows to both
// inputs, reduced over any broadcast dimensions.
type AddOp struct {
	inputs []*tensor.Array // [a, b]
	output *tensor.Array
}

// NewAddOp creates a new AddOp.
func NewAddOp(a, b, output *tensor.Array) *AddOp {
	return &AddOp{
		inputs: []*tensor.Array{a, b},
		output: output,
	}
}

// Backward computes input gradients for addition.
func (op *AddOp) Backward(outputGrad *tensor.Array, backend tensor.Backend) []*tensor.Array {
	a, b := op.inputs[0], op.inputs[1]

	gradA := reduceBroadcast(outputGrad, a.Shape(), backend)
	gradB := reduceBroadcast(outputGrad, b.Shape(), backend)

	return []*tensor.Array{gradA, gradB}
}

// Inputs returns the input arrays [a, b].
func (op *AddOp) Inputs() []*tensor.Array {
	return op.inputs
}

// Output returns the output array a + b.
func (op *AddOp) Output() *tensor.Array {
	return op.output
}
