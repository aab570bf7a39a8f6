package ops

import "github.com/nerve-ml/nerve/internal/tensor"

// ReLUOp represents the rectified linear unit: output = max(0, a).
//
// Backward: d(ReLU(x))/dx = 1 where x > 0, else 0.
type ReLUOp struct {
	inputs []*tensor.Array // [a]
	output *tensor.Array
}

// NewReLUOp creates a new ReLUOp.
func NewReLUOp(a, output *tensor.Array) *ReLUOp {
	return &ReLUOp{
		inputs: []*tensor.Array{a},
		output: output,
	}
}

// Backward masks the output gradient by the sign of the input.
func (op *ReLUOp) Backward(outputGrad *tensor.Array, _ tensor.Backend) []*tensor.Array {
	a := op.inputs[0]

	grad := tensor.Zeros(a.Shape())
	out := grad.Data()
	og := outputGrad.Data()
	for i, v := range a.Data() {
		if v > 0 {
			out[i] = og[i]
		}
	}

	return []*tensor.Array{grad}
}

// Inputs returns the input array [a].
func (op *ReLUOp) Inputs() []*tensor.Array {
	return op.inputs
}

// Output returns the output array max(0, a).
func (op *ReLUOp) Output() *tensor.Array {
	return op.output
}
