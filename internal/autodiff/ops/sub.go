package ops

import "github.com/nerve-ml/nerve/internal/tensor"

// SubOp represents element-wise subtraction: output = a - b.
//
// Backward: d(a-b)/da = 1, d(a-b)/db = -1.
type SubOp struct {
	inputs []*tensor.Array // [a, b]
	output *tensor.Array
}

// NewSubOp creates a new SubOp.
func NewSubOp(a, b, output *tensor.Array) *SubOp {
	return &SubOp{
		inputs: []*tensor.Array{a, b},
		output: output,
	}
}

// Backward computes input gradients for subtraction.
func (op *SubOp) Backward(outputGrad *tensor.Array, backend tensor.Backend) []*tensor.Array {
	a, b := op.inputs[0], op.inputs[1]

	gradA := reduceBroadcast(outputGrad, a.Shape(), backend)
	gradB := reduceBroadcast(negate(outputGrad), b.Shape(), backend)

	return []*tensor.Array{gradA, gradB}
}

// Inputs returns the input arrays [a, b].
func (op *SubOp) Inputs() []*tensor.Array {
	return op.inputs
}

// Output returns the output array a - b.
func (op *SubOp) Output() *tensor.Array {
	return op.output
}
