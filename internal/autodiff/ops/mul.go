package ops

import "github.com/nerve-ml/nerve/internal/tensor"

// MulOp represents element-wise multiplication: output = a * b.
//
// Backward: d(a*b)/da = b, d(a*b)/db = a.
type MulOp struct {
	inputs []*tensor.Array // [a, b]
	output *tensor.Array
}

// NewMulOp creates a new MulOp.
func NewMulOp(a, b, output *tensor.Array) *MulOp {
	return &MulOp{
		inputs: []*tensor.Array{a, b},
		output: output,
	}
}

// Backward computes input gradients for multiplication.
func (op *MulOp) Backward(outputGrad *tensor.Array, backend tensor.Backend) []*tensor.Array {
	a, b := op.inputs[0], op.inputs[1]

	gradA := reduceBroadcast(backend.Mul(outputGrad, b), a.Shape(), backend)
	gradB := reduceBroadcast(backend.Mul(outputGrad, a), b.Shape(), backend)

	return []*tensor.Array{gradA, gradB}
}

// Inputs returns the input arrays [a, b].
func (op *MulOp) Inputs() []*tensor.Array {
	return op.inputs
}

// Output returns the output array a * b.
func (op *MulOp) Output() *tensor.Array {
	return op.output
}
