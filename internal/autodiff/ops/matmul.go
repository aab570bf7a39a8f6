package ops

import "github.com/nerve-ml/nerve/internal/tensor"

// MatMulOp represents matrix multiplication: output = a @ b.
//
// Backward:
//   - d(A@B)/dA = outputGrad @ Bᵀ
//   - d(A@B)/dB = Aᵀ @ outputGrad
type MatMulOp struct {
	inputs []*tensor.Array // [a, b]
	output *tensor.Array
}

// NewMatMulOp creates a new MatMulOp.
func NewMatMulOp(a, b, output *tensor.Array) *MatMulOp {
	return &MatMulOp{
		inputs: []*tensor.Array{a, b},
		output: output,
	}
}

// Backward computes input gradients for matrix multiplication.
func (op *MatMulOp) Backward(outputGrad *tensor.Array, backend tensor.Backend) []*tensor.Array {
	a, b := op.inputs[0], op.inputs[1]

	gradA := backend.MatMul(outputGrad, backend.Transpose(b))
	gradB := backend.MatMul(backend.Transpose(a), outputGrad)

	return []*tensor.Array{gradA, gradB}
}

// Inputs returns the input arrays [a, b].
func (op *MatMulOp) Inputs() []*tensor.Array {
	return op.inputs
}

// Output returns the output array a @ b.
func (op *MatMulOp) Output() *tensor.Array {
	return op.output
}
