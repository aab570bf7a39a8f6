package ops

import "github.com/nerve-ml/nerve/internal/tensor"

// TransposeOp represents a 2D transpose: output = aᵀ.
//
// The backend materializes a new array for the transpose, so the operation
// must be recorded; otherwise gradients computed for the transposed view
// would never reach the original array.
type TransposeOp struct {
	inputs []*tensor.Array // [a]
	output *tensor.Array
}

// NewTransposeOp creates a new TransposeOp.
func NewTransposeOp(a, output *tensor.Array) *TransposeOp {
	return &TransposeOp{
		inputs: []*tensor.Array{a},
		output: output,
	}
}

// Backward transposes the output gradient back to the input's orientation.
func (op *TransposeOp) Backward(outputGrad *tensor.Array, backend tensor.Backend) []*tensor.Array {
	return []*tensor.Array{backend.Transpose(outputGrad)}
}

// Inputs returns the input array [a].
func (op *TransposeOp) Inputs() []*tensor.Array {
	return op.inputs
}

// Output returns the transposed array.
func (op *TransposeOp) Output() *tensor.Array {
	return op.output
}
