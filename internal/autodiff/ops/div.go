package ops

import "github.com/nerve-ml/nerve/internal/tensor"

// DivOp represents element-wise division: output = a / b.
//
// Backward: d(a/b)/da = 1/b, d(a/b)/db = -a/b².
type DivOp struct {
	inputs []*tensor.Array // [a, b]
	output *tensor.Array
}

// NewDivOp creates a new DivOp.
func NewDivOp(a, b, output *tensor.Array) *DivOp {
	return &DivOp{
		inputs: []*tensor.Array{a, b},
		output: output,
	}
}

// Backward computes input gradients for division.
func (op *DivOp) Backward(outputGrad *tensor.Array, backend tensor.Backend) []*tensor.Array {
	a, b := op.inputs[0], op.inputs[1]

	// grad_a = outputGrad / b
	gradA := reduceBroadcast(backend.Div(outputGrad, b), a.Shape(), backend)

	// grad_b = -outputGrad * a / b²
	b2 := backend.Mul(b, b)
	gradB := reduceBroadcast(negate(backend.Div(backend.Mul(outputGrad, a), b2)), b.Shape(), backend)

	return []*tensor.Array{gradA, gradB}
}

// Inputs returns the input arrays [a, b].
func (op *DivOp) Inputs() []*tensor.Array {
	return op.inputs
}

// Output returns the output array a / b.
func (op *DivOp) Output() *tensor.Array {
	return op.output
}
