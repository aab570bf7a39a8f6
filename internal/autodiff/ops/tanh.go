package ops

import "github.com/nerve-ml/nerve/internal/tensor"

// TanhOp represents the hyperbolic tangent activation: output = tanh(a).
//
// Backward: d(tanh(x))/dx = 1 - tanh(x)², computed from the stored output.
type TanhOp struct {
	inputs []*tensor.Array // [a]
	output *tensor.Array
}

// NewTanhOp creates a new TanhOp.
func NewTanhOp(a, output *tensor.Array) *TanhOp {
	return &TanhOp{
		inputs: []*tensor.Array{a},
		output: output,
	}
}

// Backward computes the input gradient from the stored tanh output.
func (op *TanhOp) Backward(outputGrad *tensor.Array, _ tensor.Backend) []*tensor.Array {
	y := op.output.Data()

	grad := tensor.Zeros(op.inputs[0].Shape())
	out := grad.Data()
	for i, g := range outputGrad.Data() {
		out[i] = g * (1 - y[i]*y[i])
	}

	return []*tensor.Array{grad}
}

// Inputs returns the input array [a].
func (op *TanhOp) Inputs() []*tensor.Array {
	return op.inputs
}

// Output returns the output array tanh(a).
func (op *TanhOp) Output() *tensor.Array {
	return op.output
}
