package ops

import "github.com/nerve-ml/nerve/internal/tensor"

// SigmoidOp represents the sigmoid activation: output = 1 / (1 + exp(-a)).
//
// Backward: d(σ(x))/dx = σ(x)(1 - σ(x)), computed from the stored output.
type SigmoidOp struct {
	inputs []*tensor.Array // [a]
	output *tensor.Array
}

// NewSigmoidOp creates a new SigmoidOp.
func NewSigmoidOp(a, output *tensor.Array) *SigmoidOp {
	return &SigmoidOp{
		inputs: []*tensor.Array{a},
		output: output,
	}
}

// Backward computes the input gradient from the stored sigmoid output.
func (op *SigmoidOp) Backward(outputGrad *tensor.Array, _ tensor.Backend) []*tensor.Array {
	y := op.output.Data()

	grad := tensor.Zeros(op.inputs[0].Shape())
	out := grad.Data()
	for i, g := range outputGrad.Data() {
		out[i] = g * y[i] * (1 - y[i])
	}

	return []*tensor.Array{grad}
}

// Inputs returns the input array [a].
func (op *SigmoidOp) Inputs() []*tensor.Array {
	return op.inputs
}

// Output returns the output array σ(a).
func (op *SigmoidOp) Output() *tensor.Array {
	return op.output
}
