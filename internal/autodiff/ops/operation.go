// Package ops defines the operation nodes recorded during the forward pass
// and their backward rules.
//
// Each operation captures its input and output arrays when the forward pass
// runs, and computes input gradients from the output gradient during the
// backward pass:
//   - AddOp/SubOp: gradient flows through, reduced over broadcast dims
//   - MulOp/DivOp: product/quotient rules
//   - MatMulOp: d(A@B)/dA = grad@Bᵀ, d(A@B)/dB = Aᵀ@grad
//   - ReLUOp/TanhOp/SigmoidOp: elementwise activation derivatives
//   - MeanOp: spreads grad/n over the input
package ops

import "github.com/nerve-ml/nerve/internal/tensor"

// Operation is a node in the recorded computation graph.
type Operation interface {
	// Backward computes gradients for the inputs given the output gradient.
	// Returns one gradient per input, in input order; a nil entry means no
	// gradient flows to that input.
	Backward(outputGrad *tensor.Array, backend tensor.Backend) []*tensor.Array

	// Inputs returns the input arrays of this operation.
	Inputs() []*tensor.Array

	// Output returns the array produced by this operation.
	Output() *tensor.Array
}
