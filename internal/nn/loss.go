package nn

import (
	"fmt"

	"github.com/nerve-ml/nerve/internal/tensor"
)

// Loss reduces predictions and targets to a scalar-shaped array. When the
// backend is an autodiff decorator, the reduction is built from recorded
// operations so Backward can flow gradients out of it.
type Loss[B tensor.Backend] interface {
	// Forward computes the loss of predictions against targets.
	// Panics if the two shapes differ.
	Forward(backend B, predictions, targets *tensor.Array) *tensor.Array

	// Name returns a short identifier for logs and error messages.
	Name() string
}

// MSE is the mean squared error: mean((predictions - targets)²).
type MSE[B tensor.Backend] struct{}

// Forward computes the mean squared error as a scalar-shaped array.
func (MSE[B]) Forward(backend B, predictions, targets *tensor.Array) *tensor.Array {
	if !predictions.Shape().Equal(targets.Shape()) {
		panic(fmt.Sprintf("mse: predictions shape %v does not match targets shape %v",
			predictions.Shape(), targets.Shape()))
	}

	diff := backend.Sub(predictions, targets)
	return backend.Mean(backend.Mul(diff, diff))
}

// Name returns "mse".
func (MSE[B]) Name() string { return "mse" }
