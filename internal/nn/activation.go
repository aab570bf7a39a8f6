package nn

import (
	"fmt"

	"github.com/nerve-ml/nerve/internal/tensor"
)

// Backend capability interfaces for activation functions. The plain compute
// backends only implement tensor.Backend; the autodiff decorator adds these
// so the activations participate in the recorded graph.

// ReLUBackend is implemented by backends that support the rectified linear
// unit.
type ReLUBackend interface {
	ReLU(x *tensor.Array) *tensor.Array
}

// TanhBackend is implemented by backends that support the hyperbolic
// tangent.
type TanhBackend interface {
	Tanh(x *tensor.Array) *tensor.Array
}

// SigmoidBackend is implemented by backends that support the logistic
// sigmoid.
type SigmoidBackend interface {
	Sigmoid(x *tensor.Array) *tensor.Array
}

// Activation is an element-wise non-linearity applied after a layer's
// affine transform.
//
// Implementations must not mutate x; they return a new array so the
// pre-activation stays intact for the backward pass.
type Activation[B tensor.Backend] interface {
	// Apply computes the activation of x on the given backend.
	Apply(backend B, x *tensor.Array) *tensor.Array

	// Name returns a short identifier for logs and error messages.
	Name() string
}

// Linear is the identity activation. It is the default for a layer
// constructed without an explicit activation.
type Linear[B tensor.Backend] struct{}

// Apply returns x unchanged.
func (Linear[B]) Apply(_ B, x *tensor.Array) *tensor.Array { return x }

// Name returns "linear".
func (Linear[B]) Name() string { return "linear" }

// ReLU is the rectified linear unit: max(0, x).
type ReLU[B tensor.Backend] struct{}

// Apply computes max(0, x) element-wise.
//
// Panics if the backend does not implement ReLUBackend; wrap the backend
// with autodiff.New to get activation support.
func (ReLU[B]) Apply(backend B, x *tensor.Array) *tensor.Array {
	rb, ok := any(backend).(ReLUBackend)
	if !ok {
		panic(fmt.Sprintf("relu: backend %s does not support ReLU, wrap it with autodiff.New", backend.Name()))
	}
	return rb.ReLU(x)
}

// Name returns "relu".
func (ReLU[B]) Name() string { return "relu" }

// Tanh is the hyperbolic tangent activation, squashing values into (-1, 1).
type Tanh[B tensor.Backend] struct{}

// Apply computes tanh(x) element-wise.
//
// Panics if the backend does not implement TanhBackend; wrap the backend
// with autodiff.New to get activation support.
func (Tanh[B]) Apply(backend B, x *tensor.Array) *tensor.Array {
	tb, ok := any(backend).(TanhBackend)
	if !ok {
		panic(fmt.Sprintf("tanh: backend %s does not support Tanh, wrap it with autodiff.New", backend.Name()))
	}
	return tb.Tanh(x)
}

// Name returns "tanh".
func (Tanh[B]) Name() string { return "tanh" }

// Sigmoid is the logistic sigmoid activation, squashing values into (0, 1).
type Sigmoid[B tensor.Backend] struct{}

// Apply computes 1 / (1 + exp(-x)) element-wise.
//
// Panics if the backend does not implement SigmoidBackend; wrap the backend
// with autodiff.New to get activation support.
func (Sigmoid[B]) Apply(backend B, x *tensor.Array) *tensor.Array {
	sb, ok := any(backend).(SigmoidBackend)
	if !ok {
		panic(fmt.Sprintf("sigmoid: backend %s does not support Sigmoid, wrap it with autodiff.New", backend.Name()))
	}
	return sb.Sigmoid(x)
}

// Name returns "sigmoid".
func (Sigmoid[B]) Name() string { return "sigmoid" }
