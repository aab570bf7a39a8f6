package nn

import (
	"fmt"

	"github.com/nerve-ml/nerve/internal/tensor"
)

// Dense implements a fully connected layer.
//
// Performs the transformation: y = activation(x @ W + b)
// where:
//   - x is the input with shape [batch, inSize]
//   - W is the weight matrix with shape [inSize, outSize]
//   - b is the bias row with shape [1, outSize], broadcast over the batch
//   - y is the output with shape [batch, outSize]
//
// Weights come from the configured Initializer (Xavier uniform by default);
// biases start at zero.
//
// Example:
//
//	backend := autodiff.New(cpu.New())
//	layer, err := nn.NewDense(784, 128, nn.DenseConfig[*autodiff.Autograd[*cpu.CPUBackend]]{
//		Activation: nn.ReLU[*autodiff.Autograd[*cpu.CPUBackend]]{},
//	})
type Dense[B tensor.Backend] struct {
	inSize     int
	outSize    int
	weights    *tensor.Array // [inSize, outSize]
	biases     *tensor.Array // [1, outSize]
	activation Activation[B]
}

// DenseConfig configures optional layer behavior. The zero value selects
// the identity activation and Xavier uniform initialization.
type DenseConfig[B tensor.Backend] struct {
	Activation  Activation[B]
	Initializer Initializer
}

// NewDense creates a fully connected layer with inSize inputs and outSize
// outputs.
func NewDense[B tensor.Backend](inSize, outSize int, cfg DenseConfig[B]) (*Dense[B], error) {
	if inSize <= 0 || outSize <= 0 {
		return nil, fmt.Errorf("dense: layer sizes must be positive, got %dx%d", inSize, outSize)
	}

	activation := cfg.Activation
	if activation == nil {
		activation = Linear[B]{}
	}
	initializer := cfg.Initializer
	if initializer == nil {
		initializer = XavierUniform{}
	}

	return &Dense[B]{
		inSize:     inSize,
		outSize:    outSize,
		weights:    initializer.Initialize(inSize, outSize),
		biases:     tensor.Zeros(tensor.Shape{1, outSize}),
		activation: activation,
	}, nil
}

// Forward computes activation(input @ W + b).
//
// Panics if the input is not a [batch, inSize] matrix.
func (d *Dense[B]) Forward(backend B, input *tensor.Array) *tensor.Array {
	shape := input.Shape()
	if len(shape) != 2 || shape[1] != d.inSize {
		panic(fmt.Sprintf("dense: expected input shape [batch, %d], got %v", d.inSize, shape))
	}

	z := backend.Add(backend.MatMul(input, d.weights), d.biases)
	return d.activation.Apply(backend, z)
}

// Update asks the optimizer for new parameters and installs them. The old
// weight and bias arrays are replaced, never mutated, so anything recorded
// against them stays valid.
//
// idx identifies this layer in the optimizer's per-layer state; callers
// must pass the same index for the same layer on every step.
func (d *Dense[B]) Update(optimizer Optimizer[B], idx int) {
	weights, biases := optimizer.Update(d, idx)
	d.weights = weights
	d.biases = biases
}

// Weights returns the current weight matrix, shaped [inSize, outSize].
func (d *Dense[B]) Weights() *tensor.Array { return d.weights }

// Biases returns the current bias row, shaped [1, outSize].
func (d *Dense[B]) Biases() *tensor.Array { return d.biases }

// InSize returns the number of input features.
func (d *Dense[B]) InSize() int { return d.inSize }

// OutSize returns the number of output features.
func (d *Dense[B]) OutSize() int { return d.outSize }

// Activation returns the layer's activation function.
func (d *Dense[B]) Activation() Activation[B] { return d.activation }
