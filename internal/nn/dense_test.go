package nn_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nerve-ml/nerve/internal/autodiff"
	"github.com/nerve-ml/nerve/internal/backend/cpu"
	"github.com/nerve-ml/nerve/internal/nn"
	"github.com/nerve-ml/nerve/internal/tensor"
)

type graph = *autodiff.Autograd[*cpu.CPUBackend]

// fixedInit fills weights with a constant for predictable forward math.
type fixedInit struct {
	value float64
}

func (f fixedInit) Initialize(inSize, outSize int) *tensor.Array {
	return tensor.Full(tensor.Shape{inSize, outSize}, f.value)
}

func TestNewDense_Defaults(t *testing.T) {
	layer, err := nn.NewDense(3, 2, nn.DenseConfig[graph]{})
	require.NoError(t, err)

	assert.Equal(t, 3, layer.InSize())
	assert.Equal(t, 2, layer.OutSize())
	assert.Equal(t, tensor.Shape{3, 2}, layer.Weights().Shape())
	assert.Equal(t, tensor.Shape{1, 2}, layer.Biases().Shape())
	assert.Equal(t, "linear", layer.Activation().Name())

	// Biases start at zero, weight gradients start at zero.
	assert.Equal(t, []float64{0, 0}, layer.Biases().Data())
	assert.Equal(t, []float64{0, 0, 0, 0, 0, 0}, layer.Weights().Grad())
}

func TestNewDense_RejectsBadSizes(t *testing.T) {
	_, err := nn.NewDense(0, 2, nn.DenseConfig[graph]{})
	assert.Error(t, err)

	_, err = nn.NewDense(2, -1, nn.DenseConfig[graph]{})
	assert.Error(t, err)
}

func TestDense_ForwardMath(t *testing.T) {
	backend := autodiff.New(cpu.New())
	layer, err := nn.NewDense(2, 1, nn.DenseConfig[graph]{
		Initializer: fixedInit{value: 0.5},
	})
	require.NoError(t, err)
	copy(layer.Biases().Data(), []float64{0.25})

	input, err := tensor.FromSlice([]float64{1, 2, 3, 4}, tensor.Shape{2, 2})
	require.NoError(t, err)

	output := layer.Forward(backend, input)

	// Row i: 0.5*(x0 + x1) + 0.25.
	assert.Equal(t, tensor.Shape{2, 1}, output.Shape())
	assert.InDeltaSlice(t, []float64{1.75, 3.75}, output.Data(), 1e-12)

	// The input itself must be untouched.
	assert.Equal(t, []float64{1, 2, 3, 4}, input.Data())
}

func TestDense_ForwardPanicsOnBadInput(t *testing.T) {
	backend := autodiff.New(cpu.New())
	layer, err := nn.NewDense(3, 2, nn.DenseConfig[graph]{})
	require.NoError(t, err)

	wrongCols, _ := tensor.FromSlice([]float64{1, 2}, tensor.Shape{1, 2})
	assert.Panics(t, func() { layer.Forward(backend, wrongCols) })

	oneD, _ := tensor.FromSlice([]float64{1, 2, 3}, tensor.Shape{3})
	assert.Panics(t, func() { layer.Forward(backend, oneD) })
}

func TestDense_SeededInitializerIsDeterministic(t *testing.T) {
	mk := func() *nn.Dense[graph] {
		layer, err := nn.NewDense(4, 3, nn.DenseConfig[graph]{
			Initializer: nn.XavierUniform{Rand: rand.New(rand.NewSource(42))},
		})
		require.NoError(t, err)
		return layer
	}

	a, b := mk(), mk()
	assert.Equal(t, a.Weights().Data(), b.Weights().Data())
}

func TestDense_InitializerBounds(t *testing.T) {
	tests := []struct {
		name  string
		init  nn.Initializer
		bound float64
	}{
		{"xavier", nn.XavierUniform{Rand: rand.New(rand.NewSource(1))}, 0.25},     // sqrt(6/96)
		{"he", nn.HeUniform{Rand: rand.New(rand.NewSource(1))}, 0.3535533906075}, // sqrt(6/48)
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			weights := tt.init.Initialize(48, 48)
			for _, v := range weights.Data() {
				assert.LessOrEqual(t, v, tt.bound)
				assert.GreaterOrEqual(t, v, -tt.bound)
			}
		})
	}
}

// replaceOpt swaps parameters for fixed arrays, to observe Update wiring.
type replaceOpt struct {
	weights *tensor.Array
	biases  *tensor.Array
	gotIdx  int
}

func (r *replaceOpt) Update(_ *nn.Dense[graph], idx int) (*tensor.Array, *tensor.Array) {
	r.gotIdx = idx
	return r.weights, r.biases
}

func TestDense_UpdateReplacesParameters(t *testing.T) {
	layer, err := nn.NewDense(2, 2, nn.DenseConfig[graph]{})
	require.NoError(t, err)

	opt := &replaceOpt{
		weights: tensor.Full(tensor.Shape{2, 2}, 9),
		biases:  tensor.Full(tensor.Shape{1, 2}, 7),
	}
	layer.Update(opt, 3)

	assert.Equal(t, 3, opt.gotIdx)
	assert.Same(t, opt.weights, layer.Weights())
	assert.Same(t, opt.biases, layer.Biases())
}

func TestActivation_PanicsWithoutGraphBackend(t *testing.T) {
	// The raw CPU backend has no activation support; the panic should point
	// at the autodiff decorator.
	backend := cpu.New()
	x := tensor.Full(tensor.Shape{1, 2}, 1)

	assert.Panics(t, func() { nn.ReLU[*cpu.CPUBackend]{}.Apply(backend, x) })
	assert.Panics(t, func() { nn.Tanh[*cpu.CPUBackend]{}.Apply(backend, x) })
	assert.Panics(t, func() { nn.Sigmoid[*cpu.CPUBackend]{}.Apply(backend, x) })
}

func TestActivation_ValuesThroughAutodiff(t *testing.T) {
	backend := autodiff.New(cpu.New())
	x, err := tensor.FromSlice([]float64{-1, 0, 2}, tensor.Shape{1, 3})
	require.NoError(t, err)

	relu := nn.ReLU[graph]{}.Apply(backend, x)
	assert.Equal(t, []float64{0, 0, 2}, relu.Data())

	tanh := nn.Tanh[graph]{}.Apply(backend, x)
	assert.InDelta(t, -0.7615941559557649, tanh.Data()[0], 1e-12)
	assert.Zero(t, tanh.Data()[1])

	sigmoid := nn.Sigmoid[graph]{}.Apply(backend, x)
	assert.InDelta(t, 0.5, sigmoid.Data()[1], 1e-12)
	assert.InDelta(t, 0.8807970779778823, sigmoid.Data()[2], 1e-12)

	// Identity returns its argument untouched.
	assert.Same(t, x, nn.Linear[graph]{}.Apply(backend, x))
}
