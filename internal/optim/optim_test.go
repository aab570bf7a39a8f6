package optim_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nerve-ml/nerve/internal/backend/cpu"
	"github.com/nerve-ml/nerve/internal/nn"
	"github.com/nerve-ml/nerve/internal/optim"
	"github.com/nerve-ml/nerve/internal/tensor"
)

// constInit produces a weight matrix filled with a single value, giving
// tests fully predictable parameters.
type constInit struct {
	value float64
}

func (c constInit) Initialize(inSize, outSize int) *tensor.Array {
	return tensor.Full(tensor.Shape{inSize, outSize}, c.value)
}

func newTestLayer(t *testing.T, inSize, outSize int, value float64) *nn.Dense[*cpu.CPUBackend] {
	t.Helper()
	layer, err := nn.NewDense(inSize, outSize, nn.DenseConfig[*cpu.CPUBackend]{
		Initializer: constInit{value: value},
	})
	require.NoError(t, err)
	return layer
}

func setGrads(param *tensor.Array, grads ...float64) {
	copy(param.Grad(), grads)
}

func TestSGD_PlainStep(t *testing.T) {
	layer := newTestLayer(t, 2, 1, 0.5)
	setGrads(layer.Weights(), 1, 2)
	setGrads(layer.Biases(), 3)

	sgd := optim.NewSGD[*cpu.CPUBackend](optim.SGDConfig{LR: 0.1})
	weights, biases := sgd.Update(layer, 0)

	assert.InDeltaSlice(t, []float64{0.4, 0.3}, weights.Data(), 1e-12)
	assert.InDeltaSlice(t, []float64{-0.3}, biases.Data(), 1e-12)

	// Current parameters are replaced, never mutated.
	assert.NotSame(t, layer.Weights(), weights)
	assert.Equal(t, []float64{0.5, 0.5}, layer.Weights().Data())
}

func TestSGD_Momentum(t *testing.T) {
	layer := newTestLayer(t, 1, 1, 0.5)
	sgd := optim.NewSGD[*cpu.CPUBackend](optim.SGDConfig{LR: 0.1, Momentum: 0.9})

	// First step: v = -0.1, p = 0.4.
	setGrads(layer.Weights(), 1)
	layer.Update(sgd, 0)
	assert.InDelta(t, 0.4, layer.Weights().Data()[0], 1e-12)

	// Second step with the same gradient: v = 0.9*(-0.1) - 0.1 = -0.19.
	setGrads(layer.Weights(), 1)
	layer.Update(sgd, 0)
	assert.InDelta(t, 0.21, layer.Weights().Data()[0], 1e-12)
}

func TestSGD_DefaultLearningRate(t *testing.T) {
	layer := newTestLayer(t, 1, 1, 1)
	setGrads(layer.Weights(), 1)

	sgd := optim.NewSGD[*cpu.CPUBackend](optim.SGDConfig{})
	weights, _ := sgd.Update(layer, 0)

	assert.InDelta(t, 0.99, weights.Data()[0], 1e-12)
}

func TestSGD_PerLayerStateIsolation(t *testing.T) {
	first := newTestLayer(t, 1, 1, 0.5)
	second := newTestLayer(t, 1, 1, 0.5)
	sgd := optim.NewSGD[*cpu.CPUBackend](optim.SGDConfig{LR: 0.1, Momentum: 0.9})

	// Step the first layer twice so its velocity builds up.
	setGrads(first.Weights(), 1)
	first.Update(sgd, 0)
	setGrads(first.Weights(), 1)
	first.Update(sgd, 0)

	// The second layer's first step must be a fresh-velocity step, not one
	// contaminated by the first layer's history.
	setGrads(second.Weights(), 1)
	second.Update(sgd, 1)
	assert.InDelta(t, 0.4, second.Weights().Data()[0], 1e-12)
}

func TestAdaGrad_AdaptiveSteps(t *testing.T) {
	layer := newTestLayer(t, 1, 1, 0.5)
	ag := optim.NewAdaGrad[*cpu.CPUBackend](optim.AdaGradConfig{LR: 0.1})

	// First step: G = 9, step = -0.1*3/3 = -0.1.
	setGrads(layer.Weights(), 3)
	layer.Update(ag, 0)
	assert.InDelta(t, 0.4, layer.Weights().Data()[0], 1e-8)

	// Second identical gradient takes a smaller step: G = 18.
	setGrads(layer.Weights(), 3)
	layer.Update(ag, 0)
	expected := 0.4 - 0.1*3/math.Sqrt(18)
	assert.InDelta(t, expected, layer.Weights().Data()[0], 1e-8)
}

func TestAdam_FirstStepApproachesLR(t *testing.T) {
	layer := newTestLayer(t, 1, 1, 0.5)
	adam := optim.NewAdam[*cpu.CPUBackend](optim.AdamConfig{LR: 0.1})

	// After bias correction the first step is lr * g/|g| up to eps.
	setGrads(layer.Weights(), 2)
	layer.Update(adam, 0)
	assert.InDelta(t, 0.4, layer.Weights().Data()[0], 1e-8)

	setGrads(layer.Weights(), -2)
	layer.Update(adam, 0)
	assert.Greater(t, layer.Weights().Data()[0], 0.4)
}

func TestAdam_BiasesUpdatedIndependently(t *testing.T) {
	layer := newTestLayer(t, 2, 2, 0.5)
	adam := optim.NewAdam[*cpu.CPUBackend](optim.AdamConfig{LR: 0.1})

	setGrads(layer.Weights(), 1, 1, 1, 1)
	setGrads(layer.Biases(), 0, 5)

	weights, biases := adam.Update(layer, 0)

	for _, v := range weights.Data() {
		assert.InDelta(t, 0.4, v, 1e-8)
	}
	// The zero-gradient bias coordinate must not move.
	assert.InDelta(t, 0.0, biases.Data()[0], 1e-12)
	assert.InDelta(t, -0.1, biases.Data()[1], 1e-8)
}
