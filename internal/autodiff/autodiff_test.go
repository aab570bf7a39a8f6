package autodiff_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nerve-ml/nerve/internal/autodiff"
	"github.com/nerve-ml/nerve/internal/backend/cpu"
	"github.com/nerve-ml/nerve/internal/tensor"
)

func TestBackward_MultiplePathsSum(t *testing.T) {
	backend := autodiff.New(cpu.New())

	// y = x*x + x feeds x through two paths: dy/dx = 2x + 1.
	x, err := tensor.FromSlice([]float64{3}, tensor.Shape{1})
	require.NoError(t, err)

	y := backend.Add(backend.Mul(x, x), x)
	backend.Backward(y)

	assert.InDelta(t, 7.0, x.Grad()[0], 1e-12)
}

func TestBackward_GradientsAccumulateAcrossPasses(t *testing.T) {
	backend := autodiff.New(cpu.New())

	x, err := tensor.FromSlice([]float64{2}, tensor.Shape{1})
	require.NoError(t, err)

	// Two backward passes without a reset in between: gradients sum,
	// they do not overwrite.
	y := backend.Mul(x, x)
	backend.Backward(y)
	assert.InDelta(t, 4.0, x.Grad()[0], 1e-12)

	backend.Reset()
	y = backend.Mul(x, x)
	backend.Backward(y)
	assert.InDelta(t, 8.0, x.Grad()[0], 1e-12)
}

func TestReset_GradAndGraphCleared(t *testing.T) {
	backend := autodiff.New(cpu.New())

	x, err := tensor.FromSlice([]float64{1, -2, 3, -4}, tensor.Shape{2, 2})
	require.NoError(t, err)

	// Feed x through several operations, run backward, then reset.
	y := backend.Mean(backend.Mul(backend.Add(x, x), x))
	backend.Backward(y)
	require.NotZero(t, x.Grad()[0])
	require.NotZero(t, backend.Tape().NumOps())

	x.ZeroGrad()
	backend.Reset()

	assert.Equal(t, []float64{0, 0, 0, 0}, x.Grad())
	assert.Zero(t, backend.Tape().NumOps())

	// Resetting again is a no-op: still exactly zero, still empty.
	x.ZeroGrad()
	backend.Reset()
	assert.Equal(t, []float64{0, 0, 0, 0}, x.Grad())
	assert.Zero(t, backend.Tape().NumOps())
}

func TestBackward_PanicsOnNonScalar(t *testing.T) {
	backend := autodiff.New(cpu.New())

	x, _ := tensor.FromSlice([]float64{1, 2}, tensor.Shape{1, 2})
	y := backend.Add(x, x)

	assert.Panics(t, func() { backend.Backward(y) })
}

func TestBackward_PanicsOnEmptyTape(t *testing.T) {
	backend := autodiff.New(cpu.New())

	loss, _ := tensor.FromSlice([]float64{0.5}, tensor.Shape{1})
	assert.Panics(t, func() { backend.Backward(loss) })
}

func TestTape_StopRecording(t *testing.T) {
	backend := autodiff.New(cpu.New())
	require.True(t, backend.Tape().IsRecording())

	x, _ := tensor.FromSlice([]float64{1}, tensor.Shape{1})

	backend.Tape().StopRecording()
	backend.Mul(x, x)
	assert.Zero(t, backend.Tape().NumOps())

	backend.Tape().StartRecording()
	backend.Mul(x, x)
	assert.Equal(t, 1, backend.Tape().NumOps())
}

func TestBackward_MatMulWithBroadcastAdd(t *testing.T) {
	backend := autodiff.New(cpu.New())

	// z = x @ w + b with b broadcast over the batch: the bias gradient is
	// the column sum of the output gradient.
	x, err := tensor.FromSlice([]float64{1, 2, 3, 4}, tensor.Shape{2, 2})
	require.NoError(t, err)
	w, err := tensor.FromSlice([]float64{0.5, -0.5, 1, 2}, tensor.Shape{2, 2})
	require.NoError(t, err)
	b, err := tensor.FromSlice([]float64{0.1, 0.2}, tensor.Shape{1, 2})
	require.NoError(t, err)

	z := backend.Add(backend.MatMul(x, w), b)
	loss := backend.Mean(z)
	backend.Backward(loss)

	// d(mean)/dz = 1/4 each; grad_b sums the two batch rows.
	assert.InDeltaSlice(t, []float64{0.5, 0.5}, b.Grad(), 1e-12)

	// grad_w = xᵀ @ grad_z, grad_z = 1/4 everywhere.
	assert.InDeltaSlice(t, []float64{1, 1, 1.5, 1.5}, w.Grad(), 1e-12)
}
