// Package autodiff implements reverse-mode automatic differentiation using
// the decorator pattern.
//
// Autograd wraps any tensor.Backend and records every operation on a Tape
// during the forward pass. Backward walks the tape in reverse and deposits
// accumulated gradients into each participating array's gradient slot;
// Reset discards the recorded graph in bulk.
//
// Usage:
//
//	backend := autodiff.New(cpu.New())
//
//	x, _ := tensor.FromSlice([]float64{2}, tensor.Shape{1})
//	y := backend.Mul(x, x) // y = x²
//
//	backend.Backward(y)
//	fmt.Println(x.Grad()) // dy/dx = 2x = [4]
//	backend.Reset()
package autodiff

import (
	"math"

	"github.com/nerve-ml/nerve/internal/autodiff/ops"
	"github.com/nerve-ml/nerve/internal/tensor"
)

// Autograd wraps a Backend and adds operation-graph recording.
// It implements tensor.Backend; every operation runs on the wrapped
// backend and is recorded on the tape while recording is enabled.
//
// Recording is on by default: a freshly constructed Autograd is ready to
// differentiate its first forward pass.
type Autograd[B tensor.Backend] struct {
	inner B
	tape  *Tape
}

// New creates a new Autograd decorator wrapping the given backend.
func New[B tensor.Backend](backend B) *Autograd[B] {
	return &Autograd[B]{
		inner: backend,
		tape:  NewTape(),
	}
}

// Tape returns the gradient tape for manual control.
func (g *Autograd[B]) Tape() *Tape {
	return g.tape
}

// Inner returns the wrapped backend for direct access.
func (g *Autograd[B]) Inner() B {
	return g.inner
}

// Name returns the backend name.
func (g *Autograd[B]) Name() string {
	return "Autograd(" + g.inner.Name() + ")"
}

// Add performs element-wise addition and records the operation.
func (g *Autograd[B]) Add(a, b *tensor.Array) *tensor.Array {
	result := g.inner.Add(a, b)
	g.tape.Record(ops.NewAddOp(a, b, result))
	return result
}

// Sub performs element-wise subtraction and records the operation.
func (g *Autograd[B]) Sub(a, b *tensor.Array) *tensor.Array {
	result := g.inner.Sub(a, b)
	g.tape.Record(ops.NewSubOp(a, b, result))
	return result
}

// Mul performs element-wise multiplication and records the operation.
func (g *Autograd[B]) Mul(a, b *tensor.Array) *tensor.Array {
	result := g.inner.Mul(a, b)
	g.tape.Record(ops.NewMulOp(a, b, result))
	return result
}

// Div performs element-wise division and records the operation.
func (g *Autograd[B]) Div(a, b *tensor.Array) *tensor.Array {
	result := g.inner.Div(a, b)
	g.tape.Record(ops.NewDivOp(a, b, result))
	return result
}

// MatMul performs matrix multiplication and records the operation.
func (g *Autograd[B]) MatMul(a, b *tensor.Array) *tensor.Array {
	result := g.inner.MatMul(a, b)
	g.tape.Record(ops.NewMatMulOp(a, b, result))
	return result
}

// Transpose transposes an array and records the operation.
//
// The inner backend materializes a new array, so transpose must be
// recorded; without it, gradients computed for the transposed result would
// never reach the original array.
func (g *Autograd[B]) Transpose(a *tensor.Array) *tensor.Array {
	result := g.inner.Transpose(a)
	g.tape.Record(ops.NewTransposeOp(a, result))
	return result
}

// Mean reduces to the scalar mean and records the operation.
func (g *Autograd[B]) Mean(a *tensor.Array) *tensor.Array {
	result := g.inner.Mean(a)
	g.tape.Record(ops.NewMeanOp(a, result))
	return result
}

// ReLU applies max(0, x) and records the operation.
func (g *Autograd[B]) ReLU(x *tensor.Array) *tensor.Array {
	result := tensor.Zeros(x.Shape())
	out := result.Data()
	for i, v := range x.Data() {
		if v > 0 {
			out[i] = v
		}
	}

	g.tape.Record(ops.NewReLUOp(x, result))
	return result
}

// Tanh applies the hyperbolic tangent and records the operation.
func (g *Autograd[B]) Tanh(x *tensor.Array) *tensor.Array {
	result := tensor.Zeros(x.Shape())
	out := result.Data()
	for i, v := range x.Data() {
		out[i] = math.Tanh(v)
	}

	g.tape.Record(ops.NewTanhOp(x, result))
	return result
}

// Sigmoid applies σ(x) = 1 / (1 + exp(-x)) and records the operation.
func (g *Autograd[B]) Sigmoid(x *tensor.Array) *tensor.Array {
	result := tensor.Zeros(x.Shape())
	out := result.Data()
	for i, v := range x.Data() {
		out[i] = 1 / (1 + math.Exp(-v))
	}

	g.tape.Record(ops.NewSigmoidOp(x, result))
	return result
}
