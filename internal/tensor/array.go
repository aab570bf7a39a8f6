// Package tensor implements the differentiable array type at the core of
// the nerve framework.
//
// An Array is a fixed-shape float64 container with an accumulated-gradient
// slot of the same shape. Operations on arrays are performed by a Backend;
// wrapping a backend with the autodiff decorator records the operation
// graph needed to populate gradient slots via reverse-mode accumulation.
//
// Invariants:
//   - After construction or after ZeroGrad, the gradient slot is exactly
//     zero.
//   - Gradients accumulate: contributions from multiple paths into the
//     same array sum.
package tensor

import "fmt"

// Array is a numeric container of fixed shape with an accumulated-gradient
// slot. The payload and the gradient are stored row-major.
type Array struct {
	data  []float64
	grad  []float64
	shape Shape
}

// New creates a zero-filled Array with the given shape.
func New(shape Shape) (*Array, error) {
	if err := shape.Validate(); err != nil {
		return nil, fmt.Errorf("invalid shape: %w", err)
	}
	n := shape.NumElements()
	return &Array{
		data:  make([]float64, n),
		grad:  make([]float64, n),
		shape: shape.Clone(),
	}, nil
}

// Shape returns the array's shape.
func (a *Array) Shape() Shape {
	return a.shape
}

// NumElements returns the total number of elements.
func (a *Array) NumElements() int {
	return a.shape.NumElements()
}

// Data returns the payload slice.
//
// The slice directly accesses the underlying memory; modifications are
// visible to every holder of the array.
func (a *Array) Data() []float64 {
	return a.data
}

// Grad returns the accumulated-gradient slice. It has the same length as
// Data and is exactly zero after construction or ZeroGrad.
func (a *Array) Grad() []float64 {
	return a.grad
}

// At returns the element at row i, column j of a 2D array.
// Panics if the array is not 2D.
func (a *Array) At(i, j int) float64 {
	if len(a.shape) != 2 {
		panic(fmt.Sprintf("At: array is %dD, not 2D", len(a.shape)))
	}
	return a.data[i*a.shape[1]+j]
}

// AccumulateGrad adds g's payload into this array's gradient slot.
// Used by the backward pass; gradients of multiple paths sum.
// Panics if shapes do not match.
func (a *Array) AccumulateGrad(g *Array) {
	if !a.shape.Equal(g.shape) {
		panic(fmt.Sprintf("accumulate grad: shape mismatch %v vs %v", a.shape, g.shape))
	}
	for i, v := range g.data {
		a.grad[i] += v
	}
}

// ZeroGrad resets the gradient slot to exactly zero.
//
// The training loop calls this between epochs; without it the next
// backward pass would accumulate on top of stale gradients.
func (a *Array) ZeroGrad() {
	for i := range a.grad {
		a.grad[i] = 0
	}
}
