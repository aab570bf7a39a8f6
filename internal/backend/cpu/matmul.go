package cpu

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/nerve-ml/nerve/internal/tensor"
)

// MatMul performs matrix multiplication: (M, K) @ (K, N) -> (M, N).
// Backed by gonum's BLAS-based mat.Dense.
func (c *CPUBackend) MatMul(a, b *tensor.Array) *tensor.Array {
	aShape, bShape := a.Shape(), b.Shape()

	if len(aShape) != 2 || len(bShape) != 2 {
		panic(fmt.Sprintf("matmul: only 2D arrays supported, got %dD and %dD", len(aShape), len(bShape)))
	}

	m, k := aShape[0], aShape[1]
	k2, n := bShape[0], bShape[1]
	if k != k2 {
		panic(fmt.Sprintf("matmul: incompatible shapes [%d,%d] @ [%d,%d]", m, k, k2, n))
	}

	result := tensor.Zeros(tensor.Shape{m, n})

	// mat.NewDense shares the backing slices; Mul writes straight into the
	// result's payload.
	am := mat.NewDense(m, k, a.Data())
	bm := mat.NewDense(k2, n, b.Data())
	cm := mat.NewDense(m, n, result.Data())
	cm.Mul(am, bm)

	return result
}

// Transpose transposes a 2D array.
func (c *CPUBackend) Transpose(a *tensor.Array) *tensor.Array {
	shape := a.Shape()
	if len(shape) != 2 {
		panic(fmt.Sprintf("transpose: only 2D arrays supported, got %dD", len(shape)))
	}

	rows, cols := shape[0], shape[1]
	result := tensor.Zeros(tensor.Shape{cols, rows})

	rm := mat.NewDense(cols, rows, result.Data())
	rm.Copy(mat.NewDense(rows, cols, a.Data()).T())

	return result
}

// Mean reduces an array to its scalar-shaped [1] mean.
func (c *CPUBackend) Mean(a *tensor.Array) *tensor.Array {
	result := tensor.Zeros(tensor.Shape{1})
	result.Data()[0] = floats.Sum(a.Data()) / float64(a.NumElements())
	return result
}
