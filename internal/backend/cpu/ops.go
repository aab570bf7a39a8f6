package cpu

import (
	"fmt"

	"github.com/nerve-ml/nerve/internal/parallel"
	"github.com/nerve-ml/nerve/internal/tensor"
)

// Add performs element-wise addition with NumPy-style broadcasting.
func (c *CPUBackend) Add(a, b *tensor.Array) *tensor.Array {
	return c.binary("add", a, b, func(x, y float64) float64 { return x + y })
}

// Sub performs element-wise subtraction with NumPy-style broadcasting.
func (c *CPUBackend) Sub(a, b *tensor.Array) *tensor.Array {
	return c.binary("sub", a, b, func(x, y float64) float64 { return x - y })
}

// Mul performs element-wise multiplication with NumPy-style broadcasting.
func (c *CPUBackend) Mul(a, b *tensor.Array) *tensor.Array {
	return c.binary("mul", a, b, func(x, y float64) float64 { return x * y })
}

// Div performs element-wise division with NumPy-style broadcasting.
func (c *CPUBackend) Div(a, b *tensor.Array) *tensor.Array {
	return c.binary("div", a, b, func(x, y float64) float64 { return x / y })
}

// binary dispatches an element-wise binary operation. Same-shape inputs take
// the chunked fast path; mismatched shapes go through the broadcast walk.
func (c *CPUBackend) binary(name string, a, b *tensor.Array, f func(x, y float64) float64) *tensor.Array {
	outShape, needsBroadcast, err := tensor.BroadcastShapes(a.Shape(), b.Shape())
	if err != nil {
		panic(fmt.Sprintf("%s: %v", name, err))
	}

	result := tensor.Zeros(outShape)
	out := result.Data()

	if !needsBroadcast {
		ad, bd := a.Data(), b.Data()
		parallel.ForChunks(len(out), func(start, end int) {
			for i := start; i < end; i++ {
				out[i] = f(ad[i], bd[i])
			}
		}, c.par)
		return result
	}

	applyBroadcast(out, outShape, a, b, f)
	return result
}
