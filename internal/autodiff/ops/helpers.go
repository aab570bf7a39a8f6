package ops

import (
	"github.com/nerve-ml/nerve/internal/tensor"
)

// reduceBroadcast reduces a gradient array to match the target shape,
// summing over the dimensions that were broadcast in the forward pass.
//
// Example:
//
//	Forward: z[4,3] = x[4,3] + b[1,3]  (b broadcast along dim 0)
//	Backward: grad_z[4,3] -> grad_b[1,3] (sum along dim 0)
//
// Gradient arrays are never mutated in place, so when the shapes already
// match the gradient is returned as-is.
func reduceBroadcast(grad *tensor.Array, targetShape tensor.Shape, _ tensor.Backend) *tensor.Array {
	gradShape := grad.Shape()
	if gradShape.Equal(targetShape) {
		return grad
	}

	result := tensor.Zeros(targetShape)
	out := result.Data()
	data := grad.Data()

	// Walk the gradient's iteration space; fold each element into the
	// target coordinate obtained by collapsing broadcast dimensions.
	offset := len(gradShape) - len(targetShape)
	coords := make([]int, len(gradShape))
	for i := range data {
		ti := 0
		for d := offset; d < len(gradShape); d++ {
			td := targetShape[d-offset]
			c := coords[d]
			if td == 1 {
				c = 0
			}
			ti = ti*td + c
		}
		out[ti] += data[i]

		for d := len(coords) - 1; d >= 0; d-- {
			coords[d]++
			if coords[d] < gradShape[d] {
				break
			}
			coords[d] = 0
		}
	}

	return result
}

// negate returns a fresh array with every element of grad negated.
func negate(grad *tensor.Array) *tensor.Array {
	result := tensor.Zeros(grad.Shape())
	out := result.Data()
	for i, v := range grad.Data() {
		out[i] = -v
	}
	return result
}
