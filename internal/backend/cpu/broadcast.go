package cpu

import (
	"github.com/nerve-ml/nerve/internal/tensor"
)

// applyBroadcast evaluates f over the broadcast iteration space.
// Each input's coordinates are taken modulo its own dimensions, so size-1
// dimensions repeat, matching NumPy semantics.
func applyBroadcast(out []float64, outShape tensor.Shape, a, b *tensor.Array, f func(x, y float64) float64) {
	aStrides := broadcastStrides(a.Shape(), outShape)
	bStrides := broadcastStrides(b.Shape(), outShape)
	ad, bd := a.Data(), b.Data()

	coords := make([]int, len(outShape))
	for i := range out {
		ai, bi := 0, 0
		for d := range coords {
			ai += coords[d] * aStrides[d]
			bi += coords[d] * bStrides[d]
		}
		out[i] = f(ad[ai], bd[bi])

		// Advance row-major coordinates.
		for d := len(coords) - 1; d >= 0; d-- {
			coords[d]++
			if coords[d] < outShape[d] {
				break
			}
			coords[d] = 0
		}
	}
}

// broadcastStrides computes strides for indexing shape within the broadcast
// space outShape. Broadcast (size-1 or missing) dimensions get stride 0.
func broadcastStrides(shape, outShape tensor.Shape) []int {
	// Row-major strides of the input itself.
	strides := make([]int, len(shape))
	acc := 1
	for i := len(shape) - 1; i >= 0; i-- {
		strides[i] = acc
		acc *= shape[i]
	}

	// Right-align against the output shape.
	result := make([]int, len(outShape))
	offset := len(outShape) - len(shape)
	for d := range outShape {
		if d < offset || shape[d-offset] == 1 {
			result[d] = 0
			continue
		}
		result[d] = strides[d-offset]
	}
	return result
}
