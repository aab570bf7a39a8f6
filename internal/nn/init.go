package nn

import (
	"math"
	"math/rand"

	"github.com/nerve-ml/nerve/internal/tensor"
)

// Initializer produces the starting weight matrix for a dense layer,
// shaped [inSize, outSize].
type Initializer interface {
	Initialize(inSize, outSize int) *tensor.Array
}

// XavierUniform implements Xavier/Glorot uniform initialization: samples
// from U(-bound, bound) with bound = sqrt(6 / (fanIn + fanOut)). Suited to
// tanh and sigmoid layers.
//
// The zero value uses the global random source. Set Rand for reproducible
// initialization.
type XavierUniform struct {
	Rand *rand.Rand
}

// Initialize returns a [inSize, outSize] weight matrix.
func (x XavierUniform) Initialize(inSize, outSize int) *tensor.Array {
	bound := math.Sqrt(6.0 / float64(inSize+outSize))
	return uniform(x.Rand, inSize, outSize, bound)
}

// HeUniform implements He/Kaiming uniform initialization: samples from
// U(-bound, bound) with bound = sqrt(6 / fanIn). Suited to ReLU layers.
//
// The zero value uses the global random source. Set Rand for reproducible
// initialization.
type HeUniform struct {
	Rand *rand.Rand
}

// Initialize returns a [inSize, outSize] weight matrix.
func (h HeUniform) Initialize(inSize, outSize int) *tensor.Array {
	bound := math.Sqrt(6.0 / float64(inSize))
	return uniform(h.Rand, inSize, outSize, bound)
}

// uniform fills a fresh [inSize, outSize] array from U(-bound, bound).
// Weight initialization needs statistical spread, not cryptographic
// randomness, so math/rand is fine here.
func uniform(r *rand.Rand, inSize, outSize int, bound float64) *tensor.Array {
	next := rand.Float64
	if r != nil {
		next = r.Float64
	}

	arr := tensor.Zeros(tensor.Shape{inSize, outSize})
	data := arr.Data()
	for i := range data {
		data[i] = (next()*2 - 1) * bound
	}
	return arr
}
