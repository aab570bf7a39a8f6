package nn

import (
	"github.com/nerve-ml/nerve/internal/tensor"
)

// Optimizer computes the next parameters for a layer from its current
// values and accumulated gradients.
//
// Implementations return fresh arrays instead of mutating the layer's
// current ones. idx identifies the layer, so stateful optimizers can keep
// per-layer accumulators (momentum, squared-gradient sums) keyed by it.
type Optimizer[B tensor.Backend] interface {
	Update(layer *Dense[B], idx int) (weights, biases *tensor.Array)
}
