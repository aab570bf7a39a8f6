// Package optim implements gradient-based optimizers for training neural
// networks: plain and momentum SGD, AdaGrad, and Adam.
//
// Optimizers are stateful. Per-layer accumulators are keyed by the layer
// index passed to Update, so one optimizer instance serves a whole network
// as long as each layer keeps its index across steps. All optimizers return
// fresh parameter arrays rather than mutating the current ones.
package optim

import (
	"github.com/nerve-ml/nerve/internal/tensor"
)

// step builds the updated parameter array from the current one, applying
// delta element-wise: out[i] = param[i] + delta(i).
func step(param *tensor.Array, delta func(i int) float64) *tensor.Array {
	out := tensor.Zeros(param.Shape())
	data := out.Data()
	for i, v := range param.Data() {
		data[i] = v + delta(i)
	}
	return out
}
