package optim

import (
	"math"

	"github.com/nerve-ml/nerve/internal/nn"
	"github.com/nerve-ml/nerve/internal/tensor"
)

// AdaGradConfig configures AdaGrad. A zero LR defaults to 0.01 and a zero
// Eps to 1e-8.
type AdaGradConfig struct {
	LR  float64
	Eps float64
}

// AdaGrad implements adaptive gradient descent. Each coordinate keeps the
// running sum of its squared gradients and scales its step by the inverse
// square root:
//
//	G = G + g²
//	p = p - lr * g / (sqrt(G) + eps)
//
// Frequently updated coordinates slow down while rarely updated ones keep a
// large effective learning rate.
type AdaGrad[B tensor.Backend] struct {
	cfg   AdaGradConfig
	sumSq map[int]*adagradState
}

type adagradState struct {
	weights []float64
	biases  []float64
}

// NewAdaGrad creates an AdaGrad optimizer.
func NewAdaGrad[B tensor.Backend](cfg AdaGradConfig) *AdaGrad[B] {
	if cfg.LR == 0 {
		cfg.LR = 0.01
	}
	if cfg.Eps == 0 {
		cfg.Eps = 1e-8
	}
	return &AdaGrad[B]{
		cfg:   cfg,
		sumSq: make(map[int]*adagradState),
	}
}

// Update returns the stepped weights and biases for the layer at idx.
func (a *AdaGrad[B]) Update(layer *nn.Dense[B], idx int) (*tensor.Array, *tensor.Array) {
	weights, biases := layer.Weights(), layer.Biases()

	st, ok := a.sumSq[idx]
	if !ok {
		st = &adagradState{
			weights: make([]float64, weights.NumElements()),
			biases:  make([]float64, biases.NumElements()),
		}
		a.sumSq[idx] = st
	}

	return a.apply(weights, st.weights), a.apply(biases, st.biases)
}

func (a *AdaGrad[B]) apply(param *tensor.Array, sumSq []float64) *tensor.Array {
	grad := param.Grad()
	return step(param, func(i int) float64 {
		sumSq[i] += grad[i] * grad[i]
		return -a.cfg.LR * grad[i] / (math.Sqrt(sumSq[i]) + a.cfg.Eps)
	})
}
