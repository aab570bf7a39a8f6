package optim

import (
	"math"

	"github.com/nerve-ml/nerve/internal/nn"
	"github.com/nerve-ml/nerve/internal/tensor"
)

// AdamConfig configures Adam. Zero values default to LR 0.001, Beta1 0.9,
// Beta2 0.999, Eps 1e-8.
type AdamConfig struct {
	LR    float64
	Beta1 float64
	Beta2 float64
	Eps   float64
}

// Adam implements the Adam optimizer, combining momentum with per-
// coordinate adaptive learning rates:
//
//	m = beta1*m + (1-beta1)*g
//	v = beta2*v + (1-beta2)*g²
//	mhat = m / (1 - beta1^t)
//	vhat = v / (1 - beta2^t)
//	p = p - lr * mhat / (sqrt(vhat) + eps)
//
// The timestep t is tracked per layer so bias correction stays exact even
// when layers join training at different steps.
type Adam[B tensor.Backend] struct {
	cfg    AdamConfig
	states map[int]*adamState
}

type adamState struct {
	t        int
	mWeights []float64
	vWeights []float64
	mBiases  []float64
	vBiases  []float64
}

// NewAdam creates an Adam optimizer.
func NewAdam[B tensor.Backend](cfg AdamConfig) *Adam[B] {
	if cfg.LR == 0 {
		cfg.LR = 0.001
	}
	if cfg.Beta1 == 0 {
		cfg.Beta1 = 0.9
	}
	if cfg.Beta2 == 0 {
		cfg.Beta2 = 0.999
	}
	if cfg.Eps == 0 {
		cfg.Eps = 1e-8
	}
	return &Adam[B]{
		cfg:    cfg,
		states: make(map[int]*adamState),
	}
}

// Update returns the stepped weights and biases for the layer at idx.
func (a *Adam[B]) Update(layer *nn.Dense[B], idx int) (*tensor.Array, *tensor.Array) {
	weights, biases := layer.Weights(), layer.Biases()

	st, ok := a.states[idx]
	if !ok {
		st = &adamState{
			mWeights: make([]float64, weights.NumElements()),
			vWeights: make([]float64, weights.NumElements()),
			mBiases:  make([]float64, biases.NumElements()),
			vBiases:  make([]float64, biases.NumElements()),
		}
		a.states[idx] = st
	}
	st.t++

	w := a.apply(weights, st.mWeights, st.vWeights, st.t)
	b := a.apply(biases, st.mBiases, st.vBiases, st.t)
	return w, b
}

func (a *Adam[B]) apply(param *tensor.Array, m, v []float64, t int) *tensor.Array {
	grad := param.Grad()
	mCorr := 1 - math.Pow(a.cfg.Beta1, float64(t))
	vCorr := 1 - math.Pow(a.cfg.Beta2, float64(t))

	return step(param, func(i int) float64 {
		m[i] = a.cfg.Beta1*m[i] + (1-a.cfg.Beta1)*grad[i]
		v[i] = a.cfg.Beta2*v[i] + (1-a.cfg.Beta2)*grad[i]*grad[i]

		mhat := m[i] / mCorr
		vhat := v[i] / vCorr
		return -a.cfg.LR * mhat / (math.Sqrt(vhat) + a.cfg.Eps)
	})
}
