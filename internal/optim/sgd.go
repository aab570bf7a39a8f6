package optim

import (
	"github.com/nerve-ml/nerve/internal/nn"
	"github.com/nerve-ml/nerve/internal/tensor"
)

// SGDConfig configures stochastic gradient descent. A zero LR defaults to
// 0.01; a zero Momentum gives plain SGD.
type SGDConfig struct {
	LR       float64
	Momentum float64
}

// SGD implements stochastic gradient descent with optional momentum:
//
//	v = momentum*v - lr*g
//	p = p + v
//
// With Momentum at zero this collapses to p = p - lr*g.
type SGD[B tensor.Backend] struct {
	cfg        SGDConfig
	velocities map[int]*sgdState
}

type sgdState struct {
	weights []float64
	biases  []float64
}

// NewSGD creates an SGD optimizer.
func NewSGD[B tensor.Backend](cfg SGDConfig) *SGD[B] {
	if cfg.LR == 0 {
		cfg.LR = 0.01
	}
	return &SGD[B]{
		cfg:        cfg,
		velocities: make(map[int]*sgdState),
	}
}

// Update returns the stepped weights and biases for the layer at idx.
func (s *SGD[B]) Update(layer *nn.Dense[B], idx int) (*tensor.Array, *tensor.Array) {
	weights, biases := layer.Weights(), layer.Biases()

	st, ok := s.velocities[idx]
	if !ok {
		st = &sgdState{
			weights: make([]float64, weights.NumElements()),
			biases:  make([]float64, biases.NumElements()),
		}
		s.velocities[idx] = st
	}

	return s.apply(weights, st.weights), s.apply(biases, st.biases)
}

func (s *SGD[B]) apply(param *tensor.Array, velocity []float64) *tensor.Array {
	grad := param.Grad()
	return step(param, func(i int) float64 {
		velocity[i] = s.cfg.Momentum*velocity[i] - s.cfg.LR*grad[i]
		return velocity[i]
	})
}
