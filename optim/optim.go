// Copyright 2026 Nerve ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package optim provides the public API for gradient-based optimizers.
package optim

import (
	"github.com/nerve-ml/nerve/internal/optim"
	"github.com/nerve-ml/nerve/internal/tensor"
)

// SGD (Stochastic Gradient Descent)

// SGD represents the SGD optimizer with optional momentum.
type SGD[B tensor.Backend] = optim.SGD[B]

// SGDConfig contains configuration for the SGD optimizer.
type SGDConfig = optim.SGDConfig

// NewSGD creates a new SGD optimizer.
//
// Example:
//
//	optimizer := optim.NewSGD[*autodiff.Autograd[*cpu.CPUBackend]](optim.SGDConfig{
//	    LR:       0.01,
//	    Momentum: 0.9,
//	})
func NewSGD[B tensor.Backend](config SGDConfig) *SGD[B] {
	return optim.NewSGD[B](config)
}

// AdaGrad (Adaptive Gradient)

// AdaGrad represents the AdaGrad optimizer with per-coordinate adaptive
// learning rates.
type AdaGrad[B tensor.Backend] = optim.AdaGrad[B]

// AdaGradConfig contains configuration for the AdaGrad optimizer.
type AdaGradConfig = optim.AdaGradConfig

// NewAdaGrad creates a new AdaGrad optimizer.
func NewAdaGrad[B tensor.Backend](config AdaGradConfig) *AdaGrad[B] {
	return optim.NewAdaGrad[B](config)
}

// Adam (Adaptive Moment Estimation)

// Adam represents the Adam optimizer.
type Adam[B tensor.Backend] = optim.Adam[B]

// AdamConfig contains configuration for the Adam optimizer.
type AdamConfig = optim.AdamConfig

// NewAdam creates a new Adam optimizer with bias correction.
func NewAdam[B tensor.Backend](config AdamConfig) *Adam[B] {
	return optim.NewAdam[B](config)
}
