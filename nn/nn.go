// Copyright 2026 Nerve ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package nn provides the public API for neural network building blocks:
// dense layers, activations, initializers, losses, and the Network
// training loop.
package nn

import (
	"github.com/nerve-ml/nerve/internal/nn"
	"github.com/nerve-ml/nerve/internal/tensor"
)

// Layers

// Dense represents a fully connected layer computing
// activation(x @ W + b).
type Dense[B tensor.Backend] = nn.Dense[B]

// DenseConfig configures optional layer behavior; the zero value selects
// the identity activation and Xavier uniform initialization.
type DenseConfig[B tensor.Backend] = nn.DenseConfig[B]

// NewDense creates a fully connected layer.
//
// Example:
//
//	layer, err := nn.NewDense(784, 128, nn.DenseConfig[*autodiff.Autograd[*cpu.CPUBackend]]{
//	    Activation: nn.ReLU[*autodiff.Autograd[*cpu.CPUBackend]]{},
//	})
func NewDense[B tensor.Backend](inSize, outSize int, cfg DenseConfig[B]) (*Dense[B], error) {
	return nn.NewDense(inSize, outSize, cfg)
}

// Network

// Network is a feedforward stack of dense layers trained against a loss
// with an optimizer.
type Network[B tensor.Backend] = nn.Network[B]

// NewNetwork creates a network from an ordered layer stack. A nil loss
// defaults to mean squared error.
func NewNetwork[B tensor.Backend](backend B, layers []*Dense[B], loss Loss[B], optimizer Optimizer[B]) (*Network[B], error) {
	return nn.NewNetwork(backend, layers, loss, optimizer)
}

// Activations

// Activation is an element-wise non-linearity applied after a layer's
// affine transform.
type Activation[B tensor.Backend] = nn.Activation[B]

// Linear is the identity activation.
type Linear[B tensor.Backend] = nn.Linear[B]

// ReLU is the rectified linear unit: max(0, x).
type ReLU[B tensor.Backend] = nn.ReLU[B]

// Tanh is the hyperbolic tangent activation.
type Tanh[B tensor.Backend] = nn.Tanh[B]

// Sigmoid is the logistic sigmoid activation.
type Sigmoid[B tensor.Backend] = nn.Sigmoid[B]

// Initializers

// Initializer produces the starting weight matrix for a dense layer.
type Initializer = nn.Initializer

// XavierUniform implements Xavier/Glorot uniform initialization.
type XavierUniform = nn.XavierUniform

// HeUniform implements He/Kaiming uniform initialization.
type HeUniform = nn.HeUniform

// Losses

// Loss reduces predictions and targets to a scalar-shaped array.
type Loss[B tensor.Backend] = nn.Loss[B]

// MSE is the mean squared error loss.
type MSE[B tensor.Backend] = nn.MSE[B]

// Optimizer computes the next parameters for a layer from its current
// values and accumulated gradients. Implementations live in the optim
// package.
type Optimizer[B tensor.Backend] = nn.Optimizer[B]
