// Copyright 2026 Nerve ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package autodiff provides the public API for reverse-mode automatic
// differentiation.
//
// Example:
//
//	backend := autodiff.New(cpu.New())
//	y := backend.Mul(x, x)
//	backend.Backward(y) // x.Grad() now holds dy/dx
//	backend.Reset()
package autodiff

import (
	"github.com/nerve-ml/nerve/internal/autodiff"
	"github.com/nerve-ml/nerve/internal/tensor"
)

// Autograd decorates a backend with operation-graph recording and
// reverse-mode gradient accumulation.
type Autograd[B tensor.Backend] = autodiff.Autograd[B]

// Tape is the arena of operations recorded during the forward pass.
type Tape = autodiff.Tape

// New creates an Autograd decorator wrapping the given backend, with
// recording enabled.
func New[B tensor.Backend](backend B) *Autograd[B] {
	return autodiff.New(backend)
}
