// Copyright 2026 Nerve ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package cpu provides the public API for the CPU compute backend.
//
// Example:
//
//	backend := cpu.New()
//	z := backend.MatMul(x, y)
package cpu

import (
	"github.com/nerve-ml/nerve/internal/backend/cpu"
	"github.com/nerve-ml/nerve/internal/parallel"
)

// CPUBackend computes on the host CPU, with gonum-backed matrix routines
// and chunked parallel element-wise kernels.
type CPUBackend = cpu.CPUBackend

// New creates a CPU backend with default parallelism settings.
func New() *CPUBackend {
	return cpu.New()
}

// NewWithParallelism creates a CPU backend with explicit parallelism
// settings.
func NewWithParallelism(cfg parallel.Config) *CPUBackend {
	return cpu.NewWithParallelism(cfg)
}
