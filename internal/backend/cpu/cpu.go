// Package cpu implements the CPU compute backend with gonum-backed matrix
// operations and chunked parallel elementwise kernels.
package cpu

import (
	"github.com/nerve-ml/nerve/internal/parallel"
)

// CPUBackend implements tensor.Backend on the host CPU.
type CPUBackend struct {
	par parallel.Config
}

// New creates a new CPU backend.
func New() *CPUBackend {
	return NewWithParallelism(parallel.DefaultConfig())
}

// NewWithParallelism creates a CPU backend with explicit parallelism
// settings, for tuning worker count or disabling parallel kernels.
func NewWithParallelism(cfg parallel.Config) *CPUBackend {
	return &CPUBackend{par: cfg}
}

// Name returns the backend name.
func (c *CPUBackend) Name() string {
	return "CPU"
}
