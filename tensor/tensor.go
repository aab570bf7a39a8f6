// Copyright 2026 Nerve ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package tensor provides the public API for differentiable arrays in the
// nerve ML framework.
//
// The package defines the core types:
//   - Array: fixed-shape float64 container with a gradient slot
//   - Shape: array dimensions with NumPy-style broadcasting rules
//   - Backend: interface for device-specific compute implementations
//
// Example:
//
//	backend := cpu.New()
//	x, _ := tensor.FromSlice([]float64{1, 2, 3, 4}, tensor.Shape{2, 2})
//	y := tensor.Ones(tensor.Shape{2, 2})
//	z := backend.Add(x, y) // element-wise addition
package tensor

import (
	"github.com/nerve-ml/nerve/internal/tensor"
)

// Type aliases for public API

// Array is a numeric container of fixed shape with an accumulated-gradient
// slot.
type Array = tensor.Array

// Shape represents the dimensions of an array.
type Shape = tensor.Shape

// Backend is the interface for device-specific compute implementations.
type Backend = tensor.Backend

// Constructors

// New creates a zero-filled array with the given shape.
func New(shape Shape) (*Array, error) {
	return tensor.New(shape)
}

// FromSlice creates an array from a Go slice. The slice is copied.
func FromSlice(data []float64, shape Shape) (*Array, error) {
	return tensor.FromSlice(data, shape)
}

// Zeros creates a zero-filled array. Panics on an invalid shape.
func Zeros(shape Shape) *Array {
	return tensor.Zeros(shape)
}

// Ones creates an array filled with ones. Panics on an invalid shape.
func Ones(shape Shape) *Array {
	return tensor.Ones(shape)
}

// Full creates an array filled with the given value. Panics on an invalid
// shape.
func Full(shape Shape, value float64) *Array {
	return tensor.Full(shape, value)
}

// BroadcastShapes implements NumPy-style broadcasting rules, returning the
// broadcast shape, whether broadcasting is needed, and an error when the
// shapes are incompatible.
func BroadcastShapes(a, b Shape) (Shape, bool, error) {
	return tensor.BroadcastShapes(a, b)
}
