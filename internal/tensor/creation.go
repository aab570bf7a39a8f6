package tensor

import "fmt"

// FromSlice creates an array from a Go slice. The slice is copied.
func FromSlice(data []float64, shape Shape) (*Array, error) {
	if shape.NumElements() != len(data) {
		return nil, fmt.Errorf("shape %v requires %d elements, but got %d", shape, shape.NumElements(), len(data))
	}
	a, err := New(shape)
	if err != nil {
		return nil, err
	}
	copy(a.data, data)
	return a, nil
}

// Zeros creates a zero-filled array. Panics on an invalid shape; use New
// when the shape comes from untrusted input.
func Zeros(shape Shape) *Array {
	a, err := New(shape)
	if err != nil {
		panic(fmt.Sprintf("zeros: %v", err))
	}
	return a
}

// Ones creates an array filled with ones.
func Ones(shape Shape) *Array {
	return Full(shape, 1)
}

// Full creates an array filled with the given value.
func Full(shape Shape, value float64) *Array {
	a, err := New(shape)
	if err != nil {
		panic(fmt.Sprintf("full: %v", err))
	}
	for i := range a.data {
		a.data[i] = value
	}
	return a
}
