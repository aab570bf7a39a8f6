package tensor

// Backend defines the interface that compute backends must implement.
// Backends handle the actual computation for array operations.
//
// Implementations:
//   - cpu.CPUBackend: pure Go with gonum-backed matrix operations
//   - autodiff.Autograd: decorator adding operation-graph recording to any
//     backend
type Backend interface {
	// Element-wise binary operations with NumPy-style broadcasting.
	Add(a, b *Array) *Array
	Sub(a, b *Array) *Array
	Mul(a, b *Array) *Array
	Div(a, b *Array) *Array

	// Matrix operations (2D arrays).
	MatMul(a, b *Array) *Array
	Transpose(a *Array) *Array

	// Reductions.
	Mean(a *Array) *Array // scalar-shaped [1] result

	// Metadata.
	Name() string
}
