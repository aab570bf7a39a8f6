package autodiff

import (
	"fmt"

	"github.com/nerve-ml/nerve/internal/tensor"
)

// Backward triggers reverse-mode gradient accumulation from a scalar-shaped
// output, populating the gradient slot of every array that participated in
// its computation. Contributions from multiple paths into the same array
// sum.
//
// The backward arithmetic runs on the inner backend, so none of it is
// recorded on the tape.
//
// Panics if the output is not scalar-shaped or if no operations have been
// recorded (the graph was never built, or Reset was called).
func (g *Autograd[B]) Backward(output *tensor.Array) {
	if output.NumElements() != 1 {
		panic(fmt.Sprintf("backward: output must be scalar-shaped, got %v", output.Shape()))
	}
	if g.tape.NumOps() == 0 {
		panic("backward: no operations recorded (was the graph reset before backward?)")
	}

	seed := tensor.Ones(output.Shape())
	g.tape.Backward(output, seed, g.inner)
}

// Reset discards the recorded operation graph in bulk, in preparation for
// the next forward pass. Array gradient slots are not touched; reset those
// with Array.ZeroGrad.
func (g *Autograd[B]) Reset() {
	g.tape.Clear()
}
