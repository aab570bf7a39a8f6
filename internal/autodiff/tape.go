package autodiff

import (
	"github.com/nerve-ml/nerve/internal/autodiff/ops"
	"github.com/nerve-ml/nerve/internal/tensor"
)

// Tape is the arena of operation nodes recorded during the forward pass.
// Nodes are appended in execution order and freed in bulk by Clear; the
// graph is rebuilt from scratch on every forward pass.
type Tape struct {
	operations []ops.Operation
	recording  bool
}

// NewTape creates a new tape with recording enabled.
func NewTape() *Tape {
	return &Tape{
		operations: make([]ops.Operation, 0, 64),
		recording:  true,
	}
}

// StartRecording enables operation recording.
func (t *Tape) StartRecording() {
	t.recording = true
}

// StopRecording disables operation recording. Useful for inference where
// building the graph would only cost memory.
func (t *Tape) StopRecording() {
	t.recording = false
}

// IsRecording returns true if the tape is currently recording operations.
func (t *Tape) IsRecording() bool {
	return t.recording
}

// Record appends an operation to the tape if recording is enabled.
func (t *Tape) Record(op ops.Operation) {
	if t.recording {
		t.operations = append(t.operations, op)
	}
}

// Clear discards all recorded operations in bulk. Recording state is
// preserved.
func (t *Tape) Clear() {
	t.operations = t.operations[:0]
}

// NumOps returns the number of recorded operations.
func (t *Tape) NumOps() int {
	return len(t.operations)
}

// Backward walks the tape in reverse from the output array, applying the
// chain rule, and deposits the accumulated gradient of every participating
// array into that array's gradient slot.
//
// Algorithm:
//  1. Seed the output with the given gradient (ones for a scalar loss).
//  2. Walk operations in reverse execution order.
//  3. For each operation whose output has a gradient, compute input
//     gradients and sum them into the running per-array totals — gradients
//     of multiple paths into the same array accumulate.
//  4. Add every total into the owning array's gradient slot.
//
// The backend passed here performs the gradient arithmetic; callers pass
// the undecorated inner backend so backward work is never itself recorded.
func (t *Tape) Backward(output, seed *tensor.Array, backend tensor.Backend) {
	grads := map[*tensor.Array]*tensor.Array{output: seed}

	for i := len(t.operations) - 1; i >= 0; i-- {
		op := t.operations[i]

		outputGrad, ok := grads[op.Output()]
		if !ok {
			// No gradient flows through this operation.
			continue
		}

		inputGrads := op.Backward(outputGrad, backend)
		for j, input := range op.Inputs() {
			if j >= len(inputGrads) || inputGrads[j] == nil {
				continue
			}
			if existing, ok := grads[input]; ok {
				grads[input] = backend.Add(existing, inputGrads[j])
			} else {
				grads[input] = inputGrads[j]
			}
		}
	}

	for arr, grad := range grads {
		arr.AccumulateGrad(grad)
	}
}
