// Package nn provides neural network building blocks: dense layers,
// activations, weight initializers, loss functions, and the Network
// training loop that ties them to an optimizer.
package nn

import (
	"fmt"
	"io"
	"os"

	"github.com/nerve-ml/nerve/internal/tensor"
)

// GraphBackend is the capability a backend must have for training: besides
// the forward operations it can differentiate a recorded graph and discard
// it. The autodiff decorator implements this.
type GraphBackend interface {
	tensor.Backend
	Backward(output *tensor.Array)
	Reset()
}

// Network is a feedforward stack of dense layers trained against a loss
// with an optimizer.
//
// Example:
//
//	backend := autodiff.New(cpu.New())
//	hidden, _ := nn.NewDense(2, 32, nn.DenseConfig[...]{Activation: nn.ReLU[...]{}})
//	output, _ := nn.NewDense(32, 1, nn.DenseConfig[...]{Activation: nn.Tanh[...]{}})
//
//	net, _ := nn.NewNetwork(backend, []*nn.Dense[...]{hidden, output},
//		nn.MSE[...]{}, optim.NewAdaGrad[...](optim.AdaGradConfig{LR: 0.1}))
//	net.Train(x, y, 100, 10)
type Network[B tensor.Backend] struct {
	layers    []*Dense[B]
	loss      Loss[B]
	optimizer Optimizer[B]
	backend   B
	out       io.Writer
}

// NewNetwork creates a network from an ordered layer stack.
//
// A nil loss defaults to mean squared error. The optimizer is required for
// Train but may be nil for inference-only use. Adjacent layers must agree
// on their shared dimension.
func NewNetwork[B tensor.Backend](backend B, layers []*Dense[B], loss Loss[B], optimizer Optimizer[B]) (*Network[B], error) {
	if len(layers) == 0 {
		return nil, fmt.Errorf("network: at least one layer is required")
	}
	for i := 1; i < len(layers); i++ {
		if layers[i-1].OutSize() != layers[i].InSize() {
			return nil, fmt.Errorf("network: layer %d outputs %d features but layer %d expects %d",
				i-1, layers[i-1].OutSize(), i, layers[i].InSize())
		}
	}

	if loss == nil {
		loss = MSE[B]{}
	}

	return &Network[B]{
		layers:    layers,
		loss:      loss,
		optimizer: optimizer,
		backend:   backend,
		out:       os.Stdout,
	}, nil
}

// SetOutput redirects training progress reports, which go to stdout by
// default.
func (n *Network[B]) SetOutput(w io.Writer) {
	n.out = w
}

// Layers returns the network's layer stack in forward order.
func (n *Network[B]) Layers() []*Dense[B] { return n.layers }

// Backend returns the backend the network computes on.
func (n *Network[B]) Backend() B { return n.backend }

// Forward runs the input through every layer in order.
func (n *Network[B]) Forward(input *tensor.Array) *tensor.Array {
	output := input
	for _, layer := range n.layers {
		output = layer.Forward(n.backend, output)
	}
	return output
}

// Train runs the full training loop for exactly epochs iterations.
//
// Each epoch: forward pass, loss, backward pass, one optimizer step per
// layer, then gradient and graph reset. Progress is reported every
// printEvery epochs; printEvery <= 0 reports every epoch. There is no
// early stopping.
//
// Returns an error if the network has no optimizer or the backend cannot
// differentiate (wrap it with autodiff.New).
func (n *Network[B]) Train(x, y *tensor.Array, epochs, printEvery int) error {
	if n.optimizer == nil {
		return fmt.Errorf("network: cannot train without an optimizer")
	}
	gb, ok := any(n.backend).(GraphBackend)
	if !ok {
		return fmt.Errorf("network: backend %s cannot differentiate, wrap it with autodiff.New", n.backend.Name())
	}

	for epoch := 0; epoch < epochs; epoch++ {
		predictions := n.Forward(x)
		loss := n.loss.Forward(n.backend, predictions, y)

		gb.Backward(loss)

		for i, layer := range n.layers {
			layer.Update(n.optimizer, i)
		}

		// Fresh slate for the next epoch: inputs and parameters keep no
		// stale gradients and the graph is rebuilt from scratch.
		x.ZeroGrad()
		y.ZeroGrad()
		for _, layer := range n.layers {
			layer.Weights().ZeroGrad()
			layer.Biases().ZeroGrad()
		}
		gb.Reset()

		if printEvery <= 0 || (epoch+1)%printEvery == 0 {
			fmt.Fprintf(n.out, "Epoch %d/%d, Loss: %g\n", epoch+1, epochs, loss.Data()[0])
		}
	}

	return nil
}
