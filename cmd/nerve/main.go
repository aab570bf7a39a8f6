// Package main trains a small feedforward network on the XOR problem,
// exercising the full stack: autodiff backend, dense layers, MSE loss,
// and an adaptive optimizer.
package main

import (
	"flag"
	"fmt"
	"log"
	"math/rand"

	"github.com/nerve-ml/nerve/internal/autodiff"
	"github.com/nerve-ml/nerve/internal/backend/cpu"
	"github.com/nerve-ml/nerve/internal/nn"
	"github.com/nerve-ml/nerve/internal/optim"
	"github.com/nerve-ml/nerve/internal/tensor"
)

type backendT = *autodiff.Autograd[*cpu.CPUBackend]

func main() {
	epochs := flag.Int("epochs", 100, "Number of training epochs")
	lr := flag.Float64("lr", 0.1, "Learning rate for the AdaGrad optimizer")
	hidden := flag.Int("hidden", 32, "Hidden layer width")
	printEvery := flag.Int("print-every", 10, "Report loss every N epochs (0 = every epoch)")
	seed := flag.Int64("seed", 0, "Random seed for weight initialization (0 = nondeterministic)")
	flag.Parse()

	backend := autodiff.New(cpu.New())

	var rng *rand.Rand
	if *seed != 0 {
		rng = rand.New(rand.NewSource(*seed))
	}

	hiddenLayer, err := nn.NewDense(2, *hidden, nn.DenseConfig[backendT]{
		Activation:  nn.ReLU[backendT]{},
		Initializer: nn.HeUniform{Rand: rng},
	})
	if err != nil {
		log.Fatalf("Failed to build hidden layer: %v", err)
	}
	outputLayer, err := nn.NewDense(*hidden, 1, nn.DenseConfig[backendT]{
		Activation:  nn.Tanh[backendT]{},
		Initializer: nn.XavierUniform{Rand: rng},
	})
	if err != nil {
		log.Fatalf("Failed to build output layer: %v", err)
	}

	net, err := nn.NewNetwork(backend, []*nn.Dense[backendT]{hiddenLayer, outputLayer},
		nn.MSE[backendT]{}, optim.NewAdaGrad[backendT](optim.AdaGradConfig{LR: *lr}))
	if err != nil {
		log.Fatalf("Failed to build network: %v", err)
	}

	x, err := tensor.FromSlice([]float64{
		0, 0,
		0, 1,
		1, 0,
		1, 1,
	}, tensor.Shape{4, 2})
	if err != nil {
		log.Fatalf("Failed to build inputs: %v", err)
	}
	y, err := tensor.FromSlice([]float64{0, 1, 1, 0}, tensor.Shape{4, 1})
	if err != nil {
		log.Fatalf("Failed to build targets: %v", err)
	}

	fmt.Printf("Training XOR: 2 -> %d (relu) -> 1 (tanh), AdaGrad lr=%g, %d epochs\n\n",
		*hidden, *lr, *epochs)

	if err := net.Train(x, y, *epochs, *printEvery); err != nil {
		log.Fatalf("Training failed: %v", err)
	}

	fmt.Println("\nPredictions:")
	predictions := net.Forward(x)
	for i := 0; i < 4; i++ {
		fmt.Printf("  [%g %g] -> %.4f (want %g)\n",
			x.At(i, 0), x.At(i, 1), predictions.At(i, 0), y.At(i, 0))
	}
}
