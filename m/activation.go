package m

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	"potable/utils"
)

// Activator is applied element-wise with mat.Dense.Apply. Deactivate takes
// already activated values and returns the derivative shape used in backprop.
type Activator interface {
	Activate(i, j int, sum float64) float64
	Deactivate(m mat.Matrix) mat.Matrix
	fmt.Stringer
}

var ActivatorLookup = map[string]Activator{
	"sigmoid": Sigmoid{},
	"tanh":    Tanh{},
}

type Sigmoid struct{}

func (s Sigmoid) Activate(i, j int, sum float64) float64 {
	return 1.0 / (1.0 + math.Exp(-sum))
}

// Deactivate returns a·(1-a).
func (s Sigmoid) Deactivate(matrix mat.Matrix) mat.Matrix {
	rows, cols := matrix.Dims()
	o := make([]float64, rows*cols)
	for i := range o {
		o[i] = 1
	}
	ones := mat.NewDense(rows, cols, o)
	return multiply(matrix, subtract(ones, matrix))
}

func (s Sigmoid) String() string {
	return "sigmoid"
}

type Tanh struct{}

func (t Tanh) Activate(i, j int, sum float64) float64 {
	return math.Tanh(sum)
}

// Deactivate returns 1-a².
func (t Tanh) Deactivate(matrix mat.Matrix) mat.Matrix {
	tanhPrime := func(i, j int, v float64) float64 {
		return 1.0 - v*v
	}

	return apply(tanhPrime, matrix)
}

func (t Tanh) String() string {
	return "tanh"
}

// Gradient selects how the hidden layer error is derived.
type Gradient string

const (
	// Reference reproduces the reference training curves: the hidden error
	// uses the sigmoid shape h·(1-h) and the output weights after their update.
	Reference Gradient = "reference"
	// Canonical is textbook backprop for a tanh hidden layer: 1-h² and the
	// output weights used by the forward pass.
	Canonical Gradient = "canonical"
)

// ParseGradient maps a config or flag value to a Gradient. Empty means Reference.
func ParseGradient(s string) (Gradient, error) {
	switch Gradient(s) {
	case "", Reference:
		return Reference, nil
	case Canonical:
		return Canonical, nil
	}
	return "", fmt.Errorf("%w: unknown gradient %q", utils.ErrArgument, s)
}

func (g Gradient) derivative() Activator {
	if g == Canonical {
		return ActivatorLookup["tanh"]
	}
	return ActivatorLookup["sigmoid"]
}
