// Package m implements a one hidden layer feed-forward network for binary
// classification, trained online with per-sample gradient descent.
package m

import (
	"fmt"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/distuv"

	"potable/data"
	"potable/utils"
)

const (
	// InputNum is fixed by the dataset.
	InputNum = data.FeatureNum
	// OutputNum is fixed by binary classification.
	OutputNum = 1
)

type Config struct {
	InputNum  int
	HiddenNum int
	OutputNum int
	Gradient  Gradient
}

// Network owns the parameters. weights1 is InputNum×HiddenNum, bias1
// HiddenNum×1, weights2 HiddenNum×OutputNum and bias2 OutputNum×1.
type Network struct {
	config   Config
	weights1 *mat.Dense
	bias1    *mat.Dense
	weights2 *mat.Dense
	bias2    *mat.Dense
}

func shapeError(what string, expected, got int) error {
	return utils.ShapeError{What: what, Expected: expected, Got: got}
}

func validateConfig(c Config) error {
	if c.InputNum != InputNum {
		return fmt.Errorf("input size must be %d for the water quality dataset: %w", InputNum, shapeError("input size", InputNum, c.InputNum))
	}
	if c.OutputNum != OutputNum {
		return fmt.Errorf("output size must be %d for binary classification: %w", OutputNum, shapeError("output size", OutputNum, c.OutputNum))
	}
	if c.HiddenNum < 1 {
		return fmt.Errorf("hidden size must be positive: %w", shapeError("hidden size", 1, c.HiddenNum))
	}
	if _, err := ParseGradient(string(c.Gradient)); err != nil {
		return err
	}
	return nil
}

// NewNetwork draws every weight and bias uniformly from [-1,1) using rng.
func NewNetwork(c Config, rng *rand.Rand) (*Network, error) {
	if err := validateConfig(c); err != nil {
		return nil, err
	}
	c.Gradient, _ = ParseGradient(string(c.Gradient))
	if rng == nil {
		rng = data.NewRand(0)
	}

	dist := distuv.Uniform{Min: -1, Max: 1, Src: rng}
	weights1 := mat.NewDense(c.InputNum, c.HiddenNum, randomArray(c.InputNum*c.HiddenNum, dist))
	weights2 := mat.NewDense(c.HiddenNum, c.OutputNum, randomArray(c.HiddenNum*c.OutputNum, dist))
	bias1 := mat.NewDense(c.HiddenNum, 1, randomArray(c.HiddenNum, dist))
	bias2 := mat.NewDense(c.OutputNum, 1, randomArray(c.OutputNum, dist))

	return &Network{
		config:   c,
		weights1: weights1,
		bias1:    bias1,
		weights2: weights2,
		bias2:    bias2,
	}, nil
}

func (net *Network) Config() Config {
	return net.config
}

// Pass is the result of a forward pass over one sample.
type Pass struct {
	inputs      mat.Matrix
	hidden      mat.Matrix
	Probability float64
}

// Hidden returns the tanh activations of the hidden layer.
func (p Pass) Hidden() []float64 {
	return mat.Col(nil, 0, p.hidden)
}

// Forward computes hidden activations and the output probability.
func (net *Network) Forward(inputs []float64) (Pass, error) {
	if err := utils.CheckLen("inputs", inputs, net.config.InputNum); err != nil {
		return Pass{}, err
	}
	x := mat.NewDense(len(inputs), 1, inputs)
	hidden := net.hidden(x)
	return Pass{
		inputs:      x,
		hidden:      hidden,
		Probability: net.output(hidden),
	}, nil
}

// Hidden returns tanh(weights1ᵀ·inputs + bias1).
func (net *Network) Hidden(inputs []float64) ([]float64, error) {
	if err := utils.CheckLen("inputs", inputs, net.config.InputNum); err != nil {
		return nil, err
	}
	return mat.Col(nil, 0, net.hidden(mat.NewDense(len(inputs), 1, inputs))), nil
}

// Output returns sigmoid(weights2ᵀ·hidden + bias2).
func (net *Network) Output(hidden []float64) (float64, error) {
	if err := utils.CheckLen("hidden activations", hidden, net.config.HiddenNum); err != nil {
		return 0, err
	}
	return net.output(mat.NewDense(len(hidden), 1, hidden)), nil
}

func (net *Network) hidden(x mat.Matrix) mat.Matrix {
	return apply(ActivatorLookup["tanh"].Activate, add(dot(net.weights1.T(), x), net.bias1))
}

func (net *Network) output(hidden mat.Matrix) float64 {
	return apply(ActivatorLookup["sigmoid"].Activate, add(dot(net.weights2.T(), hidden), net.bias2)).At(0, 0)
}
