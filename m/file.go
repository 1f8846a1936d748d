package m

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"potable/utils"
)

// Weights exports a copy of the parameters.
func (net *Network) Weights() *utils.ModelWeights {
	return &utils.ModelWeights{
		InputSize:  net.config.InputNum,
		HiddenSize: net.config.HiddenNum,
		OutputSize: net.config.OutputNum,
		Weights1:   rows(net.weights1),
		Weights2:   rows(net.weights2),
		Bias1:      mat.Col(nil, 0, net.bias1),
		Bias2:      mat.Col(nil, 0, net.bias2),
		Gradient:   string(net.config.Gradient),
	}
}

// FromWeights rebuilds a network, checking every dimension against the
// fixed input and output sizes.
func FromWeights(w *utils.ModelWeights) (*Network, error) {
	gradient, err := ParseGradient(w.Gradient)
	if err != nil {
		return nil, err
	}
	c := Config{
		InputNum:  w.InputSize,
		HiddenNum: w.HiddenSize,
		OutputNum: w.OutputSize,
		Gradient:  gradient,
	}
	if err := validateConfig(c); err != nil {
		return nil, err
	}

	weights1, err := fromRows("weights1", w.Weights1, c.InputNum, c.HiddenNum)
	if err != nil {
		return nil, err
	}
	weights2, err := fromRows("weights2", w.Weights2, c.HiddenNum, c.OutputNum)
	if err != nil {
		return nil, err
	}
	if err := utils.CheckLen("bias1", w.Bias1, c.HiddenNum); err != nil {
		return nil, err
	}
	if err := utils.CheckLen("bias2", w.Bias2, c.OutputNum); err != nil {
		return nil, err
	}

	return &Network{
		config:   c,
		weights1: weights1,
		bias1:    mat.NewDense(c.HiddenNum, 1, append([]float64(nil), w.Bias1...)),
		weights2: weights2,
		bias2:    mat.NewDense(c.OutputNum, 1, append([]float64(nil), w.Bias2...)),
	}, nil
}

// Save writes the network as JSON.
func Save(path string, net *Network) error {
	return utils.SaveWeights(path, net.Weights())
}

// Load reads a network written by Save.
func Load(path string) (*Network, error) {
	w, err := utils.LoadWeights(path)
	if err != nil {
		return nil, err
	}
	net, err := FromWeights(w)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", utils.ErrIO, path, err)
	}
	return net, nil
}
