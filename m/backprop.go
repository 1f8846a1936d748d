package m

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// Step is the outcome of one online update.
type Step struct {
	Probability float64
	Loss        float64
}

// Step runs the forward pass for one sample and updates the parameters in
// place. The loss is computed before the update.
func (net *Network) Step(inputs []float64, target, learningRate float64) (Step, error) {
	pass, err := net.Forward(inputs)
	if err != nil {
		return Step{}, err
	}
	loss := crossEntropy(pass.Probability, target)
	net.backpropagate(pass, target, learningRate)
	return Step{Probability: pass.Probability, Loss: loss}, nil
}

// crossEntropy is not clipped: a saturated probability yields +Inf or NaN.
func crossEntropy(p, target float64) float64 {
	return -(target*math.Log(p) + (1-target)*math.Log(1-p))
}

func (net *Network) backpropagate(pass Pass, target, learningRate float64) {
	// derivative of the cross-entropy through the sigmoid
	outputError := pass.Probability - target

	var weights2 mat.Matrix
	if net.config.Gradient == Canonical {
		weights2 = mat.DenseCopyOf(net.weights2)
	}

	net.weights2 = subtract(net.weights2, scale(learningRate*outputError, pass.hidden)).(*mat.Dense)
	net.bias2.Set(0, 0, net.bias2.At(0, 0)-learningRate*outputError)

	if weights2 == nil {
		// reference ordering: hidden error sees the updated output weights
		weights2 = net.weights2
	}
	hiddenError := scale(outputError, multiply(weights2, net.config.Gradient.derivative().Deactivate(pass.hidden)))

	net.weights1 = subtract(net.weights1, scale(learningRate, dot(pass.inputs, hiddenError.T()))).(*mat.Dense)
	net.bias1 = subtract(net.bias1, scale(learningRate, hiddenError)).(*mat.Dense)
}
