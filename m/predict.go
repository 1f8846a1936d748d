package m

// Predict classifies already scaled inputs, returning P(label=1) and the
// class at threshold 0.5.
func (net *Network) Predict(inputs []float64) (float64, int, error) {
	pass, err := net.Forward(inputs)
	if err != nil {
		return 0, 0, err
	}
	return pass.Probability, classify(pass.Probability), nil
}
