package pipeline

import (
	"potable/data"
	"potable/m"
	"potable/utils"
)

// Prediction is printed by the predict commands.
type Prediction struct {
	Prediction  int         `json:"prediction"`
	Probability utils.Float `json:"probability"`
}

// Predict normalizes 14 raw feature values with the persisted scaler and
// classifies them with the persisted model.
func Predict(features []float64, modelPath, scalerPath string) (Prediction, error) {
	if err := utils.CheckLen("features", features, data.FeatureNum); err != nil {
		return Prediction{}, err
	}
	net, err := m.Load(modelPath)
	if err != nil {
		return Prediction{}, err
	}
	scaler, err := data.LoadScaler(scalerPath)
	if err != nil {
		return Prediction{}, err
	}

	normalized, err := scaler.Transform(features)
	if err != nil {
		return Prediction{}, err
	}
	probability, class, err := net.Predict(normalized)
	if err != nil {
		return Prediction{}, err
	}
	return Prediction{Prediction: class, Probability: utils.Float(probability)}, nil
}
