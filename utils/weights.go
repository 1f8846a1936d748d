package utils

import (
	"encoding/json"
	"fmt"
	"os"
)

// ModelWeights is the persisted form of a trained network.
// weights1 is indexed [input][hidden], weights2 [hidden][output].
type ModelWeights struct {
	InputSize  int         `json:"input_size"`
	HiddenSize int         `json:"hidden_size"`
	OutputSize int         `json:"output_size"`
	Weights1   [][]float64 `json:"weights1"`
	Weights2   [][]float64 `json:"weights2"`
	Bias1      []float64   `json:"bias1"`
	Bias2      []float64   `json:"bias2"`
	Gradient   string      `json:"gradient,omitempty"`
}

// SaveWeights saves model weights to a JSON file
func SaveWeights(filepath string, weights *ModelWeights) error {
	data, err := json.Marshal(weights)
	if err != nil {
		return fmt.Errorf("%w: failed to marshal weights: %v", ErrIO, err)
	}
	if err := os.WriteFile(filepath, data, 0644); err != nil {
		return fmt.Errorf("%w: failed to write weights file: %v", ErrIO, err)
	}
	return nil
}

// LoadWeights loads model weights from a JSON file
func LoadWeights(filepath string) (*ModelWeights, error) {
	data, err := os.ReadFile(filepath)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read weights file: %v", ErrIO, err)
	}
	var weights ModelWeights
	if err := json.Unmarshal(data, &weights); err != nil {
		return nil, fmt.Errorf("%w: failed to unmarshal weights: %v", ErrIO, err)
	}
	return &weights, nil
}
