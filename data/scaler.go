package data

import (
	"encoding/json"
	"fmt"
	"os"

	"gonum.org/v1/gonum/floats"

	"potable/utils"
)

// Scaler maps raw features into [0,1] with the per-feature min and max seen
// at fit time.
type Scaler struct {
	Min []float64 `json:"min_vals"`
	Max []float64 `json:"max_vals"`
}

// FitScaler computes per-feature bounds over ds.
func FitScaler(ds Dataset) (*Scaler, error) {
	if len(ds) == 0 {
		return nil, fmt.Errorf("%w: cannot fit scaler on an empty dataset", utils.ErrData)
	}

	s := &Scaler{
		Min: make([]float64, FeatureNum),
		Max: make([]float64, FeatureNum),
	}
	for i, sample := range ds {
		if err := utils.CheckLen("sample features", sample.Features, FeatureNum); err != nil {
			return nil, fmt.Errorf("row %d: %w", i, err)
		}
	}

	column := make([]float64, len(ds))
	for j := 0; j < FeatureNum; j++ {
		for i, sample := range ds {
			column[i] = sample.Features[j]
		}
		s.Min[j] = floats.Min(column)
		s.Max[j] = floats.Max(column)
	}
	return s, nil
}

// Transform returns the normalized copy of features. Zero-range features map
// to exactly 0.5.
func (s *Scaler) Transform(features []float64) ([]float64, error) {
	if err := utils.CheckLen("features", features, len(s.Min)); err != nil {
		return nil, err
	}
	out := make([]float64, len(features))
	for i, x := range features {
		r := s.Max[i] - s.Min[i]
		if r > 0 {
			out[i] = (x - s.Min[i]) / r
		} else {
			out[i] = 0.5
		}
	}
	return out, nil
}

// TransformAll normalizes every sample of ds into a new dataset.
func (s *Scaler) TransformAll(ds Dataset) (Dataset, error) {
	out := make(Dataset, len(ds))
	for i, sample := range ds {
		features, err := s.Transform(sample.Features)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i, err)
		}
		out[i] = Sample{Features: features, Label: sample.Label}
	}
	return out, nil
}

// SaveScaler writes s as JSON.
func SaveScaler(path string, s *Scaler) error {
	b, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("%w: marshalling scaler: %v", utils.ErrIO, err)
	}
	if err := os.WriteFile(path, b, 0644); err != nil {
		return fmt.Errorf("%w: writing scaler: %v", utils.ErrIO, err)
	}
	return nil
}

// LoadScaler reads a scaler written by SaveScaler.
func LoadScaler(path string) (*Scaler, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: reading scaler: %v", utils.ErrIO, err)
	}
	var s Scaler
	if err := json.Unmarshal(b, &s); err != nil {
		return nil, fmt.Errorf("%w: unmarshalling scaler: %v", utils.ErrIO, err)
	}
	if len(s.Min) != FeatureNum || len(s.Max) != FeatureNum {
		return nil, fmt.Errorf("%w: %w", utils.ErrIO, utils.ShapeError{What: "scaler bounds", Expected: FeatureNum, Got: len(s.Min)})
	}
	return &s, nil
}
