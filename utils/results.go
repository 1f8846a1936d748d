package utils

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"os"
	"strconv"
)

// Floats serializes non-finite entries as null, which plain encoding/json rejects.
type Floats []float64

func (f Floats) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('[')
	for i, v := range f {
		if i > 0 {
			buf.WriteByte(',')
		}
		buf.Write(appendFloat(nil, v))
	}
	buf.WriteByte(']')
	return buf.Bytes(), nil
}

// Float is a single value with the same null convention as Floats.
type Float float64

func (f Float) MarshalJSON() ([]byte, error) {
	return appendFloat(nil, float64(f)), nil
}

func appendFloat(b []byte, v float64) []byte {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return append(b, "null"...)
	}
	return strconv.AppendFloat(b, v, 'g', -1, 64)
}

// TrainingResults is written next to the model after a training run.
type TrainingResults struct {
	RunID                string `json:"run_id"`
	TrainAccuracyHistory Floats `json:"train_accuracy_history"`
	TrainLossHistory     Floats `json:"train_loss_history"`
	ValAccuracy          Float  `json:"val_accuracy"`
	TestAccuracy         Float  `json:"test_accuracy"`
}

// SaveResults writes results as JSON.
func SaveResults(filepath string, results *TrainingResults) error {
	data, err := json.Marshal(results)
	if err != nil {
		return fmt.Errorf("%w: failed to marshal results: %v", ErrIO, err)
	}
	if err := os.WriteFile(filepath, data, 0644); err != nil {
		return fmt.Errorf("%w: failed to write results: %v", ErrIO, err)
	}
	return nil
}
