package utils

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func testWeights() *ModelWeights {
	w := &ModelWeights{
		InputSize:  14,
		HiddenSize: 3,
		OutputSize: 1,
		Weights1:   make([][]float64, 14),
		Weights2:   [][]float64{{0.25}, {-0.5}, {0.125}},
		Bias1:      []float64{0.1, -0.2, 0.3},
		Bias2:      []float64{-0.05},
		Gradient:   "canonical",
	}
	for i := range w.Weights1 {
		w.Weights1[i] = []float64{float64(i) * 0.01, -float64(i) * 0.02, 1.0 / float64(i+3)}
	}
	return w
}

func TestSaveLoadWeights(t *testing.T) {
	weightsFile := filepath.Join(t.TempDir(), "model.json")
	weights := testWeights()

	if err := SaveWeights(weightsFile, weights); err != nil {
		t.Fatalf("SaveWeights failed: %v", err)
	}
	loaded, err := LoadWeights(weightsFile)
	if err != nil {
		t.Fatalf("LoadWeights failed: %v", err)
	}

	if loaded.InputSize != 14 || loaded.HiddenSize != 3 || loaded.OutputSize != 1 {
		t.Errorf("sizes = %d/%d/%d, want 14/3/1", loaded.InputSize, loaded.HiddenSize, loaded.OutputSize)
	}
	if loaded.Gradient != "canonical" {
		t.Errorf("Gradient = %s, want canonical", loaded.Gradient)
	}
	if len(loaded.Weights1) != 14 {
		t.Fatalf("weights1 rows = %d, want 14", len(loaded.Weights1))
	}
	for i, row := range loaded.Weights1 {
		for j, v := range row {
			if v != weights.Weights1[i][j] {
				t.Errorf("weights1[%d][%d] = %v, want %v", i, j, v, weights.Weights1[i][j])
			}
		}
	}
	for i, row := range loaded.Weights2 {
		if row[0] != weights.Weights2[i][0] {
			t.Errorf("weights2[%d] = %v, want %v", i, row[0], weights.Weights2[i][0])
		}
	}
	if loaded.Bias2[0] != -0.05 {
		t.Errorf("bias2 = %v, want -0.05", loaded.Bias2[0])
	}
}

func TestSaveWeightsKeys(t *testing.T) {
	weightsFile := filepath.Join(t.TempDir(), "model.json")
	weights := testWeights()
	weights.Gradient = ""
	if err := SaveWeights(weightsFile, weights); err != nil {
		t.Fatalf("SaveWeights failed: %v", err)
	}
	b, err := os.ReadFile(weightsFile)
	if err != nil {
		t.Fatal(err)
	}
	for _, key := range []string{`"input_size"`, `"hidden_size"`, `"output_size"`, `"weights1"`, `"weights2"`, `"bias1"`, `"bias2"`} {
		if !bytes.Contains(b, []byte(key)) {
			t.Errorf("missing key %s in %s", key, b)
		}
	}
	if bytes.Contains(b, []byte(`"gradient"`)) {
		t.Errorf("empty gradient should be omitted: %s", b)
	}
}

func TestLoadWeightsNotFound(t *testing.T) {
	_, err := LoadWeights("/nonexistent/path/weights.json")
	if !errors.Is(err, ErrIO) {
		t.Errorf("expected ErrIO for nonexistent file, got %v", err)
	}
}

func TestLoadWeightsInvalidJSON(t *testing.T) {
	badFile := filepath.Join(t.TempDir(), "bad.json")
	if err := os.WriteFile(badFile, []byte("not valid json"), 0644); err != nil {
		t.Fatalf("Failed to write test file: %v", err)
	}

	_, err := LoadWeights(badFile)
	if !errors.Is(err, ErrIO) {
		t.Errorf("expected ErrIO for invalid JSON, got %v", err)
	}
}
