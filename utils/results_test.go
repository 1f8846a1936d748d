package utils

import (
	"encoding/json"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFloats_NonFiniteAsNull(t *testing.T) {
	b, err := json.Marshal(Floats{0.5, math.NaN(), math.Inf(1), 0.25})
	require.NoError(t, err)
	assert.Equal(t, `[0.5,null,null,0.25]`, string(b))

	b, err = json.Marshal(Floats(nil))
	require.NoError(t, err)
	assert.Equal(t, `[]`, string(b))

	b, err = json.Marshal(Float(math.Inf(-1)))
	require.NoError(t, err)
	assert.Equal(t, `null`, string(b))
}

func TestSaveResults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "results.json")
	results := &TrainingResults{
		RunID:                "run",
		TrainAccuracyHistory: Floats{0.5, 0.75},
		TrainLossHistory:     Floats{0.69, math.NaN()},
		ValAccuracy:          62.5,
		TestAccuracy:         60,
	}
	require.NoError(t, SaveResults(path, results))

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	var decoded map[string]any
	require.NoError(t, json.Unmarshal(b, &decoded))
	assert.Equal(t, "run", decoded["run_id"])
	assert.Equal(t, []any{0.5, 0.75}, decoded["train_accuracy_history"])
	assert.Equal(t, []any{0.69, nil}, decoded["train_loss_history"])
	assert.Equal(t, 62.5, decoded["val_accuracy"])
	assert.Equal(t, 60.0, decoded["test_accuracy"])

	err = SaveResults(filepath.Join(t.TempDir(), "missing", "results.json"), results)
	assert.ErrorIs(t, err, ErrIO)
}
