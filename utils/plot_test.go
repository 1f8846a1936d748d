package utils

import (
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlotAccuracy(t *testing.T) {
	path := filepath.Join(t.TempDir(), "training_plot.txt")
	require.NoError(t, PlotAccuracy([]float64{0.5, 0.55, 0.6, 0.62, 0.64}, path))

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(b), "Accuracy vs Epochs")
	assert.Greater(t, strings.Count(string(b), "\n"), plotHeight)
}

func TestPlotLoss_SkipsNonFinite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "training_loss_plot.txt")
	require.NoError(t, PlotLoss([]float64{0.7, math.Inf(1), 0.6, math.NaN(), 0.5}, path))
	b, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(b), "Loss vs Epochs")

	// nothing finite: nothing written, no error
	empty := filepath.Join(dir, "empty.txt")
	require.NoError(t, PlotLoss([]float64{math.NaN()}, empty))
	_, err = os.Stat(empty)
	assert.True(t, os.IsNotExist(err))
}

func TestPlot_WriteError(t *testing.T) {
	err := PlotAccuracy([]float64{0.5, 1}, filepath.Join(t.TempDir(), "no", "such", "dir.txt"))
	assert.ErrorIs(t, err, ErrIO)
}
