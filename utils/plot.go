package utils

import (
	"fmt"
	"math"
	"os"

	"github.com/guptarohit/asciigraph"
	"github.com/rs/zerolog/log"
)

const plotHeight = 15

// PlotAccuracy renders the per-epoch accuracy history as a text chart.
func PlotAccuracy(history []float64, path string) error {
	return plotSeries(history, "Accuracy vs Epochs", path)
}

// PlotLoss renders the per-epoch loss history as a text chart.
func PlotLoss(history []float64, path string) error {
	return plotSeries(history, "Loss vs Epochs", path)
}

func plotSeries(history []float64, caption, path string) error {
	// asciigraph cannot place NaN or Inf on the axis
	series := make([]float64, 0, len(history))
	for _, v := range history {
		if !math.IsNaN(v) && !math.IsInf(v, 0) {
			series = append(series, v)
		}
	}
	if len(series) == 0 {
		log.Warn().Str("plot", path).Msg("no finite values to plot")
		return nil
	}

	chart := asciigraph.Plot(series,
		asciigraph.Height(plotHeight),
		asciigraph.Caption(caption))
	if err := os.WriteFile(path, []byte(chart+"\n"), 0644); err != nil {
		return fmt.Errorf("%w: writing plot %s: %v", ErrIO, path, err)
	}
	log.Info().Str("plot", path).Msg("plot has been saved")
	return nil
}
