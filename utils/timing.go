package utils

import (
	"fmt"
	"io"
	"os"
	"time"
)

// Verbose controls whether timing statistics are printed.
// Set to false to suppress output.
var Verbose = true

// Output is the writer where timing statistics are printed.
// Defaults to os.Stderr so stdout only carries result JSON.
var Output io.Writer = os.Stderr

// TimingStats holds timing information for the stages of a training run
type TimingStats struct {
	TotalTime       time.Duration
	DataLoadingTime time.Duration
	ScalingTime     time.Duration
	SplitTime       time.Duration
	ModelInitTime   time.Duration
	TrainingTime    time.Duration
	EvaluationTime  time.Duration
	PersistTime     time.Duration
}

// Track adds the time elapsed since start to d.
func Track(d *time.Duration, start time.Time) {
	*d += time.Since(start)
}

// PrintTimingStats prints detailed timing statistics.
// Respects the Verbose flag - does nothing if Verbose is false.
func PrintTimingStats(stats *TimingStats, steps int) {
	if !Verbose {
		return
	}
	fmt.Fprintln(Output, "\n=== TIMING STATISTICS ===")
	fmt.Fprintf(Output, "Total run time: %v\n", stats.TotalTime)
	if steps > 0 {
		fmt.Fprintf(Output, "Average training time per sample update: %v\n", stats.TrainingTime/time.Duration(steps))
	}
	fmt.Fprintf(Output, "Sample updates: %d\n", steps)
	fmt.Fprintln(Output, "\nBreakdown by stage:")
	fmt.Fprintf(Output, "  Data loading: %v (%.1f%%)\n", stats.DataLoadingTime, share(stats.DataLoadingTime, stats.TotalTime))
	fmt.Fprintf(Output, "  Scaling: %v (%.1f%%)\n", stats.ScalingTime, share(stats.ScalingTime, stats.TotalTime))
	fmt.Fprintf(Output, "  Splitting: %v (%.1f%%)\n", stats.SplitTime, share(stats.SplitTime, stats.TotalTime))
	fmt.Fprintf(Output, "  Model initialization: %v (%.1f%%)\n", stats.ModelInitTime, share(stats.ModelInitTime, stats.TotalTime))
	fmt.Fprintf(Output, "  Training: %v (%.1f%%)\n", stats.TrainingTime, share(stats.TrainingTime, stats.TotalTime))
	fmt.Fprintf(Output, "  Evaluation: %v (%.1f%%)\n", stats.EvaluationTime, share(stats.EvaluationTime, stats.TotalTime))
	fmt.Fprintf(Output, "  Persisting: %v (%.1f%%)\n", stats.PersistTime, share(stats.PersistTime, stats.TotalTime))
}

func share(part, total time.Duration) float64 {
	if total <= 0 {
		return 0
	}
	return float64(part) / float64(total) * 100
}

// DurationUS converts any time.Duration to micro-seconds as float64
func DurationUS(d time.Duration) float64 {
	return float64(d.Nanoseconds()) / 1_000.0
}
