// Package pipeline wires loading, scaling, splitting, training and
// persistence into the train and predict commands.
package pipeline

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"potable/data"
	"potable/m"
	"potable/metrics"
	"potable/utils"
)

const (
	ScalerFile       = "scaler.json"
	ModelFile        = "model.json"
	ResultsFile      = "results.json"
	AccuracyPlotFile = "training_plot.txt"
	LossPlotFile     = "training_loss_plot.txt"
)

// Summary is the outcome of a training run. Accuracies are percentages.
type Summary struct {
	RunID          string      `json:"-"`
	History        m.History   `json:"-"`
	TrainSize      int         `json:"-"`
	ValidationSize int         `json:"-"`
	TestSize       int         `json:"-"`
	ValAccuracy    utils.Float `json:"val_accuracy"`
	TestAccuracy   utils.Float `json:"test_accuracy"`
}

// Train runs load → scale → split → train → evaluate → persist.
func Train(cfg utils.Config) (*Summary, error) {
	if err := utils.ValidateConfig(&cfg); err != nil {
		return nil, err
	}
	gradient, err := m.ParseGradient(cfg.Gradient)
	if err != nil {
		return nil, err
	}

	runID := uuid.New().String()
	logger := log.With().Str("run", runID).Logger()
	stats := &utils.TimingStats{}
	totalStart := time.Now()
	rng := data.NewRand(cfg.Seed)

	start := time.Now()
	ds, err := data.Load(cfg.DataPath)
	if err != nil {
		return nil, err
	}
	utils.Track(&stats.DataLoadingTime, start)
	logger.Info().Str("path", cfg.DataPath).Int("rows", len(ds)).Msg("loaded data points")

	start = time.Now()
	scaler, err := data.FitScaler(ds)
	if err != nil {
		return nil, err
	}
	normalized, err := scaler.TransformAll(ds)
	if err != nil {
		return nil, err
	}
	utils.Track(&stats.ScalingTime, start)

	if err := os.MkdirAll(cfg.OutDir, 0755); err != nil {
		return nil, fmt.Errorf("%w: creating %s: %v", utils.ErrIO, cfg.OutDir, err)
	}
	start = time.Now()
	if err := data.SaveScaler(filepath.Join(cfg.OutDir, ScalerFile), scaler); err != nil {
		return nil, err
	}
	utils.Track(&stats.PersistTime, start)

	start = time.Now()
	train, rest, err := data.Split(normalized, cfg.TrainRatio, rng)
	if err != nil {
		return nil, err
	}
	validation, test, err := data.Split(rest, cfg.ValidationRatio, rng)
	if err != nil {
		return nil, err
	}
	utils.Track(&stats.SplitTime, start)
	logger.Info().
		Int("train", len(train)).
		Int("validation", len(validation)).
		Int("test", len(test)).
		Msg("split data")

	start = time.Now()
	net, err := m.NewNetwork(m.Config{
		InputNum:  m.InputNum,
		HiddenNum: cfg.HiddenSize,
		OutputNum: m.OutputNum,
		Gradient:  gradient,
	}, rng)
	if err != nil {
		return nil, err
	}
	utils.Track(&stats.ModelInitTime, start)

	var recorder *metrics.Training
	var observers []m.EpochObserver
	if cfg.MetricsFile != "" {
		recorder = metrics.NewTraining(runID)
		observers = append(observers, recorder)
	}

	logger.Info().
		Int("epochs", cfg.Epochs).
		Float64("learning_rate", cfg.LearningRate).
		Int("hidden", cfg.HiddenSize).
		Str("gradient", string(gradient)).
		Msg("started training")
	start = time.Now()
	history, err := net.Train(train, validation, cfg.Epochs, cfg.LearningRate, rng, observers...)
	if err != nil {
		return nil, err
	}
	utils.Track(&stats.TrainingTime, start)
	logger.Info().
		Dur("elapsed", stats.TrainingTime).
		Float64("update_us", utils.DurationUS(stats.TrainingTime)/float64(cfg.Epochs*len(train))).
		Msg("finished training")

	start = time.Now()
	valAccuracy, err := net.Evaluate(validation)
	if err != nil {
		return nil, err
	}
	testAccuracy, err := net.Evaluate(test)
	if err != nil {
		return nil, err
	}
	utils.Track(&stats.EvaluationTime, start)

	summary := &Summary{
		RunID:          runID,
		History:        history,
		TrainSize:      len(train),
		ValidationSize: len(validation),
		TestSize:       len(test),
		ValAccuracy:    utils.Float(valAccuracy * 100),
		TestAccuracy:   utils.Float(testAccuracy * 100),
	}

	start = time.Now()
	if err := persist(cfg, net, summary, recorder, testAccuracy); err != nil {
		return nil, err
	}
	utils.Track(&stats.PersistTime, start)

	stats.TotalTime = time.Since(totalStart)
	utils.PrintTimingStats(stats, cfg.Epochs*len(train))

	return summary, nil
}

func persist(cfg utils.Config, net *m.Network, summary *Summary, recorder *metrics.Training, testAccuracy float64) error {
	modelPath := filepath.Join(cfg.OutDir, ModelFile)
	if err := m.Save(modelPath, net); err != nil {
		return err
	}
	log.Info().Str("path", modelPath).Msg("saved model")

	results := &utils.TrainingResults{
		RunID:                summary.RunID,
		TrainAccuracyHistory: summary.History.Accuracy,
		TrainLossHistory:     summary.History.Loss,
		ValAccuracy:          summary.ValAccuracy,
		TestAccuracy:         summary.TestAccuracy,
	}
	if err := utils.SaveResults(filepath.Join(cfg.OutDir, ResultsFile), results); err != nil {
		return err
	}

	plotDir := cfg.PlotDir
	if !filepath.IsAbs(plotDir) {
		plotDir = filepath.Join(cfg.OutDir, plotDir)
	}
	if err := os.MkdirAll(plotDir, 0755); err != nil {
		return fmt.Errorf("%w: creating %s: %v", utils.ErrIO, plotDir, err)
	}
	if err := utils.PlotAccuracy(summary.History.Accuracy, filepath.Join(plotDir, AccuracyPlotFile)); err != nil {
		return err
	}
	if err := utils.PlotLoss(summary.History.Loss, filepath.Join(plotDir, LossPlotFile)); err != nil {
		return err
	}

	if recorder != nil {
		recorder.ObserveTest(testAccuracy)
		if err := recorder.WriteTextfile(cfg.MetricsFile); err != nil {
			return err
		}
		log.Info().Str("path", cfg.MetricsFile).Msg("wrote metrics")
	}
	return nil
}
