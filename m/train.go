package m

import (
	"fmt"
	"math"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"

	"potable/data"
	"potable/utils"
)

// History holds one accuracy and one average loss per epoch.
type History struct {
	Accuracy []float64
	Loss     []float64
}

// EpochRecord summarizes a finished epoch. Accuracies are fractions.
type EpochRecord struct {
	Epoch       int
	Accuracy    float64
	Loss        float64
	ValAccuracy float64
}

// EpochObserver is notified after every epoch.
type EpochObserver interface {
	ObserveEpoch(EpochRecord)
}

// Train runs epochs of online gradient descent over a fresh permutation of
// train each epoch and evaluates on validation after every epoch.
func (net *Network) Train(train, validation data.Dataset, epochs int, learningRate float64, rng *rand.Rand, observers ...EpochObserver) (History, error) {
	if epochs < 1 {
		return History{}, fmt.Errorf("%w: epochs must be positive, got %d", utils.ErrArgument, epochs)
	}
	if !(learningRate > 0) {
		return History{}, fmt.Errorf("%w: learning rate must be positive, got %v", utils.ErrArgument, learningRate)
	}
	if len(train) == 0 {
		return History{}, fmt.Errorf("%w: empty training set", utils.ErrData)
	}
	if rng == nil {
		rng = data.NewRand(0)
	}

	history := History{
		Accuracy: make([]float64, 0, epochs),
		Loss:     make([]float64, 0, epochs),
	}
	shuffled := make(data.Dataset, len(train))

	for epoch := 1; epoch <= epochs; epoch++ {
		copy(shuffled, train)
		rng.Shuffle(len(shuffled), func(i, j int) {
			shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
		})

		var totalLoss float64
		var correct int
		for i, sample := range shuffled {
			step, err := net.Step(sample.Features, sample.Label, learningRate)
			if err != nil {
				return history, fmt.Errorf("epoch %d, sample %d: %w", epoch, i, err)
			}
			totalLoss += step.Loss
			if isCorrect(step.Probability, sample.Label) {
				correct++
			}
		}

		record := EpochRecord{
			Epoch:    epoch,
			Accuracy: float64(correct) / float64(len(shuffled)),
			Loss:     totalLoss / float64(len(shuffled)),
		}
		history.Accuracy = append(history.Accuracy, record.Accuracy)
		history.Loss = append(history.Loss, record.Loss)

		valAccuracy, err := net.Evaluate(validation)
		if err != nil {
			return history, fmt.Errorf("epoch %d validation: %w", epoch, err)
		}
		record.ValAccuracy = valAccuracy

		log.Info().
			Int("epoch", epoch).
			Float64("accuracy", record.Accuracy).
			Float64("loss", record.Loss).
			Float64("val_accuracy", valAccuracy*100).
			Msg("epoch complete")

		for _, o := range observers {
			o.ObserveEpoch(record)
		}
	}

	return history, nil
}

// Evaluate returns the fraction of ds classified correctly. It only reads
// the parameters. An empty dataset scores 0.
func (net *Network) Evaluate(ds data.Dataset) (float64, error) {
	if len(ds) == 0 {
		return 0, nil
	}
	var correct int
	for i, sample := range ds {
		pass, err := net.Forward(sample.Features)
		if err != nil {
			return 0, fmt.Errorf("sample %d: %w", i, err)
		}
		if isCorrect(pass.Probability, sample.Label) {
			correct++
		}
	}
	return float64(correct) / float64(len(ds)), nil
}

func classify(probability float64) int {
	if probability > 0.5 {
		return 1
	}
	return 0
}

func isCorrect(probability, target float64) bool {
	return math.Abs(float64(classify(probability))-target) < 0.1
}
