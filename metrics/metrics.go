// Package metrics exposes training progress as Prometheus gauges that can be
// written for the node exporter textfile collector.
package metrics

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"

	"potable/m"
	"potable/utils"
)

const namespace = "potable"

// Training records per-epoch progress of one training run.
type Training struct {
	registry *prometheus.Registry
	Epoch    prometheus.Gauge
	Loss     prometheus.Gauge
	Accuracy *prometheus.GaugeVec
	Epochs   prometheus.Counter
}

// NewTraining creates the gauges on a private registry labelled with runID.
func NewTraining(runID string) *Training {
	labels := prometheus.Labels{"run": runID}
	t := &Training{
		registry: prometheus.NewRegistry(),
		Epoch: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace:   namespace,
			Name:        "epoch",
			Help:        "Last completed training epoch.",
			ConstLabels: labels,
		}),
		Loss: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace:   namespace,
			Name:        "train_loss",
			Help:        "Average cross-entropy loss of the last epoch.",
			ConstLabels: labels,
		}),
		Accuracy: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace:   namespace,
			Name:        "accuracy_ratio",
			Help:        "Fraction of correctly classified samples per split.",
			ConstLabels: labels,
		}, []string{"split"}),
		Epochs: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace:   namespace,
			Name:        "epochs_total",
			Help:        "Completed training epochs.",
			ConstLabels: labels,
		}),
	}
	t.registry.MustRegister(t.Epoch, t.Loss, t.Accuracy, t.Epochs)
	return t
}

// ObserveEpoch implements m.EpochObserver.
func (t *Training) ObserveEpoch(r m.EpochRecord) {
	t.Epoch.Set(float64(r.Epoch))
	t.Loss.Set(r.Loss)
	t.Accuracy.WithLabelValues("train").Set(r.Accuracy)
	t.Accuracy.WithLabelValues("validation").Set(r.ValAccuracy)
	t.Epochs.Inc()
}

// ObserveTest records the final test accuracy as a fraction.
func (t *Training) ObserveTest(accuracy float64) {
	t.Accuracy.WithLabelValues("test").Set(accuracy)
}

// WriteTextfile writes all gauges in the Prometheus text format.
func (t *Training) WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, t.registry); err != nil {
		return fmt.Errorf("%w: writing metrics %s: %v", utils.ErrIO, path, err)
	}
	return nil
}
