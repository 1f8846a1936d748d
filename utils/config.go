package utils

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config holds training configuration
type Config struct {
	DataPath     string  `yaml:"data"`
	Epochs       int     `yaml:"epochs"`
	LearningRate float64 `yaml:"learning_rate"`
	HiddenSize   int     `yaml:"hidden_size"`
	// TrainRatio is the share of the dataset used for training.
	TrainRatio float64 `yaml:"train_ratio"`
	// ValidationRatio is the share of the remainder used for validation, the rest is test.
	ValidationRatio float64 `yaml:"validation_ratio"`
	Seed            uint64  `yaml:"seed"`
	Gradient        string  `yaml:"gradient"`
	OutDir          string  `yaml:"out_dir"`
	PlotDir         string  `yaml:"plot_dir"`
	MetricsFile     string  `yaml:"metrics_file"`
}

// DefaultConfig returns the configuration used by the reference training run.
func DefaultConfig() Config {
	return Config{
		HiddenSize:      16,
		TrainRatio:      0.7,
		ValidationRatio: 0.5,
		Gradient:        "reference",
		OutDir:          ".",
		PlotDir:         "output",
	}
}

// LoadConfig reads a YAML file on top of DefaultConfig.
func LoadConfig(path string) (Config, error) {
	config := DefaultConfig()
	b, err := os.ReadFile(path)
	if err != nil {
		return config, fmt.Errorf("%w: reading config %s: %v", ErrArgument, path, err)
	}
	if err := yaml.Unmarshal(b, &config); err != nil {
		return config, fmt.Errorf("%w: parsing config %s: %v", ErrArgument, path, err)
	}
	return config, nil
}

// ValidateConfig validates training configuration
func ValidateConfig(config *Config) error {
	if config.DataPath == "" {
		return fmt.Errorf("%w: dataset path is required", ErrArgument)
	}

	if config.Epochs <= 0 {
		return fmt.Errorf("%w: epochs must be positive", ErrArgument)
	}

	if !(config.LearningRate > 0) {
		return fmt.Errorf("%w: learning rate must be positive", ErrArgument)
	}

	if config.HiddenSize <= 0 {
		return fmt.Errorf("%w: hidden size must be positive", ErrArgument)
	}

	if config.TrainRatio <= 0 || config.TrainRatio >= 1 {
		return fmt.Errorf("%w: train ratio must be in (0,1)", ErrArgument)
	}

	if config.ValidationRatio < 0 || config.ValidationRatio > 1 {
		return fmt.Errorf("%w: validation ratio must be in [0,1]", ErrArgument)
	}

	if config.Gradient != "reference" && config.Gradient != "canonical" {
		return fmt.Errorf("%w: gradient must be 'reference' or 'canonical', got %q", ErrArgument, config.Gradient)
	}

	return nil
}

// ParseEpochs parses a positive epoch count.
func ParseEpochs(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil || n <= 0 {
		return 0, fmt.Errorf("%w: epochs %q is not a positive integer", ErrArgument, s)
	}
	return n, nil
}

// ParseFloats parses every value of args as a float64.
func ParseFloats(args []string) ([]float64, error) {
	values := make([]float64, len(args))
	for i, s := range args {
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: value %d (%q) is not a number", ErrArgument, i+1, s)
		}
		values[i] = v
	}
	return values, nil
}
