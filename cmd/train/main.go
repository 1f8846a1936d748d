// potable-train: trains the water quality classifier
//
// Usage:
//
//	potable-train -data=water.csv -epochs=100 -lr=0.01 -hidden=16 -seed=42
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"potable/pipeline"
	"potable/utils"
)

var (
	configFile   = flag.String("config", "", "YAML config file, flags override its values")
	dataPath     = flag.String("data", "", "CSV dataset path")
	epochs       = flag.Int("epochs", 0, "Number of training epochs")
	learningRate = flag.Float64("lr", 0, "Learning rate")
	hidden       = flag.Int("hidden", 16, "Hidden layer size")
	seed         = flag.Uint64("seed", 0, "Random seed (0 seeds from the clock)")
	gradient     = flag.String("gradient", "reference", "Hidden layer gradient: reference or canonical")
	outDir       = flag.String("out", ".", "Directory for scaler, model and results")
	plotDir      = flag.String("plots", "output", "Directory for plots, relative to -out unless absolute")
	metricsFile  = flag.String("metrics", "", "Prometheus textfile to write after training")
	verbose      = flag.Bool("verbose", false, "Debug logging and timing statistics")
)

func init() {
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
}

func main() {
	flag.Parse()
	utils.Verbose = *verbose
	if *verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		flag.Usage()
		os.Exit(1)
	}
	log.Debug().Str("config", fmt.Sprintf("%+v", cfg)).Msg("loaded config")

	summary, err := pipeline.Train(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if err := json.NewEncoder(os.Stdout).Encode(summary); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// loadConfig starts from defaults or the config file and applies the flags
// that were set explicitly.
func loadConfig() (utils.Config, error) {
	cfg := utils.DefaultConfig()
	if *configFile != "" {
		var err error
		if cfg, err = utils.LoadConfig(*configFile); err != nil {
			return cfg, err
		}
	}

	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "data":
			cfg.DataPath = *dataPath
		case "epochs":
			cfg.Epochs = *epochs
		case "lr":
			cfg.LearningRate = *learningRate
		case "hidden":
			cfg.HiddenSize = *hidden
		case "seed":
			cfg.Seed = *seed
		case "gradient":
			cfg.Gradient = *gradient
		case "out":
			cfg.OutDir = *outDir
		case "plots":
			cfg.PlotDir = *plotDir
		case "metrics":
			cfg.MetricsFile = *metricsFile
		}
	})

	return cfg, utils.ValidateConfig(&cfg)
}
