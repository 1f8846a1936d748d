package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"

	"potable/data"
	"potable/pipeline"
	"potable/utils"
)

func init() {
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
}

func main() {
	if err := run(os.Args, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func usage(prog string) {
	fmt.Fprintln(os.Stderr, "Usage:")
	fmt.Fprintf(os.Stderr, "  Training: %s --train <csv_path> <epochs> <learning_rate>\n", prog)
	fmt.Fprintf(os.Stderr, "  Prediction: %s --predict <%s>\n", prog, strings.Join(data.FeatureNames[:], "> <"))
}

func run(args []string, out io.Writer) error {
	if len(args) < 2 {
		usage(args[0])
		return fmt.Errorf("%w: missing command", utils.ErrArgument)
	}

	switch args[1] {
	case "--train":
		if len(args) != 5 {
			return fmt.Errorf("%w: training requires csv_path, epochs, and learning_rate", utils.ErrArgument)
		}
		csvPath, err := filepath.Abs(args[2])
		if err != nil {
			return fmt.Errorf("%w: invalid CSV path %q: %v", utils.ErrArgument, args[2], err)
		}
		epochs, err := utils.ParseEpochs(args[3])
		if err != nil {
			return err
		}
		lr, err := utils.ParseFloats(args[4:5])
		if err != nil {
			return err
		}

		cfg := utils.DefaultConfig()
		cfg.DataPath = csvPath
		cfg.Epochs = epochs
		cfg.LearningRate = lr[0]
		summary, err := pipeline.Train(cfg)
		if err != nil {
			return err
		}
		return json.NewEncoder(out).Encode(summary)

	case "--predict":
		if len(args) != 2+data.FeatureNum {
			return fmt.Errorf("%w: prediction requires %s", utils.ErrArgument, strings.Join(data.FeatureNames[:], ", "))
		}
		features, err := utils.ParseFloats(args[2:])
		if err != nil {
			return err
		}
		prediction, err := pipeline.Predict(features, pipeline.ModelFile, pipeline.ScalerFile)
		if err != nil {
			return err
		}
		return json.NewEncoder(out).Encode(prediction)
	}

	usage(args[0])
	return fmt.Errorf("%w: invalid command %q: use --train or --predict", utils.ErrArgument, args[1])
}
