// potable-infer: classifies one water sample with a trained model
//
// Usage:
//
//	potable-infer -model=model.json -scaler=scaler.json <14 feature values>
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog"

	"potable/data"
	"potable/pipeline"
	"potable/utils"
)

var (
	modelFile  = flag.String("model", pipeline.ModelFile, "Model JSON file")
	scalerFile = flag.String("scaler", pipeline.ScalerFile, "Scaler JSON file")
)

func init() {
	zerolog.SetGlobalLevel(zerolog.WarnLevel)
}

func main() {
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: %s [flags] [--] <%s>\n", os.Args[0], strings.Join(data.FeatureNames[:], "> <"))
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() != data.FeatureNum {
		fmt.Fprintf(os.Stderr, "Error: %v\n", fmt.Errorf("%w: expected %d feature values, got %d", utils.ErrArgument, data.FeatureNum, flag.NArg()))
		flag.Usage()
		os.Exit(1)
	}
	features, err := utils.ParseFloats(flag.Args())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	prediction, err := pipeline.Predict(features, *modelFile, *scalerFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if err := json.NewEncoder(os.Stdout).Encode(prediction); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
