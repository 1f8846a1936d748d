// Package data loads, scales and splits the water quality dataset.
package data

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"

	"potable/utils"
)

const (
	// FeatureNum is the number of features of every sample.
	FeatureNum = 14
	// columnNum is FeatureNum features followed by the label.
	columnNum = FeatureNum + 1
)

// FeatureNames lists the features in column order.
var FeatureNames = [FeatureNum]string{
	"aluminium", "ammonia", "arsenic", "barium", "chloramine", "chromium", "copper",
	"fluoride", "bacteria", "viruses", "mercury", "radium", "silver", "uranium",
}

type Sample struct {
	Features []float64
	Label    float64
}

type Dataset []Sample

// Load reads the dataset at path.
func Load(path string) (Dataset, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: opening %s: %v", utils.ErrData, path, err)
	}
	defer file.Close()

	ds, err := Parse(file)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return ds, nil
}

// Parse reads comma separated rows after a header line. Rows with fewer than
// 15 values or with a non-finite value in the first 15 columns are skipped.
func Parse(reader io.Reader) (Dataset, error) {
	scanner := bufio.NewScanner(reader)
	var ds Dataset
	var lineNum int
	for scanner.Scan() {
		lineNum++
		if lineNum == 1 {
			continue
		}
		sample, err := parseLine(scanner.Text())
		if err != nil {
			log.Debug().Int("line", lineNum).Err(err).Msg("skipping row")
			continue
		}
		ds = append(ds, sample)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("%w: reading rows: %v", utils.ErrData, err)
	}
	if len(ds) == 0 {
		return nil, fmt.Errorf("%w: no valid data points found", utils.ErrData)
	}
	return ds, nil
}

func parseLine(line string) (Sample, error) {
	splits := strings.Split(line, ",")
	if len(splits) < columnNum {
		return Sample{}, errInvalidLine{splits: len(splits), expected: columnNum}
	}

	values := make([]float64, columnNum)
	for i := range values {
		num, err := strconv.ParseFloat(strings.TrimSpace(splits[i]), 64)
		if err != nil {
			num = math.NaN()
		}
		if math.IsNaN(num) || math.IsInf(num, 0) {
			return Sample{}, fmt.Errorf("column %d: non-finite value %q", i+1, splits[i])
		}
		values[i] = num
	}

	return Sample{
		Features: values[:FeatureNum:FeatureNum],
		Label:    values[FeatureNum],
	}, nil
}

type errInvalidLine struct {
	splits   int
	expected int
}

func (e errInvalidLine) Error() string {
	return fmt.Sprintf("expected at least %d values, got %d", e.expected, e.splits)
}

// Copy returns a deep copy of ds.
func (ds Dataset) Copy() Dataset {
	out := make(Dataset, len(ds))
	for i, s := range ds {
		out[i] = Sample{
			Features: append([]float64(nil), s.Features...),
			Label:    s.Label,
		}
	}
	return out
}
