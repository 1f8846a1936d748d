package data

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"potable/utils"
)

func randomDataset(n int, seed uint64) Dataset {
	rng := NewRand(seed)
	ds := make(Dataset, n)
	for i := range ds {
		x := make([]float64, FeatureNum)
		for j := range x {
			x[j] = rng.NormFloat64()*float64(j+1) + float64(10*j)
		}
		// feature 4 is constant
		x[4] = 3
		ds[i] = Sample{Features: x, Label: float64(i % 2)}
	}
	return ds
}

func TestScaler_Bounds(t *testing.T) {
	ds := randomDataset(50, 1)
	s, err := FitScaler(ds)
	require.NoError(t, err)

	scaled, err := s.TransformAll(ds)
	require.NoError(t, err)
	require.Len(t, scaled, len(ds))

	for j := 0; j < FeatureNum; j++ {
		lo, hi := 1.0, 0.0
		for i, sample := range scaled {
			v := sample.Features[j]
			assert.GreaterOrEqual(t, v, 0.0)
			assert.LessOrEqual(t, v, 1.0)
			if v < lo {
				lo = v
			}
			if v > hi {
				hi = v
			}
			assert.Equal(t, ds[i].Label, sample.Label)
		}
		if j == 4 {
			assert.Equal(t, 0.5, lo)
			assert.Equal(t, 0.5, hi)
			continue
		}
		assert.Equal(t, 0.0, lo, "feature %d", j)
		assert.Equal(t, 1.0, hi, "feature %d", j)
	}
}

func TestScaler_Transform(t *testing.T) {
	s := &Scaler{Min: make([]float64, FeatureNum), Max: make([]float64, FeatureNum)}
	for i := range s.Max {
		s.Max[i] = 2
	}
	s.Max[3] = 0

	x := make([]float64, FeatureNum)
	for i := range x {
		x[i] = 1
	}
	x[0] = 3
	out, err := s.Transform(x)
	require.NoError(t, err)
	assert.Equal(t, 1.5, out[0], "values beyond the fitted range are not clipped")
	assert.Equal(t, 0.5, out[1])
	assert.Equal(t, 0.5, out[3])
	assert.Equal(t, 1.0, x[1], "input is not modified")

	_, err = s.Transform(x[:13])
	assert.ErrorIs(t, err, utils.ErrShape)
}

func TestFitScaler_Errors(t *testing.T) {
	_, err := FitScaler(nil)
	assert.ErrorIs(t, err, utils.ErrData)

	ds := randomDataset(3, 1)
	ds[2].Features = ds[2].Features[:13]
	_, err = FitScaler(ds)
	assert.ErrorIs(t, err, utils.ErrShape)
}

func TestSaveLoadScaler(t *testing.T) {
	dir := t.TempDir()
	s, err := FitScaler(randomDataset(20, 2))
	require.NoError(t, err)

	path := filepath.Join(dir, "scaler.json")
	require.NoError(t, SaveScaler(path, s))
	b, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(b), `"min_vals"`)
	assert.Contains(t, string(b), `"max_vals"`)

	loaded, err := LoadScaler(path)
	require.NoError(t, err)
	assert.Equal(t, s, loaded)

	_, err = LoadScaler(filepath.Join(dir, "missing.json"))
	assert.ErrorIs(t, err, utils.ErrIO)

	short := filepath.Join(dir, "short.json")
	require.NoError(t, os.WriteFile(short, []byte(`{"min_vals":[0,1],"max_vals":[1,2]}`), 0o644))
	_, err = LoadScaler(short)
	assert.ErrorIs(t, err, utils.ErrIO)
	assert.ErrorIs(t, err, utils.ErrShape)
}
