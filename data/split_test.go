package data

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"potable/utils"
)

func firstFeatures(ds ...Dataset) []float64 {
	var out []float64
	for _, d := range ds {
		for _, s := range d {
			out = append(out, s.Features[0])
		}
	}
	sort.Float64s(out)
	return out
}

func TestSplit(t *testing.T) {
	ds := make(Dataset, 101)
	for i := range ds {
		ds[i] = Sample{Features: []float64{float64(i)}, Label: float64(i % 2)}
	}

	for _, ratio := range []float64{0, 0.3, 0.5, 0.7, 1} {
		first, second, err := Split(ds, ratio, NewRand(7))
		require.NoError(t, err)
		assert.Len(t, first, int(float64(len(ds))*ratio))
		assert.Len(t, second, len(ds)-len(first))
		assert.Equal(t, firstFeatures(ds), firstFeatures(first, second), "ratio %v", ratio)
	}

	// the input order is untouched
	for i, s := range ds {
		assert.Equal(t, float64(i), s.Features[0])
	}
}

func TestSplit_Deterministic(t *testing.T) {
	ds := randomDataset(40, 3)
	a1, b1, err := Split(ds, 0.7, NewRand(11))
	require.NoError(t, err)
	a2, b2, err := Split(ds, 0.7, NewRand(11))
	require.NoError(t, err)
	assert.Equal(t, a1, a2)
	assert.Equal(t, b1, b2)
}

func TestSplit_AppendDoesNotAlias(t *testing.T) {
	ds := randomDataset(10, 3)
	first, second, err := Split(ds, 0.5, NewRand(1))
	require.NoError(t, err)
	head := second[0]
	_ = append(first, Sample{Label: 42})
	assert.Equal(t, head, second[0])
}

func TestSplit_BadRatio(t *testing.T) {
	for _, ratio := range []float64{-0.1, 1.5} {
		_, _, err := Split(randomDataset(4, 1), ratio, NewRand(1))
		assert.ErrorIs(t, err, utils.ErrArgument)
	}
}
