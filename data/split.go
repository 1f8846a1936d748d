package data

import (
	"fmt"

	"golang.org/x/exp/rand"

	"potable/utils"
)

// Split shuffles a copy of ds and cuts it after floor(len(ds)*ratio) samples.
func Split(ds Dataset, ratio float64, rng *rand.Rand) (Dataset, Dataset, error) {
	if ratio < 0 || ratio > 1 {
		return nil, nil, fmt.Errorf("%w: split ratio %v outside [0,1]", utils.ErrArgument, ratio)
	}
	idx := int(float64(len(ds)) * ratio)

	shuffled := make(Dataset, len(ds))
	copy(shuffled, ds)
	rng.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})

	return shuffled[:idx:idx], shuffled[idx:], nil
}
