// Copyright (c) 2017 Intel Corporation
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package trial

import (
	"math/rand/v2"
	"time"

	"github.com/pkg/errors"
)

// ErrInvalidParameter is returned when a probability is outside of (0,1) or a trial count is
// not a positive integer.
var ErrInvalidParameter = errors.New("invalid parameter")

// RandomSource produces numbers uniformly distributed on [0,1).
// *rand.Rand from math/rand/v2 satisfies it.
type RandomSource interface {
	Float64() float64
}

// NewSource returns a reproducible RandomSource for given seed.
func NewSource(seed uint64) RandomSource {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// NewTimeSeededSource returns RandomSource seeded from the current time.
func NewTimeSeededSource() RandomSource {
	return NewSource(uint64(time.Now().UnixNano()))
}

// ValidateProbability checks that probability of success lies strictly between 0 and 1.
func ValidateProbability(probability float64) error {
	// NaN fails both comparisons.
	if !(probability > 0 && probability < 1) {
		return errors.Wrapf(ErrInvalidParameter, "probability of success must be in (0,1), got %v", probability)
	}
	return nil
}

// ValidateCount checks that number of trials is positive.
func ValidateCount(count int) error {
	if count <= 0 {
		return errors.Wrapf(ErrInvalidParameter, "trial count must be a positive integer, got %d", count)
	}
	return nil
}

// DrawBatch draws count independent Bernoulli trials.
// Trial i succeeds when the uniform draw is below probability.
func DrawBatch(src RandomSource, probability float64, count int) ([]bool, error) {
	if err := ValidateProbability(probability); err != nil {
		return nil, err
	}
	if err := ValidateCount(count); err != nil {
		return nil, err
	}

	batch := make([]bool, count)
	for i := range batch {
		batch[i] = src.Float64() < probability
	}
	return batch, nil
}
