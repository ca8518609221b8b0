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

// Package outcome turns batches of Bernoulli trials into the statistic observed by an
// experiment: index of the first success (geometric) or number of successes (binomial).
package outcome

import (
	"math"

	"github.com/intelsdi-x/trials/pkg/trial"
)

// MaxBatchSize caps the number of trials drawn at once.
const MaxBatchSize = 1 << 20

// BatchSize returns how many trials NextSuccessIndex draws at once for given probability.
// It is floor(1/p), the expected index of the first success rounded down, within [1, MaxBatchSize].
func BatchSize(probability float64) int {
	// Computed in float64, 1/p does not fit int for p below ~1e-19.
	size := math.Floor(1 / probability)
	if size > MaxBatchSize {
		return MaxBatchSize
	}
	if size < 1 {
		return 1
	}
	return int(size)
}

// NextSuccessIndex returns 1-based index of the first success in an unbounded sequence of
// Bernoulli(probability) trials.
//
// Trials are drawn in batches of BatchSize(probability). When a batch has no success, the offset
// is advanced by the batch size and another batch is drawn. There is no cap on the number of
// batches: termination is certain with probability 1 for p in (0,1), but for small p every batch
// costs O(1/p) draws. Memory of a batch is bounded by MaxBatchSize; below p = 1/MaxBatchSize
// more batches are drawn instead, which does not change the distribution of the index.
func NextSuccessIndex(src trial.RandomSource, probability float64) (int, error) {
	if err := trial.ValidateProbability(probability); err != nil {
		return 0, err
	}

	size := BatchSize(probability)
	offset := 0
	for {
		batch, err := trial.DrawBatch(src, probability, size)
		if err != nil {
			return 0, err
		}
		for i, success := range batch {
			if success {
				return offset + i + 1, nil
			}
		}
		offset += size
	}
}

// SuccessCount draws one batch of n Bernoulli(probability) trials and returns number of
// successes, in [0, n].
func SuccessCount(src trial.RandomSource, probability float64, n int) (int, error) {
	batch, err := trial.DrawBatch(src, probability, n)
	if err != nil {
		return 0, err
	}

	successes := 0
	for _, success := range batch {
		if success {
			successes++
		}
	}
	return successes, nil
}
