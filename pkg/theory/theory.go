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

// Package theory computes expected-count tables from closed-form probability mass functions.
package theory

import (
	"math"
	"math/big"
	"sort"

	"github.com/intelsdi-x/trials/pkg/trial"
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/floats"
)

// precision of big.Float arithmetic used for binomial terms.
const precision = 256

// Table maps an outcome to its expected count.
type Table map[int]float64

// Keys returns outcomes in ascending order.
func (t Table) Keys() []int {
	keys := make([]int, 0, len(t))
	for key := range t {
		keys = append(keys, key)
	}
	sort.Ints(keys)
	return keys
}

// Total returns sum of expected counts.
func (t Table) Total() float64 {
	values := make([]float64, 0, len(t))
	for _, key := range t.Keys() {
		values = append(values, t[key])
	}
	return floats.Sum(values)
}

// MaxGeometricHorizon is the largest outcome a geometric table can have.
const MaxGeometricHorizon = 1 << 24

// DefaultGeometricHorizon returns 5 times the mean number of trials until first success,
// at least 1 and at most MaxGeometricHorizon.
func DefaultGeometricHorizon(probability float64) int {
	// Computed in float64, 1/p does not fit int for p below ~1e-19.
	horizon := 5 * math.Round(1/probability)
	if horizon > MaxGeometricHorizon {
		return MaxGeometricHorizon
	}
	if horizon < 1 {
		return 1
	}
	return int(horizon)
}

// Geometric returns expected counts of first-success index i = 1..horizon after totalDraws draws:
// (1-p)^(i-1) * p * totalDraws.
// Non-positive horizon means DefaultGeometricHorizon, horizon above MaxGeometricHorizon is rejected. The table is truncated at the horizon, so its
// Total is totalDraws * (1 - (1-p)^horizon), slightly less than totalDraws.
func Geometric(probability float64, totalDraws, horizon int) (Table, error) {
	if err := trial.ValidateProbability(probability); err != nil {
		return nil, err
	}
	if err := trial.ValidateCount(totalDraws); err != nil {
		return nil, err
	}
	if horizon > MaxGeometricHorizon {
		return nil, errors.Wrapf(trial.ErrInvalidParameter, "horizon must not exceed %d, got %d", MaxGeometricHorizon, horizon)
	}
	if horizon <= 0 {
		horizon = DefaultGeometricHorizon(probability)
	}

	q := 1 - probability
	table := make(Table, horizon)
	for i := 1; i <= horizon; i++ {
		table[i] = math.Pow(q, float64(i-1)) * probability * float64(totalDraws)
	}
	return table, nil
}

// Binomial returns expected counts of success count i = 0..n after totalDraws draws:
// C(n,i) * p^i * (1-p)^(n-i) * totalDraws.
// Terms are evaluated with exact integer coefficients and big.Float powers, so large n neither
// overflows the coefficient nor underflows the intermediate powers.
func Binomial(probability float64, n, totalDraws int) (Table, error) {
	if err := trial.ValidateProbability(probability); err != nil {
		return nil, err
	}
	if err := trial.ValidateCount(n); err != nil {
		return nil, err
	}
	if err := trial.ValidateCount(totalDraws); err != nil {
		return nil, err
	}

	p := newFloat().SetFloat64(probability)
	q := newFloat().Sub(newFloat().SetInt64(1), p)
	draws := newFloat().SetInt64(int64(totalDraws))

	table := make(Table, n+1)
	coefficient := big.NewInt(1)
	for i := 0; i <= n; i++ {
		if i > 0 {
			// C(n,i) = C(n,i-1) * (n-i+1) / i, division is exact.
			coefficient.Mul(coefficient, big.NewInt(int64(n-i+1)))
			coefficient.Quo(coefficient, big.NewInt(int64(i)))
		}
		term := newFloat().SetInt(coefficient)
		term.Mul(term, pow(p, i))
		term.Mul(term, pow(q, n-i))
		term.Mul(term, draws)
		table[i], _ = term.Float64()
	}
	return table, nil
}

// BinomialCoefficient returns exact C(n, k).
func BinomialCoefficient(n, k int) *big.Int {
	if k < 0 || k > n {
		return big.NewInt(0)
	}
	return new(big.Int).Binomial(int64(n), int64(k))
}

// GeometricMoments returns mean and standard deviation of index of first success.
func GeometricMoments(probability float64) (mean, stdDev float64) {
	return 1 / probability, math.Sqrt(1-probability) / probability
}

// BinomialMoments returns mean and standard deviation of number of successes in n trials.
func BinomialMoments(probability float64, n int) (mean, stdDev float64) {
	mean = float64(n) * probability
	return mean, math.Sqrt(mean * (1 - probability))
}

func newFloat() *big.Float {
	return new(big.Float).SetPrec(precision)
}

// pow returns base^exp by squaring.
func pow(base *big.Float, exp int) *big.Float {
	result := newFloat().SetInt64(1)
	square := newFloat().Set(base)
	for exp > 0 {
		if exp&1 == 1 {
			result.Mul(result, square)
		}
		square.Mul(square, square)
		exp >>= 1
	}
	return result
}
