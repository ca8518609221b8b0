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

package engine

import (
	"fmt"
	"strings"

	"github.com/intelsdi-x/trials/pkg/frequency"
	"github.com/intelsdi-x/trials/pkg/outcome"
	"github.com/intelsdi-x/trials/pkg/theory"
	"github.com/intelsdi-x/trials/pkg/trial"
	"github.com/pkg/errors"
)

// Variant selects the statistic derived from Bernoulli trials.
type Variant int

const (
	// Geometric experiment observes the index of the first success.
	Geometric Variant = iota + 1
	// Binomial experiment observes the number of successes in a fixed number of trials.
	Binomial
)

// Variants lists all supported variants.
var Variants = []Variant{Geometric, Binomial}

func (v Variant) String() string {
	switch v {
	case Geometric:
		return "geometric"
	case Binomial:
		return "binomial"
	default:
		return fmt.Sprintf("Variant(%d)", int(v))
	}
}

// ParseVariant returns Variant named by its String value, case insensitive.
func ParseVariant(name string) (Variant, error) {
	for _, variant := range Variants {
		if strings.EqualFold(name, variant.String()) {
			return variant, nil
		}
	}
	return 0, errors.Wrapf(ErrInvalidParameter, "unknown experiment variant %q", name)
}

// behavior holds everything that differs between variants.
type behavior struct {
	// extract draws trials and returns one statistic.
	extract func(src trial.RandomSource, probability float64, trialsPerDraw int) (int, error)
	// keyDomain returns keys pre-seeded in frequency table, nil for keys created on observation.
	keyDomain func(trialsPerDraw int) []int
	// theoretical returns expected counts after totalDraws draws.
	theoretical func(probability float64, trialsPerDraw, totalDraws, horizon int) (theory.Table, error)
	// moments returns closed-form mean and standard deviation of the statistic.
	moments func(probability float64, trialsPerDraw int) (mean, stdDev float64)
}

var behaviors = map[Variant]behavior{
	Geometric: {
		extract: func(src trial.RandomSource, probability float64, _ int) (int, error) {
			return outcome.NextSuccessIndex(src, probability)
		},
		keyDomain: func(int) []int { return nil },
		theoretical: func(probability float64, _, totalDraws, horizon int) (theory.Table, error) {
			return theory.Geometric(probability, totalDraws, horizon)
		},
		moments: func(probability float64, _ int) (float64, float64) {
			return theory.GeometricMoments(probability)
		},
	},
	Binomial: {
		extract:   outcome.SuccessCount,
		keyDomain: func(n int) []int { return frequency.Domain(0, n) },
		theoretical: func(probability float64, n, totalDraws, _ int) (theory.Table, error) {
			return theory.Binomial(probability, n, totalDraws)
		},
		moments: theory.BinomialMoments,
	},
}
