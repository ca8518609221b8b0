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
	"github.com/intelsdi-x/trials/pkg/frequency"
	"github.com/montanaflynn/stats"
	"github.com/pkg/errors"
)

// Summary compares moments of an empirical table with the closed-form ones.
type Summary struct {
	Draws             int
	EmpiricalMean     float64
	EmpiricalStdDev   float64
	TheoreticalMean   float64
	TheoreticalStdDev float64
}

// Summarize computes Summary of table drawn at given probability.
func (e *Engine) Summarize(table frequency.Table, probability float64) (Summary, error) {
	data := make(stats.Float64Data, 0, table.Total())
	for _, value := range table.Keys() {
		for i := 0; i < table[value]; i++ {
			data = append(data, float64(value))
		}
	}

	mean, err := stats.Mean(data)
	if err != nil {
		return Summary{}, errors.Wrap(err, "cannot compute empirical mean")
	}
	stdDev, err := stats.StandardDeviationPopulation(data)
	if err != nil {
		return Summary{}, errors.Wrap(err, "cannot compute empirical standard deviation")
	}

	theoreticalMean, theoreticalStdDev := e.behavior.moments(probability, e.params.TrialsPerDraw)
	return Summary{
		Draws:             len(data),
		EmpiricalMean:     mean,
		EmpiricalStdDev:   stdDev,
		TheoreticalMean:   theoreticalMean,
		TheoreticalStdDev: theoreticalStdDev,
	}, nil
}
