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
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

const (
	// SweepSteps is the number of probability values visited by a sweep.
	SweepSteps = 100
	// MaxSweepProbability caps probability of the last sweep steps. Step 99 would otherwise
	// ask for probability 1, which is outside of (0,1).
	MaxSweepProbability = 0.99
)

var (
	sweepDenominator    = decimal.NewFromInt(SweepSteps)
	maxSweepProbability = decimal.NewFromFloat(MaxSweepProbability)
)

// SweepProbability returns probability used by given step: (step+1)/100, capped at MaxSweepProbability.
func SweepProbability(step int) (float64, error) {
	if step < 0 || step >= SweepSteps {
		return 0, errors.Wrapf(ErrInvalidParameter, "sweep step must be in [0, %d], got %d", SweepSteps-1, step)
	}

	probability := decimal.NewFromInt(int64(step + 1)).Div(sweepDenominator)
	if probability.GreaterThan(maxSweepProbability) {
		probability = maxSweepProbability
	}
	value, _ := probability.Float64()
	return value, nil
}

// SweepStep is a completed step of a sweep.
type SweepStep struct {
	Index       int
	Probability float64
	Table       frequency.Table
}

// StepSweep runs TrialBudget draws at probability of given sweep step and returns a fresh table.
// Configured probability is not changed.
func (e *Engine) StepSweep(step int) (frequency.Table, error) {
	probability, err := SweepProbability(step)
	if err != nil {
		return nil, err
	}

	table, err := e.run(probability)
	e.recorder.RunFinished(e.params.Variant.String(), modeSweep, err)
	if err != nil {
		return nil, errors.Wrapf(err, "sweep step %d failed", step)
	}
	e.log.WithField("step", step).WithField("probability", probability).Debug("Sweep step finished")
	return table, nil
}

// Sweep runs all sweep steps in order and hands each completed step to fn before the next one
// is drawn. It stops at the first error, either from a step or returned by fn.
func (e *Engine) Sweep(fn func(SweepStep) error) error {
	for step := 0; step < SweepSteps; step++ {
		table, err := e.StepSweep(step)
		if err != nil {
			return err
		}

		// StepSweep validated the step already.
		probability, _ := SweepProbability(step)
		if err := fn(SweepStep{Index: step, Probability: probability, Table: table}); err != nil {
			return errors.Wrapf(err, "sweep stopped at step %d", step)
		}
	}
	return nil
}
