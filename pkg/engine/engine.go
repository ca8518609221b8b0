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

// Package engine runs Bernoulli-trial experiments: it draws trials, derives the statistic of the
// configured variant, accumulates frequency tables and builds the matching theoretical tables.
//
// Engine is synchronous and not safe for concurrent use. Callers which render results (e.g.
// frame by frame) drive it step by step: each call returns a complete table.
package engine

import (
	"github.com/intelsdi-x/trials/pkg/frequency"
	"github.com/intelsdi-x/trials/pkg/metrics"
	"github.com/intelsdi-x/trials/pkg/theory"
	"github.com/intelsdi-x/trials/pkg/trial"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

const (
	modeFixed       = "fixed"
	modeSweep       = "sweep"
	modeIncremental = "incremental"
)

// Engine is a configured experiment. It owns its frequency accumulator.
type Engine struct {
	params      Parameters
	behavior    behavior
	source      *countingSource
	recorder    metrics.Recorder
	log         *logrus.Entry
	accumulator *frequency.Accumulator
}

// Option customizes Engine.
type Option func(*Engine)

// WithSource sets source of randomness. By default engine uses a time seeded source.
func WithSource(src trial.RandomSource) Option {
	return func(e *Engine) {
		e.source = &countingSource{src: src}
	}
}

// WithRecorder sets recorder of engine events.
func WithRecorder(recorder metrics.Recorder) Option {
	return func(e *Engine) {
		e.recorder = recorder
	}
}

// WithLogger sets the log entry used by engine.
func WithLogger(log *logrus.Entry) Option {
	return func(e *Engine) {
		e.log = log
	}
}

// Configure validates parameters and returns engine ready to run.
// Invalid parameters fail with ErrInvalidParameter and no engine is created.
func Configure(params Parameters, opts ...Option) (*Engine, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}

	e := &Engine{
		params:      params,
		behavior:    behaviors[params.Variant],
		source:      &countingSource{src: trial.NewTimeSeededSource()},
		recorder:    metrics.NewNoop(),
		log:         logrus.WithField("variant", params.Variant.String()),
		accumulator: frequency.NewAccumulator(),
	}
	for _, opt := range opts {
		opt(e)
	}

	e.log.WithFields(logrus.Fields{
		"probability":     params.SuccessProbability,
		"trial_budget":    params.TrialBudget,
		"trials_per_draw": params.TrialsPerDraw,
	}).Debug("Engine configured")
	return e, nil
}

// Parameters returns parameters engine was configured with.
func (e *Engine) Parameters() Parameters {
	return e.params
}

// RunFixed draws TrialBudget statistics at configured probability and returns their frequency table.
// On error no table is returned.
func (e *Engine) RunFixed() (frequency.Table, error) {
	table, err := e.run(e.params.SuccessProbability)
	e.recorder.RunFinished(e.params.Variant.String(), modeFixed, err)
	if err != nil {
		return nil, err
	}
	e.log.WithField("draws", e.params.TrialBudget).Debug("Fixed run finished")
	return table, nil
}

// TheoreticalTable returns expected counts for configured parameters after TrialBudget draws.
// Horizon is the largest outcome of the Geometric table, non-positive means default. Binomial ignores it.
func (e *Engine) TheoreticalTable(horizon int) (theory.Table, error) {
	return e.TheoreticalTableAt(e.params.SuccessProbability, horizon)
}

// TheoreticalTableAt is TheoreticalTable for other probability, e.g. one of a sweep step.
func (e *Engine) TheoreticalTableAt(probability float64, horizon int) (theory.Table, error) {
	return e.behavior.theoretical(probability, e.params.TrialsPerDraw, e.params.TrialBudget, horizon)
}

// run resets the accumulator and fills it with TrialBudget statistics drawn at probability.
func (e *Engine) run(probability float64) (frequency.Table, error) {
	e.accumulator.Reset(e.behavior.keyDomain(e.params.TrialsPerDraw))
	for i := 0; i < e.params.TrialBudget; i++ {
		if err := e.drawInto(e.accumulator, probability); err != nil {
			return nil, errors.Wrapf(err, "draw %d of %d at probability %v failed", i+1, e.params.TrialBudget, probability)
		}
	}
	return e.accumulator.Snapshot(), nil
}

// drawInto draws one statistic and observes it in accumulator.
func (e *Engine) drawInto(accumulator *frequency.Accumulator, probability float64) error {
	variant := e.params.Variant.String()

	value, err := e.behavior.extract(e.source, probability, e.params.TrialsPerDraw)
	e.recorder.TrialsDrawn(variant, e.source.take())
	if err != nil {
		return err
	}

	if err := accumulator.Observe(value); err != nil {
		return err
	}
	e.recorder.OutcomeObserved(variant)
	return nil
}

// countingSource counts draws taken from the wrapped source.
type countingSource struct {
	src   trial.RandomSource
	count int
}

func (c *countingSource) Float64() float64 {
	c.count++
	return c.src.Float64()
}

// take returns number of draws since previous take.
func (c *countingSource) take() int {
	count := c.count
	c.count = 0
	return count
}
