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

// Package metrics counts the work done by experiment engines.
package metrics

import (
	"strconv"

	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "trials"

// Tags identify the experiment the counters belong to.
type Tags struct {
	ExperimentID string
}

// Recorder receives engine events.
type Recorder interface {
	// TrialsDrawn is called with number of Bernoulli trials consumed by a single draw.
	TrialsDrawn(variant string, count int)
	// OutcomeObserved is called for every statistic added to a frequency table.
	OutcomeObserved(variant string)
	// RunFinished is called once per fixed run, sweep step or incremental run.
	RunFinished(variant, mode string, err error)
}

type noop struct{}

// NewNoop returns Recorder which drops all events.
func NewNoop() Recorder {
	return noop{}
}

func (noop) TrialsDrawn(string, int) {}

func (noop) OutcomeObserved(string) {}

func (noop) RunFinished(string, string, error) {}

// Prometheus is a Recorder backed by Prometheus counters.
type Prometheus struct {
	trials   *prometheus.CounterVec
	outcomes *prometheus.CounterVec
	runs     *prometheus.CounterVec
}

// NewPrometheus creates counters labeled with given tags and registers them in registerer.
func NewPrometheus(registerer prometheus.Registerer, tags Tags) (*Prometheus, error) {
	constLabels := prometheus.Labels{"experiment_id": tags.ExperimentID}
	p := &Prometheus{
		trials: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace:   namespace,
			Name:        "bernoulli_trials_total",
			Help:        "Number of Bernoulli trials drawn.",
			ConstLabels: constLabels,
		}, []string{"variant"}),
		outcomes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace:   namespace,
			Name:        "outcomes_observed_total",
			Help:        "Number of outcomes added to frequency tables.",
			ConstLabels: constLabels,
		}, []string{"variant"}),
		runs: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace:   namespace,
			Name:        "runs_total",
			Help:        "Number of finished runs by mode and result.",
			ConstLabels: constLabels,
		}, []string{"variant", "mode", "succeeded"}),
	}

	for _, collector := range []prometheus.Collector{p.trials, p.outcomes, p.runs} {
		if err := registerer.Register(collector); err != nil {
			return nil, errors.Wrap(err, "cannot register engine counters")
		}
	}
	return p, nil
}

// TrialsDrawn implements Recorder.
func (p *Prometheus) TrialsDrawn(variant string, count int) {
	p.trials.WithLabelValues(variant).Add(float64(count))
}

// OutcomeObserved implements Recorder.
func (p *Prometheus) OutcomeObserved(variant string) {
	p.outcomes.WithLabelValues(variant).Inc()
}

// RunFinished implements Recorder.
func (p *Prometheus) RunFinished(variant, mode string, err error) {
	p.runs.WithLabelValues(variant, mode, strconv.FormatBool(err == nil)).Inc()
}

// WriteTextfile writes all metrics of gatherer in the text exposition format, so they can be
// picked up by node_exporter's textfile collector.
func WriteTextfile(path string, gatherer prometheus.Gatherer) error {
	return errors.Wrapf(prometheus.WriteToTextfile(path, gatherer), "cannot write metrics to %q", path)
}
