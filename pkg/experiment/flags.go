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

package experiment

import (
	"time"

	"github.com/intelsdi-x/trials/pkg/conf"
	"github.com/intelsdi-x/trials/pkg/engine"
	"github.com/pkg/errors"
)

// Modes of running an experiment.
const (
	ModeFixed       = "fixed"
	ModeSweep       = "sweep"
	ModeIncremental = "incremental"
	ModeTheory      = "theory"
)

var (
	// VariantFlag selects statistic drawn by experiment.
	VariantFlag = conf.NewEnumFlag("variant", "Experiment variant", engine.Geometric.String(),
		engine.Geometric.String(), engine.Binomial.String())
	// ProbabilityFlag is probability of success of a single trial.
	ProbabilityFlag = conf.NewFloatFlag("probability", "Probability of success of a single Bernoulli trial, in (0,1)", 0.5)
	// TrialBudgetFlag is number of draws per run.
	TrialBudgetFlag = conf.NewIntFlag("trial_budget", "Number of statistics drawn per run", 1000)
	// TrialsPerDrawFlag is n of the binomial experiment.
	TrialsPerDrawFlag = conf.NewIntFlag("trials_per_draw", "Number of Bernoulli trials per binomial draw", 10)
	// SeedFlag makes runs reproducible. Zero means seed taken from clock.
	SeedFlag = conf.NewIntFlag("seed", "Seed of random source, 0 for time based seed", 0)
	// HorizonFlag is largest outcome of geometric theoretical table.
	HorizonFlag = conf.NewIntFlag("horizon", "Largest outcome of geometric theoretical table, 0 for 5/p", 0)
	// ModeFlag selects how experiment is run.
	ModeFlag = conf.NewEnumFlag("mode", "Experiment mode", ModeFixed, ModeFixed, ModeSweep, ModeIncremental, ModeTheory)
	// SweepStepDelayFlag is pause after every sweep step, so steps can be watched one by one.
	SweepStepDelayFlag = conf.NewDurationFlag("sweep_step_delay", "Pause after every sweep step", 0*time.Second)
	// MetricsTextfileFlag is path of Prometheus textfile written after experiment.
	MetricsTextfileFlag = conf.NewStringFlag("metrics_textfile", "Path of Prometheus textfile with experiment counters, empty disables it", "")
	// OutputDirFlag is parent of experiment directories.
	OutputDirFlag = conf.NewStringFlag("output_dir", "Directory where experiment directories are created", ".")
)

// ParametersFromFlags returns engine parameters taken from flags. Parameters are not validated.
func ParametersFromFlags() (engine.Parameters, error) {
	variant, err := engine.ParseVariant(VariantFlag.Value())
	if err != nil {
		return engine.Parameters{}, errors.Wrap(err, "cannot read variant flag")
	}

	params := engine.Parameters{
		Variant:            variant,
		SuccessProbability: ProbabilityFlag.Value(),
		TrialBudget:        TrialBudgetFlag.Value(),
	}
	if variant == engine.Binomial {
		params.TrialsPerDraw = TrialsPerDrawFlag.Value()
	}
	return params, nil
}
