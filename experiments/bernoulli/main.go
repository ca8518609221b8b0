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

package main

import (
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/intelsdi-x/trials/pkg/conf"
	"github.com/intelsdi-x/trials/pkg/engine"
	"github.com/intelsdi-x/trials/pkg/experiment"
	"github.com/intelsdi-x/trials/pkg/experiment/logger"
	"github.com/intelsdi-x/trials/pkg/frequency"
	"github.com/intelsdi-x/trials/pkg/metrics"
	"github.com/intelsdi-x/trials/pkg/trial"
	"github.com/intelsdi-x/trials/pkg/utils/errutil"
	"github.com/intelsdi-x/trials/pkg/visualization"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"
	"gopkg.in/cheggaaa/pb.v1"
)

const help = `Draws Bernoulli trials and compares frequency of observed statistic with its distribution.

Geometric variant observes the number of trials until the first success, binomial variant
the number of successes in trials_per_draw trials. Modes:
  fixed        draw trial_budget statistics at given probability
  sweep        repeat the fixed run for probabilities 0.01 to 0.99
  incremental  draw statistics one by one, logging table after each draw
  theory       print theoretical table only`

var (
	appName = os.Args[0]
	// Print summary of every run.
	summaryFlag = conf.NewBoolFlag("summary", "Print empirical and theoretical mean and standard deviation", true)
)

func main() {
	experimentStart := time.Now()

	// Preparing application - setting name, help, parsing flags etc.
	conf.SetAppName(filepath.Base(appName))
	conf.SetHelp(help)
	experiment.Configure()

	// Generate an experiment ID and prepare experiment directory and logging.
	uid := uuid.New().String()
	// Log file is also closed by logrus.Exit and errutil fatals.
	experimentDirectory, closeLog := logger.Initialize(appName, uid)
	defer closeLog()

	// Read configuration.
	params, err := experiment.ParametersFromFlags()
	errutil.CheckWithContext(err, "Cannot read experiment parameters")
	mode := experiment.ModeFlag.Value()

	// Counters are always collected, the textfile is optional.
	registry := prometheus.NewRegistry()
	recorder, err := metrics.NewPrometheus(registry, metrics.Tags{ExperimentID: uid})
	errutil.CheckWithContext(err, "Cannot create metrics recorder")

	source := trial.NewTimeSeededSource()
	if seed := experiment.SeedFlag.Value(); seed != 0 {
		source = trial.NewSource(uint64(seed))
	}

	e, err := engine.Configure(params,
		engine.WithSource(source),
		engine.WithRecorder(recorder),
		engine.WithLogger(logrus.WithField("experiment_id", uid).WithField("variant", params.Variant.String())),
	)
	if err != nil {
		logrus.Errorf("Invalid experiment parameters: %s", err.Error())
		logrus.Exit(experiment.ExUsage)
	}

	visualization.PrintExperimentMetadata(os.Stdout, visualization.NewExperimentMetadata(uid, params.Variant.String(), mode))

	switch mode {
	case experiment.ModeFixed:
		err = runFixed(e)
	case experiment.ModeSweep:
		err = runSweep(e)
	case experiment.ModeIncremental:
		err = runIncremental(e)
	case experiment.ModeTheory:
		err = runTheory(e)
	}
	if err != nil {
		logrus.Errorf("Experiment failed: %+v", err)
		logrus.Exit(experiment.ExSoftware)
	}

	if path := experiment.MetricsTextfileFlag.Value(); path != "" {
		if !filepath.IsAbs(path) {
			path = filepath.Join(experimentDirectory, path)
		}
		errutil.CheckWithContext(metrics.WriteTextfile(path, registry), "Cannot write metrics")
		logrus.Infof("Metrics written to %q", path)
	}

	logrus.Infof("Ended experiment %s with uid %s in %s", conf.AppName(), uid, time.Since(experimentStart).String())
}

func runFixed(e *engine.Engine) error {
	table, err := e.RunFixed()
	if err != nil {
		return err
	}
	return compare(e, table, e.Parameters().SuccessProbability)
}

func runSweep(e *engine.Engine) error {
	bar := pb.New(engine.SweepSteps)
	bar.Output = os.Stderr
	bar.ShowTimeLeft = false
	bar.Start()
	defer bar.Finish()

	// Table of every step would flood the output, only the summary line is kept per step.
	delay := experiment.SweepStepDelayFlag.Value()
	var last engine.SweepStep
	err := e.Sweep(func(step engine.SweepStep) error {
		bar.Increment()
		last = step
		summary, err := e.Summarize(step.Table, step.Probability)
		if err != nil {
			return err
		}
		logrus.Infof("Step %d, p=%.2f: mean %.3f (expected %.3f), std dev %.3f (expected %.3f)",
			step.Index, step.Probability, summary.EmpiricalMean, summary.TheoreticalMean,
			summary.EmpiricalStdDev, summary.TheoreticalStdDev)
		time.Sleep(delay)
		return nil
	})
	if err != nil {
		return err
	}
	return compare(e, last.Table, last.Probability)
}

func runIncremental(e *engine.Engine) error {
	var table frequency.Table
	run := e.NewIncrementalRun()
	for !run.Done() {
		var err error
		table, err = run.Next()
		if err != nil {
			return err
		}
		logrus.Debugf("Frame %d: %v", run.Frame(), table)
	}
	return compare(e, table, e.Parameters().SuccessProbability)
}

func runTheory(e *engine.Engine) error {
	table, err := e.TheoreticalTable(experiment.HorizonFlag.Value())
	if err != nil {
		return err
	}
	visualization.DrawComparison(os.Stdout, nil, table)
	return nil
}

func compare(e *engine.Engine, table frequency.Table, probability float64) error {
	expected, err := e.TheoreticalTableAt(probability, experiment.HorizonFlag.Value())
	if err != nil {
		return err
	}
	visualization.DrawComparison(os.Stdout, table, expected)

	if !summaryFlag.Value() {
		return nil
	}
	summary, err := e.Summarize(table, probability)
	if err != nil {
		return err
	}
	visualization.DrawTable(os.Stdout, visualization.NewSummary(summary))
	return nil
}
