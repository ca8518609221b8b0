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
)

// IncrementalRun grows one frequency table a single draw at a time, so that every frame
// of a rendering shows the table after one more observation.
type IncrementalRun struct {
	engine      *Engine
	accumulator *frequency.Accumulator
	frame       int
	err         error
}

// NewIncrementalRun starts a run at configured probability with an empty table.
// The run has its own table and does not interfere with RunFixed or sweeps.
func (e *Engine) NewIncrementalRun() *IncrementalRun {
	accumulator := frequency.NewAccumulator()
	accumulator.Reset(e.behavior.keyDomain(e.params.TrialsPerDraw))
	return &IncrementalRun{engine: e, accumulator: accumulator}
}

// Next performs one draw and returns table with all observations so far.
// After TrialBudget frames it returns ErrRunExhausted. A failed draw aborts the run and
// the same error is returned by every later call.
func (r *IncrementalRun) Next() (frequency.Table, error) {
	if r.err != nil {
		return nil, r.err
	}
	if r.Done() {
		return nil, errors.Wrapf(ErrRunExhausted, "all %d frames were drawn", r.frame)
	}

	e := r.engine
	if err := e.drawInto(r.accumulator, e.params.SuccessProbability); err != nil {
		r.err = errors.Wrapf(err, "frame %d failed", r.frame+1)
		e.recorder.RunFinished(e.params.Variant.String(), modeIncremental, r.err)
		return nil, r.err
	}
	r.frame++

	if r.Done() {
		e.recorder.RunFinished(e.params.Variant.String(), modeIncremental, nil)
		e.log.WithField("frames", r.frame).Debug("Incremental run finished")
	}
	return r.accumulator.Snapshot(), nil
}

// Frame returns number of draws performed so far.
func (r *IncrementalRun) Frame() int {
	return r.frame
}

// Done reports whether the whole trial budget was drawn.
func (r *IncrementalRun) Done() bool {
	return r.frame >= r.engine.params.TrialBudget
}
