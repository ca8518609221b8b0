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
	"github.com/intelsdi-x/trials/pkg/utils/err_collection"
	"github.com/pkg/errors"
)

// Parameters of an experiment.
type Parameters struct {
	Variant Variant
	// SuccessProbability of a single Bernoulli trial, in (0,1).
	SuccessProbability float64
	// TrialBudget is the number of draws per run.
	TrialBudget int
	// TrialsPerDraw is n of the Binomial experiment. Geometric ignores it.
	TrialsPerDraw int
}

// Validate checks all invariants and reports every violation at once.
func (p Parameters) Validate() error {
	var errs errcollection.ErrorCollection

	if _, ok := behaviors[p.Variant]; !ok {
		errs.Add(errors.Errorf("unknown experiment variant %v", p.Variant))
	}
	// NaN fails both comparisons.
	if !(p.SuccessProbability > 0 && p.SuccessProbability < 1) {
		errs.Add(errors.Errorf("probability of success must be in (0,1), got %v", p.SuccessProbability))
	}
	if p.TrialBudget <= 0 {
		errs.Add(errors.Errorf("trial budget must be positive, got %d", p.TrialBudget))
	}
	switch {
	case p.Variant == Binomial && p.TrialsPerDraw <= 0:
		errs.Add(errors.Errorf("number of trials per draw must be positive, got %d", p.TrialsPerDraw))
	case p.TrialsPerDraw < 0:
		errs.Add(errors.Errorf("number of trials per draw cannot be negative, got %d", p.TrialsPerDraw))
	}

	return errs.WrapIfAny(ErrInvalidParameter)
}
