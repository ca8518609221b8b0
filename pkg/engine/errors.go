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
	"github.com/intelsdi-x/trials/pkg/trial"
	"github.com/pkg/errors"
)

var (
	// ErrInvalidParameter is returned when parameters violate their invariants.
	ErrInvalidParameter = trial.ErrInvalidParameter
	// ErrUnexpectedOutcome signals that an extracted statistic is outside of the frequency table domain.
	// It means internal inconsistency and the run that hit it is aborted.
	ErrUnexpectedOutcome = frequency.ErrUnexpectedOutcome
	// ErrRunExhausted is returned by IncrementalRun.Next after the whole trial budget was drawn.
	ErrRunExhausted = errors.New("run exhausted")
)
