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

package frequency

import (
	"sort"

	"github.com/pkg/errors"
)

// ErrUnexpectedOutcome is returned when an outcome falls outside of the accumulator's closed key domain.
var ErrUnexpectedOutcome = errors.New("unexpected outcome")

// Table maps an outcome to number of its occurrences.
type Table map[int]int

// Keys returns outcomes in ascending order.
func (t Table) Keys() []int {
	keys := make([]int, 0, len(t))
	for key := range t {
		keys = append(keys, key)
	}
	sort.Ints(keys)
	return keys
}

// Total returns sum of all counts.
func (t Table) Total() int {
	total := 0
	for _, count := range t {
		total += count
	}
	return total
}

// Clone returns an independent copy of the table.
func (t Table) Clone() Table {
	clone := make(Table, len(t))
	for key, count := range t {
		clone[key] = count
	}
	return clone
}

// Domain returns the consecutive outcomes lo..hi.
func Domain(lo, hi int) []int {
	if hi < lo {
		return []int{}
	}
	domain := make([]int, 0, hi-lo+1)
	for outcome := lo; outcome <= hi; outcome++ {
		domain = append(domain, outcome)
	}
	return domain
}

// Accumulator counts observed outcomes.
// It is not safe for concurrent use.
type Accumulator struct {
	counts       Table
	closed       bool
	observations int
}

// NewAccumulator returns an empty accumulator with open key domain.
func NewAccumulator() *Accumulator {
	return &Accumulator{counts: Table{}}
}

// Reset drops all counts.
// With nil keyDomain the accumulator starts empty and creates keys on first observation.
// Otherwise every key of keyDomain is present with count 0 and no other key is accepted.
func (a *Accumulator) Reset(keyDomain []int) {
	a.counts = make(Table, len(keyDomain))
	a.closed = keyDomain != nil
	a.observations = 0
	for _, key := range keyDomain {
		a.counts[key] = 0
	}
}

// Observe increments count of given outcome.
func (a *Accumulator) Observe(outcome int) error {
	if _, ok := a.counts[outcome]; !ok && a.closed {
		return errors.Wrapf(ErrUnexpectedOutcome, "outcome %d is outside of key domain", outcome)
	}
	a.counts[outcome]++
	a.observations++
	return nil
}

// Observations returns number of outcomes observed since last Reset.
func (a *Accumulator) Observations() int {
	return a.observations
}

// Snapshot returns a copy of current counts. Later observations do not change it.
func (a *Accumulator) Snapshot() Table {
	return a.counts.Clone()
}
