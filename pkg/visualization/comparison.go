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

package visualization

import (
	"fmt"
	"io"
	"sort"
	"strconv"

	"github.com/intelsdi-x/trials/pkg/engine"
	"github.com/intelsdi-x/trials/pkg/frequency"
	"github.com/intelsdi-x/trials/pkg/theory"
)

var comparisonHeaders = []string{"outcome", "observed", "expected", "difference"}

// NewComparison builds table of observed against expected counts over the union of outcomes of both tables.
// Missing outcome counts as zero.
func NewComparison(observed frequency.Table, expected theory.Table) *Table {
	outcomes := map[int]struct{}{}
	for outcome := range observed {
		outcomes[outcome] = struct{}{}
	}
	for outcome := range expected {
		outcomes[outcome] = struct{}{}
	}
	keys := make([]int, 0, len(outcomes))
	for outcome := range outcomes {
		keys = append(keys, outcome)
	}
	sort.Ints(keys)

	data := make([][]string, 0, len(keys))
	for _, outcome := range keys {
		data = append(data, []string{
			strconv.Itoa(outcome),
			strconv.Itoa(observed[outcome]),
			formatCount(expected[outcome]),
			formatCount(float64(observed[outcome]) - expected[outcome]),
		})
	}
	data = append(data, []string{
		"total",
		strconv.Itoa(observed.Total()),
		formatCount(expected.Total()),
		formatCount(float64(observed.Total()) - expected.Total()),
	})
	return NewTable(comparisonHeaders, data)
}

// DrawComparison draws observed against expected counts.
func DrawComparison(w io.Writer, observed frequency.Table, expected theory.Table) {
	DrawTable(w, NewComparison(observed, expected))
}

func formatCount(value float64) string {
	return fmt.Sprintf("%.2f", value)
}

// NewSummary builds table of empirical and closed-form moments.
func NewSummary(summary engine.Summary) *Table {
	return NewTable([]string{"", "empirical", "theoretical"}, [][]string{
		{"mean", formatMoment(summary.EmpiricalMean), formatMoment(summary.TheoreticalMean)},
		{"std dev", formatMoment(summary.EmpiricalStdDev), formatMoment(summary.TheoreticalStdDev)},
		{"draws", strconv.Itoa(summary.Draws), ""},
	})
}

func formatMoment(value float64) string {
	return fmt.Sprintf("%.4f", value)
}
