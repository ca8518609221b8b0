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
)

// ExperimentMetadata describes a single experiment run printed above its results.
type ExperimentMetadata struct {
	experimentID string
	variant      string
	mode         string
}

// NewExperimentMetadata is the ExperimentMetadata constructor.
func NewExperimentMetadata(ID, variant, mode string) *ExperimentMetadata {
	return &ExperimentMetadata{
		experimentID: ID,
		variant:      variant,
		mode:         mode,
	}
}

// String returns a printable string with all experiment metadata.
func (metadata *ExperimentMetadata) String() string {
	return fmt.Sprintf("Experiment id: %s (%s, %s)", metadata.experimentID, metadata.variant, metadata.mode)
}

// PrintExperimentMetadata prints metadata line followed by an empty line.
func PrintExperimentMetadata(w io.Writer, experimentMetadata *ExperimentMetadata) {
	fmt.Fprintf(w, "\n%s\n", experimentMetadata)
}
