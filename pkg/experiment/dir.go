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
	"os"
	"path"
	"path/filepath"

	"github.com/pkg/errors"
)

// CreateExperimentDir creates directory named after application and experiment ID in OutputDirFlag
// and returns it with opened log file inside.
func CreateExperimentDir(uuid, appName string) (experimentDirectory string, logFile *os.File, err error) {
	experimentDirectory = filepath.Join(OutputDirFlag.Value(), path.Base(appName), uuid)
	err = os.MkdirAll(experimentDirectory, 0777)
	if err != nil {
		return "", nil, errors.Wrapf(err, "cannot create experiment directory %q", experimentDirectory)
	}

	logFile, err = os.Create(filepath.Join(experimentDirectory, "master.log"))
	if err != nil {
		return "", nil, errors.Wrap(err, "cannot create experiment log file")
	}
	return experimentDirectory, logFile, nil
}
