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

package errutil

import (
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// Check the supplied error, log and exit if non-nil.
func Check(err error) {
	CheckWithContext(err, "")
}

// CheckWithContext checks the error and exit if it is not nil. Logs additional context information.
// Stack trace (when the error carries one) is logged on debug level only.
func CheckWithContext(err error, context string) {
	if err == nil {
		return
	}
	if context != "" {
		err = errors.WithMessage(err, context)
	}
	logrus.Debugf("%+v", err)
	logrus.Fatalf("%v", err)
}
