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

// Package experiment provides the configuration and working directory of experiment binaries.
package experiment

import (
	"fmt"
	"os"

	"github.com/intelsdi-x/trials/pkg/conf"
	"github.com/sirupsen/logrus"
)

// Exit codes of experiment binaries (see sysexits.h).
const (
	// ExUsage means binary was started with wrong flags.
	ExUsage = 64
	// ExSoftware means experiment failed.
	ExSoftware = 70
)

var (
	// DumpConfigFlag name includes dash to excluded it from dumping.
	dumpConfigFlag = conf.NewBoolFlag("config-dump", "Dump configuration as environment script.", false)
)

// Configure parses flags, sets log level and dumps configuration when requested.
// Note: exits if configuration dump was requested or flags are invalid.
func Configure() {
	err := conf.ParseFlags()
	if err != nil {
		logrus.Errorf("Cannot parse flags: %q", err.Error())
		os.Exit(ExUsage)
	}
	logrus.SetLevel(conf.LogLevel())

	if dumpConfigFlag.Value() {
		fmt.Println(conf.DumpConfig())
		os.Exit(0)
	}
}
