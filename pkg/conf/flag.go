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

package conf

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/alecthomas/kingpin.v2"
)

// flagType is an internal interface for all flags.
// Every flag knows its environment variable, can clear it and can render its current value.
type flagType interface {
	envName() string
	clear()
	valueString() string
}

// definedFlags stores all the defined flags. It helps to find duplicates when defining flag with the same name.
var definedFlags = map[string]flagType{}

// envName converts flag name to environment variable name.
// For instance: "trial_budget" will be "TRIALS_TRIAL_BUDGET".
func envName(flagName string) string {
	return fmt.Sprintf("%s_%s", EnvironmentPrefix, strings.ToUpper(flagName))
}

// cliAndEnvFlag represents option's definition from CLI and Environment variable.
type cliAndEnvFlag struct {
	*kingpin.FlagClause
	name string
}

func newCliAndEnvFlag(flagName string, description string, defaultValue string) *cliAndEnvFlag {
	if definedFlags[flagName] != nil {
		panic(fmt.Sprintf("flag %q was already defined", flagName))
	}

	c := &cliAndEnvFlag{FlagClause: app.Flag(flagName, description), name: flagName}
	c.OverrideDefaultFromEnvar(c.envName())
	if defaultValue != "" {
		c.Default(defaultValue)
	}
	return c
}

func (f *cliAndEnvFlag) envName() string {
	return envName(f.name)
}

// clear unsets the corresponding environment variable.
func (f *cliAndEnvFlag) clear() {
	os.Unsetenv(f.envName())
}

// register stores the flag, so it can be found by name, and marks configuration as not parsed.
func register(name string, flag flagType) {
	definedFlags[name] = flag
	isEnvParsed = false
}

// lookup returns previously defined flag. It panics when flag exists with different type or default.
func lookup[T flagType](name string, sameDefault func(T) bool) (T, bool) {
	var zero T
	duplicated := definedFlags[name]
	if duplicated == nil {
		return zero, false
	}
	flagDef, ok := duplicated.(T)
	if !ok {
		panic(fmt.Sprintf("flag %q was redefined with different type", name))
	}
	if !sameDefault(flagDef) {
		panic(fmt.Sprintf("flag %q was redefined with different default value", name))
	}
	return flagDef, true
}

// StringFlag represents flag with string value.
type StringFlag struct {
	*cliAndEnvFlag
	defaultValue string
	value        *string
}

// NewStringFlag is a constructor of StringFlag struct.
func NewStringFlag(flagName string, description string, defaultValue string) *StringFlag {
	if flagDef, ok := lookup(flagName, func(f *StringFlag) bool { return f.defaultValue == defaultValue }); ok {
		return flagDef
	}

	flagDef := &StringFlag{
		cliAndEnvFlag: newCliAndEnvFlag(flagName, description, defaultValue),
		defaultValue:  defaultValue,
	}
	flagDef.value = flagDef.String()
	register(flagName, flagDef)
	return flagDef
}

// Value returns value of defined flag after parse.
// NOTE: If conf is not parsed it returns default value (!)
func (s StringFlag) Value() string {
	if !isEnvParsed {
		return s.defaultValue
	}
	return *s.value
}

func (s StringFlag) valueString() string {
	return s.Value()
}

// EnumFlag represents flag with string value restricted to given options.
type EnumFlag struct {
	*StringFlag
	options []string
}

// NewEnumFlag is a constructor of EnumFlag struct. Default value has to be one of options.
func NewEnumFlag(flagName string, description string, defaultValue string, options ...string) *EnumFlag {
	if flagDef, ok := lookup(flagName, func(f *EnumFlag) bool { return f.defaultValue == defaultValue }); ok {
		return flagDef
	}

	flagDef := &EnumFlag{
		StringFlag: &StringFlag{
			cliAndEnvFlag: newCliAndEnvFlag(flagName, fmt.Sprintf("%s (%s)", description, strings.Join(options, ", ")), defaultValue),
			defaultValue:  defaultValue,
		},
		options: options,
	}
	flagDef.value = flagDef.Enum(options...)
	register(flagName, flagDef)
	return flagDef
}

// IntFlag represents flag with int value.
type IntFlag struct {
	*cliAndEnvFlag
	defaultValue int
	value        *int
}

// NewIntFlag is a constructor of IntFlag struct.
func NewIntFlag(flagName string, description string, defaultValue int) *IntFlag {
	if flagDef, ok := lookup(flagName, func(f *IntFlag) bool { return f.defaultValue == defaultValue }); ok {
		return flagDef
	}

	flagDef := &IntFlag{
		cliAndEnvFlag: newCliAndEnvFlag(flagName, description, strconv.Itoa(defaultValue)),
		defaultValue:  defaultValue,
	}
	flagDef.value = flagDef.Int()
	register(flagName, flagDef)
	return flagDef
}

// Value returns value of defined flag after parse.
// NOTE: If conf is not parsed it returns default value (!)
func (i IntFlag) Value() int {
	if !isEnvParsed {
		return i.defaultValue
	}
	return *i.value
}

func (i IntFlag) valueString() string {
	return strconv.Itoa(i.Value())
}

// FloatFlag represents flag with float64 value.
type FloatFlag struct {
	*cliAndEnvFlag
	defaultValue float64
	value        *float64
}

// NewFloatFlag is a constructor of FloatFlag struct.
func NewFloatFlag(flagName string, description string, defaultValue float64) *FloatFlag {
	if flagDef, ok := lookup(flagName, func(f *FloatFlag) bool { return f.defaultValue == defaultValue }); ok {
		return flagDef
	}

	flagDef := &FloatFlag{
		cliAndEnvFlag: newCliAndEnvFlag(flagName, description, strconv.FormatFloat(defaultValue, 'g', -1, 64)),
		defaultValue:  defaultValue,
	}
	flagDef.value = flagDef.Float64()
	register(flagName, flagDef)
	return flagDef
}

// Value returns value of defined flag after parse.
// NOTE: If conf is not parsed it returns default value (!)
func (f FloatFlag) Value() float64 {
	if !isEnvParsed {
		return f.defaultValue
	}
	return *f.value
}

func (f FloatFlag) valueString() string {
	return strconv.FormatFloat(f.Value(), 'g', -1, 64)
}

// BoolFlag represents flag with bool value.
type BoolFlag struct {
	*cliAndEnvFlag
	defaultValue bool
	value        *bool
}

// NewBoolFlag is a constructor of BoolFlag struct.
func NewBoolFlag(flagName string, description string, defaultValue bool) *BoolFlag {
	if flagDef, ok := lookup(flagName, func(f *BoolFlag) bool { return f.defaultValue == defaultValue }); ok {
		return flagDef
	}

	flagDef := &BoolFlag{
		cliAndEnvFlag: newCliAndEnvFlag(flagName, description, strconv.FormatBool(defaultValue)),
		defaultValue:  defaultValue,
	}
	flagDef.value = flagDef.Bool()
	register(flagName, flagDef)
	return flagDef
}

// Value returns value of defined flag after parse.
// NOTE: If conf is not parsed it returns default value (!)
func (b BoolFlag) Value() bool {
	if !isEnvParsed {
		return b.defaultValue
	}
	return *b.value
}

func (b BoolFlag) valueString() string {
	return strconv.FormatBool(b.Value())
}

// DurationFlag represents flag with duration value.
type DurationFlag struct {
	*cliAndEnvFlag
	defaultValue time.Duration
	value        *time.Duration
}

// NewDurationFlag is a constructor of DurationFlag struct.
func NewDurationFlag(flagName string, description string, defaultValue time.Duration) *DurationFlag {
	if flagDef, ok := lookup(flagName, func(f *DurationFlag) bool { return f.defaultValue == defaultValue }); ok {
		return flagDef
	}

	flagDef := &DurationFlag{
		cliAndEnvFlag: newCliAndEnvFlag(flagName, description, defaultValue.String()),
		defaultValue:  defaultValue,
	}
	flagDef.value = flagDef.Duration()
	register(flagName, flagDef)
	return flagDef
}

// Value returns value of defined flag after parse.
// NOTE: If conf is not parsed it returns default value (!)
func (d DurationFlag) Value() time.Duration {
	if !isEnvParsed {
		return d.defaultValue
	}
	return *d.value
}

func (d DurationFlag) valueString() string {
	return d.Value().String()
}
