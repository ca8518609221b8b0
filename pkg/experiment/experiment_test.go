package experiment

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/intelsdi-x/trials/pkg/conf"
	"github.com/intelsdi-x/trials/pkg/engine"
	. "github.com/smartystreets/goconvey/convey"
)

func TestParametersFromFlags(t *testing.T) {
	Convey("While reading parameters from environment", t, func() {
		Convey("Binomial variant takes trials per draw", func() {
			t.Setenv("TRIALS_VARIANT", "binomial")
			t.Setenv("TRIALS_PROBABILITY", "0.25")
			t.Setenv("TRIALS_TRIAL_BUDGET", "40")
			t.Setenv("TRIALS_TRIALS_PER_DRAW", "6")
			So(conf.ParseEnv(), ShouldBeNil)

			params, err := ParametersFromFlags()
			So(err, ShouldBeNil)
			So(params, ShouldResemble, engine.Parameters{
				Variant:            engine.Binomial,
				SuccessProbability: 0.25,
				TrialBudget:        40,
				TrialsPerDraw:      6,
			})
			So(params.Validate(), ShouldBeNil)
		})

		Convey("Geometric variant ignores trials per draw", func() {
			t.Setenv("TRIALS_VARIANT", "geometric")
			t.Setenv("TRIALS_TRIALS_PER_DRAW", "6")
			So(conf.ParseEnv(), ShouldBeNil)

			params, err := ParametersFromFlags()
			So(err, ShouldBeNil)
			So(params.Variant, ShouldEqual, engine.Geometric)
			So(params.TrialsPerDraw, ShouldEqual, 0)
		})

		Convey("Sweep step delay is a duration", func() {
			So(conf.ParseEnv(), ShouldBeNil)
			So(SweepStepDelayFlag.Value(), ShouldEqual, time.Duration(0))

			t.Setenv("TRIALS_SWEEP_STEP_DELAY", "150ms")
			So(conf.ParseEnv(), ShouldBeNil)
			So(SweepStepDelayFlag.Value(), ShouldEqual, 150*time.Millisecond)
		})

		Convey("Unknown mode is rejected by parser", func() {
			t.Setenv("TRIALS_MODE", "animation")
			So(conf.ParseEnv(), ShouldNotBeNil)
		})
	})
}

func TestCreateExperimentDir(t *testing.T) {
	Convey("Experiment directory is created in output directory", t, func() {
		output := t.TempDir()
		t.Setenv("TRIALS_OUTPUT_DIR", output)
		So(conf.ParseEnv(), ShouldBeNil)

		directory, logFile, err := CreateExperimentDir("1234", "/usr/bin/bernoulli")
		So(err, ShouldBeNil)
		defer logFile.Close()

		So(directory, ShouldEqual, filepath.Join(output, "bernoulli", "1234"))
		info, err := os.Stat(filepath.Join(directory, "master.log"))
		So(err, ShouldBeNil)
		So(info.Mode().IsRegular(), ShouldBeTrue)
	})
}
