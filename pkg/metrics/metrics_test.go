package metrics

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	. "github.com/smartystreets/goconvey/convey"
)

func TestPrometheusRecorder(t *testing.T) {
	Convey("When recording engine events with Prometheus", t, func() {
		registry := prometheus.NewRegistry()
		recorder, err := NewPrometheus(registry, Tags{ExperimentID: "abc"})
		So(err, ShouldBeNil)

		recorder.TrialsDrawn("geometric", 3)
		recorder.TrialsDrawn("geometric", 4)
		recorder.OutcomeObserved("geometric")
		recorder.OutcomeObserved("binomial")
		recorder.RunFinished("binomial", "fixed", nil)
		recorder.RunFinished("binomial", "fixed", errors.New("failed"))

		Convey("Counters accumulate per variant", func() {
			So(testutil.ToFloat64(recorder.trials.WithLabelValues("geometric")), ShouldEqual, 7)
			So(testutil.ToFloat64(recorder.outcomes.WithLabelValues("geometric")), ShouldEqual, 1)
			So(testutil.ToFloat64(recorder.outcomes.WithLabelValues("binomial")), ShouldEqual, 1)
			So(testutil.ToFloat64(recorder.runs.WithLabelValues("binomial", "fixed", "true")), ShouldEqual, 1)
			So(testutil.ToFloat64(recorder.runs.WithLabelValues("binomial", "fixed", "false")), ShouldEqual, 1)
		})

		Convey("Registering twice in the same registry fails", func() {
			_, err := NewPrometheus(registry, Tags{ExperimentID: "abc"})
			So(err, ShouldNotBeNil)
		})

		Convey("Metrics can be written to a textfile", func() {
			path := filepath.Join(t.TempDir(), "trials.prom")
			So(WriteTextfile(path, registry), ShouldBeNil)
			content, err := os.ReadFile(path)
			So(err, ShouldBeNil)
			So(string(content), ShouldContainSubstring, `trials_bernoulli_trials_total{experiment_id="abc",variant="geometric"} 7`)
		})
	})

	Convey("Noop recorder accepts events", t, func() {
		recorder := NewNoop()
		So(func() {
			recorder.TrialsDrawn("binomial", 1)
			recorder.OutcomeObserved("binomial")
			recorder.RunFinished("binomial", "sweep", nil)
		}, ShouldNotPanic)
	})
}
