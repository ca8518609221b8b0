package trial

import (
	"math"
	"testing"

	"github.com/intelsdi-x/trials/pkg/trial/mocks"
	"github.com/pkg/errors"
	. "github.com/smartystreets/goconvey/convey"
)

func TestDrawBatch(t *testing.T) {
	Convey("While drawing a batch of trials", t, func() {
		Convey("With mocked random source the success is decided by comparison with probability", func() {
			src := new(mocks.RandomSource)
			src.ReturnSequence(0.1, 0.5, 0.49, 0.99)

			batch, err := DrawBatch(src, 0.5, 4)
			So(err, ShouldBeNil)
			So(batch, ShouldResemble, []bool{true, false, true, false})
			src.AssertExpectations(t)
		})

		Convey("Batch length equals requested count", func() {
			batch, err := DrawBatch(NewSource(1), 0.3, 17)
			So(err, ShouldBeNil)
			So(len(batch), ShouldEqual, 17)
		})

		Convey("Invalid probability is rejected", func() {
			for _, p := range []float64{0, 1, -0.2, 1.5, math.NaN()} {
				_, err := DrawBatch(NewSource(1), p, 3)
				So(errors.Cause(err), ShouldEqual, ErrInvalidParameter)
			}
		})

		Convey("Non-positive count is rejected", func() {
			_, err := DrawBatch(NewSource(1), 0.5, 0)
			So(errors.Cause(err), ShouldEqual, ErrInvalidParameter)
			_, err = DrawBatch(NewSource(1), 0.5, -4)
			So(errors.Cause(err), ShouldEqual, ErrInvalidParameter)
		})

		Convey("Random source is not consumed on invalid input", func() {
			src := new(mocks.RandomSource)
			_, err := DrawBatch(src, 2, 3)
			So(err, ShouldNotBeNil)
			src.AssertNotCalled(t, "Float64")
		})
	})
}

func TestNewSource(t *testing.T) {
	Convey("Sources with the same seed produce the same sequence", t, func() {
		a, b := NewSource(42), NewSource(42)
		for i := 0; i < 100; i++ {
			So(a.Float64(), ShouldEqual, b.Float64())
		}
	})

	Convey("Draws are within [0,1)", t, func() {
		src := NewTimeSeededSource()
		for i := 0; i < 1000; i++ {
			v := src.Float64()
			So(v, ShouldBeGreaterThanOrEqualTo, 0)
			So(v, ShouldBeLessThan, 1)
		}
	})

	Convey("Empirical success rate is close to probability", t, func() {
		const count = 200000
		batch, err := DrawBatch(NewSource(7), 0.3, count)
		So(err, ShouldBeNil)
		successes := 0
		for _, ok := range batch {
			if ok {
				successes++
			}
		}
		// 5 standard deviations of the binomial proportion.
		tolerance := 5 * math.Sqrt(0.3*0.7/count)
		So(float64(successes)/count, ShouldAlmostEqual, 0.3, tolerance)
	})
}
