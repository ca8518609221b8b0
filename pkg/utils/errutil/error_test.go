package errutil

import (
	"bytes"
	"testing"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	. "github.com/smartystreets/goconvey/convey"
)

func TestCheck(t *testing.T) {
	Convey("While checking errors", t, func() {
		logger := logrus.StandardLogger()
		previousExit, previousOut := logger.ExitFunc, logger.Out
		defer func() {
			logger.ExitFunc = previousExit
			logger.SetOutput(previousOut)
		}()

		exitCode := -1
		logger.ExitFunc = func(code int) { exitCode = code }
		output := &bytes.Buffer{}
		logger.SetOutput(output)

		Convey("Nil error does not exit", func() {
			Check(nil)
			CheckWithContext(nil, "context")
			So(exitCode, ShouldEqual, -1)
			So(output.String(), ShouldBeEmpty)
		})

		Convey("Error exits with context in the message", func() {
			CheckWithContext(errors.New("boom"), "Cannot configure engine")
			So(exitCode, ShouldEqual, 1)
			So(output.String(), ShouldContainSubstring, "Cannot configure engine: boom")
		})

		Convey("Error without context exits with plain message", func() {
			Check(errors.New("boom"))
			So(exitCode, ShouldEqual, 1)
			So(output.String(), ShouldContainSubstring, "boom")
		})
	})
}
