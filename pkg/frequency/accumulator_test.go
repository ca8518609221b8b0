package frequency

import (
	"testing"

	"github.com/pkg/errors"
	. "github.com/smartystreets/goconvey/convey"
)

func TestAccumulator(t *testing.T) {
	Convey("When using an accumulator with open key domain", t, func() {
		acc := NewAccumulator()
		acc.Reset(nil)

		Convey("Reset without observations yields empty table", func() {
			So(acc.Snapshot(), ShouldBeEmpty)
			So(acc.Observations(), ShouldEqual, 0)
		})

		Convey("Observing creates keys with count 1 and increments them", func() {
			So(acc.Observe(3), ShouldBeNil)
			So(acc.Observe(3), ShouldBeNil)
			So(acc.Observe(17), ShouldBeNil)
			So(acc.Snapshot(), ShouldResemble, Table{3: 2, 17: 1})
			So(acc.Observations(), ShouldEqual, 3)
		})

		Convey("Snapshot is not changed by later observations", func() {
			So(acc.Observe(1), ShouldBeNil)
			snapshot := acc.Snapshot()
			So(acc.Observe(1), ShouldBeNil)
			So(snapshot, ShouldResemble, Table{1: 1})
			So(acc.Snapshot(), ShouldResemble, Table{1: 2})
		})

		Convey("Reset discards previous counts", func() {
			So(acc.Observe(5), ShouldBeNil)
			acc.Reset(nil)
			So(acc.Snapshot(), ShouldBeEmpty)
		})
	})

	Convey("When using an accumulator with closed key domain", t, func() {
		acc := NewAccumulator()
		acc.Reset(Domain(0, 4))

		Convey("Reset without observations yields all keys with zero", func() {
			So(acc.Snapshot(), ShouldResemble, Table{0: 0, 1: 0, 2: 0, 3: 0, 4: 0})
		})

		Convey("Observing known keys increments them", func() {
			So(acc.Observe(0), ShouldBeNil)
			So(acc.Observe(4), ShouldBeNil)
			So(acc.Observe(4), ShouldBeNil)
			So(acc.Snapshot(), ShouldResemble, Table{0: 1, 1: 0, 2: 0, 3: 0, 4: 2})
		})

		Convey("Observing unknown key fails and does not modify counts", func() {
			err := acc.Observe(5)
			So(errors.Cause(err), ShouldEqual, ErrUnexpectedOutcome)
			err = acc.Observe(-1)
			So(errors.Cause(err), ShouldEqual, ErrUnexpectedOutcome)
			So(acc.Snapshot().Total(), ShouldEqual, 0)
			So(acc.Observations(), ShouldEqual, 0)
		})

		Convey("Reset with nil domain opens the accumulator again", func() {
			acc.Reset(nil)
			So(acc.Observe(42), ShouldBeNil)
			So(acc.Snapshot(), ShouldResemble, Table{42: 1})
		})
	})
}

func TestTable(t *testing.T) {
	Convey("Table helpers", t, func() {
		table := Table{5: 1, 1: 3, 3: 0}
		So(table.Keys(), ShouldResemble, []int{1, 3, 5})
		So(table.Total(), ShouldEqual, 4)

		clone := table.Clone()
		clone[1] = 100
		So(table[1], ShouldEqual, 3)
	})

	Convey("Domain builds consecutive keys", t, func() {
		So(Domain(0, 3), ShouldResemble, []int{0, 1, 2, 3})
		So(Domain(2, 1), ShouldBeEmpty)
	})
}
