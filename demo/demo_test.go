package demo

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestEncodeDecode(t *testing.T) {
	Convey("Fixed-width record codec", t, func() {
		Convey("Round-trips values that fit the width", func() {
			for _, v := range []uint64{0, 1, 500, 1000, 1<<32 - 1} {
				So(decode(encode(v, 4)), ShouldEqual, v)
			}
		})

		Convey("Truncates values wider than the record", func() {
			So(decode(encode(1<<40|7, 4)), ShouldEqual, 7)
		})
	})
}

func TestBuildReport(t *testing.T) {
	Convey("The scripted scenario", t, func() {
		report, err := BuildReport(4)
		So(err, ShouldBeNil)
		So(report.Width, ShouldEqual, 4)

		Convey("Traces the canonical lifecycle", func() {
			ops := make([]string, 0, len(report.Steps))
			for _, step := range report.Steps {
				ops = append(ops, step.Op)
			}
			So(ops, ShouldResemble, []string{
				"initialise", "push 500", "push 1000", "pop", "pop",
				"emplace 500", "pop", "destroy",
			})
		})

		Convey("Observes LIFO order through the tops", func() {
			So(report.Steps[0].Top, ShouldBeNil)
			So(*report.Steps[1].Top, ShouldEqual, 500)
			So(*report.Steps[2].Top, ShouldEqual, 1000)
			So(*report.Steps[3].Top, ShouldEqual, 500)
			So(report.Steps[4].Top, ShouldBeNil)
			So(*report.Steps[5].Top, ShouldEqual, 500)
			So(report.Steps[6].Top, ShouldBeNil)
		})

		Convey("Sizes track every mutation", func() {
			sizes := make([]int, 0, len(report.Steps))
			for _, step := range report.Steps {
				sizes = append(sizes, step.Size)
			}
			So(sizes, ShouldResemble, []int{0, 1, 2, 1, 0, 1, 0, 0})
		})

		Convey("Leaks nothing", func() {
			So(report.Slots.Allocated, ShouldEqual, 3)
			So(report.Slots.Freed, ShouldEqual, 3)
			So(report.Slots.Live, ShouldEqual, 0)
		})
	})

	Convey("A nonsensical width is rejected", t, func() {
		_, err := BuildReport(-1)
		So(err, ShouldNotBeNil)
	})
}
