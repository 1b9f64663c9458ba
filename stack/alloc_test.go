package stack

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestHeapAllocator(t *testing.T) {
	Convey("HeapAllocator", t, func() {
		var heap HeapAllocator

		Convey("Returns zeroed slots of the requested size", func() {
			buf, err := heap.Alloc(8)
			So(err, ShouldBeNil)
			So(buf, ShouldHaveLength, 8)
			for _, b := range buf {
				So(b, ShouldEqual, 0)
			}
		})
	})
}

func TestBoundedAllocator(t *testing.T) {
	Convey("BoundedAllocator", t, func() {
		b := NewBounded(8)

		Convey("Serves allocations within the budget", func() {
			buf, err := b.Alloc(4)
			So(err, ShouldBeNil)
			So(buf, ShouldHaveLength, 4)
			So(b.Used(), ShouldEqual, 4)
			So(b.Budget(), ShouldEqual, 8)
		})

		Convey("Fails once the budget is exhausted", func() {
			first, err := b.Alloc(8)
			So(err, ShouldBeNil)

			_, err = b.Alloc(1)
			So(err, ShouldWrap, ErrAllocFailed)
			So(b.Used(), ShouldEqual, 8)

			Convey("Freeing returns budget", func() {
				b.Free(first)
				So(b.Used(), ShouldEqual, 0)

				_, err := b.Alloc(8)
				So(err, ShouldBeNil)
			})
		})
	})
}

func TestCountingAllocator(t *testing.T) {
	Convey("CountingAllocator", t, func() {
		Convey("Counts successful allocations and frees", func() {
			c := NewCounting(nil)

			buf, err := c.Alloc(4)
			So(err, ShouldBeNil)
			So(c.Allocs(), ShouldEqual, 1)
			So(c.Live(), ShouldEqual, 1)

			c.Free(buf)
			So(c.Frees(), ShouldEqual, 1)
			So(c.Live(), ShouldEqual, 0)
		})

		Convey("Does not count failed allocations", func() {
			c := NewCounting(NewBounded(0))

			_, err := c.Alloc(4)
			So(err, ShouldWrap, ErrAllocFailed)
			So(c.Allocs(), ShouldEqual, 0)
			So(c.Live(), ShouldEqual, 0)
		})
	})
}
