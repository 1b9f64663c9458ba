package stack

import (
	"encoding/binary"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

// u32 encodes v as a 4-byte little-endian record.
func u32(v uint32) []byte {
	buf := make([]byte, 4)
	binary.LittleEndian.PutUint32(buf, v)
	return buf
}

func TestNewRaw(t *testing.T) {
	Convey("NewRaw", t, func() {
		Convey("Fixes the element width for the instance", func() {
			r, err := NewRaw(4)
			So(err, ShouldBeNil)
			So(r.Width(), ShouldEqual, 4)
			So(r.Len(), ShouldEqual, 0)
			So(r.IsEmpty(), ShouldBeTrue)
		})

		Convey("Rejects non-positive widths", func() {
			for _, width := range []int{0, -1} {
				r, err := NewRaw(width)
				So(err, ShouldWrap, ErrInvalidWidth)
				So(r, ShouldBeNil)
			}
		})
	})
}

func TestRawPush(t *testing.T) {
	Convey("Push", t, func() {
		r, err := NewRaw(4)
		So(err, ShouldBeNil)

		Convey("Copies the caller's bytes, not the reference", func() {
			buf := u32(500)
			So(r.Push(buf), ShouldBeNil)

			// Mutating the original buffer must not be observable through
			// the stack: the element was copied at call time.
			binary.LittleEndian.PutUint32(buf, 9999)

			top, ok := r.Peek()
			So(ok, ShouldBeTrue)
			So(binary.LittleEndian.Uint32(top), ShouldEqual, 500)
		})

		Convey("Rejects a nil buffer without mutating the stack", func() {
			So(r.Push(nil), ShouldEqual, ErrNilData)
			So(r.Len(), ShouldEqual, 0)
		})

		Convey("Rejects a buffer of the wrong width", func() {
			So(r.Push([]byte{1, 2}), ShouldWrap, ErrWidthMismatch)
			So(r.Len(), ShouldEqual, 0)
		})
	})
}

func TestRawEmplace(t *testing.T) {
	Convey("Emplace", t, func() {
		r, err := NewRaw(4)
		So(err, ShouldBeNil)

		Convey("Adopts the caller's buffer with no copy", func() {
			buf := u32(500)
			So(r.Emplace(buf), ShouldBeNil)
			So(r.Len(), ShouldEqual, 1)

			top, ok := r.Peek()
			So(ok, ShouldBeTrue)
			So(&top[0] == &buf[0], ShouldBeTrue)
		})

		Convey("Rejects a nil buffer and leaves size unchanged", func() {
			So(r.Emplace(nil), ShouldEqual, ErrNilData)
			So(r.Len(), ShouldEqual, 0)
		})
	})
}

func TestRawPopPeekEmpty(t *testing.T) {
	Convey("On a freshly initialised stack", t, func() {
		r, err := NewRaw(4)
		So(err, ShouldBeNil)

		Convey("Pop reports failure and does not alter size", func() {
			So(r.Pop(), ShouldBeFalse)
			So(r.Len(), ShouldEqual, 0)
		})

		Convey("Peek reports none and does not alter size", func() {
			top, ok := r.Peek()
			So(ok, ShouldBeFalse)
			So(top, ShouldBeNil)
			So(r.Len(), ShouldEqual, 0)
		})
	})
}

func TestRawAllocationAccounting(t *testing.T) {
	Convey("With a counting allocator", t, func() {
		counter := NewCounting(nil)
		r, err := NewRaw(4, WithAllocator(counter))
		So(err, ShouldBeNil)

		Convey("Push then pop then push leaks nothing", func() {
			So(r.Push(u32(1)), ShouldBeNil)
			So(r.Pop(), ShouldBeTrue)
			So(r.Push(u32(2)), ShouldBeNil)

			top, ok := r.Peek()
			So(ok, ShouldBeTrue)
			So(binary.LittleEndian.Uint32(top), ShouldEqual, 2)
			So(counter.Allocs(), ShouldEqual, 2)
			So(counter.Frees(), ShouldEqual, 1)
			So(counter.Live(), ShouldEqual, 1)
		})

		Convey("Destroy frees exactly one slot per element and keeps the header usable", func() {
			const n = 7
			for i := uint32(0); i < n; i++ {
				So(r.Push(u32(i)), ShouldBeNil)
			}
			So(r.Len(), ShouldEqual, n)

			r.Destroy()
			So(r.Len(), ShouldEqual, 0)
			So(r.IsEmpty(), ShouldBeTrue)
			So(counter.Allocs(), ShouldEqual, n)
			So(counter.Frees(), ShouldEqual, n)
			So(counter.Live(), ShouldEqual, 0)

			// The header is caller-owned and stays valid after Destroy.
			So(r.Push(u32(42)), ShouldBeNil)
			So(r.Len(), ShouldEqual, 1)
		})
	})
}

func TestRawAllocationFailure(t *testing.T) {
	Convey("With a budget of exactly one element", t, func() {
		bounded := NewBounded(4)
		r, err := NewRaw(4, WithAllocator(bounded))
		So(err, ShouldBeNil)
		So(r.Push(u32(1)), ShouldBeNil)

		Convey("A failing push leaves the stack completely unchanged", func() {
			err := r.Push(u32(2))
			So(err, ShouldWrap, ErrAllocFailed)
			So(r.Len(), ShouldEqual, 1)

			top, ok := r.Peek()
			So(ok, ShouldBeTrue)
			So(binary.LittleEndian.Uint32(top), ShouldEqual, 1)
		})

		Convey("Popping returns budget and the next push succeeds", func() {
			So(r.Pop(), ShouldBeTrue)
			So(bounded.Used(), ShouldEqual, 0)
			So(r.Push(u32(3)), ShouldBeNil)
		})
	})
}

func TestRawSwap(t *testing.T) {
	Convey("Swap", t, func() {
		Convey("Exchanges chains and sizes of same-width stacks", func() {
			a, err := NewRaw(4)
			So(err, ShouldBeNil)
			So(a.Push(u32(1)), ShouldBeNil)
			So(a.Push(u32(2)), ShouldBeNil)

			b, err := NewRaw(4)
			So(err, ShouldBeNil)
			So(b.Push(u32(9)), ShouldBeNil)

			So(a.Swap(b), ShouldBeNil)
			So(a.Len(), ShouldEqual, 1)
			So(b.Len(), ShouldEqual, 2)

			top, _ := a.Peek()
			So(binary.LittleEndian.Uint32(top), ShouldEqual, 9)
			top, _ = b.Peek()
			So(binary.LittleEndian.Uint32(top), ShouldEqual, 2)
		})

		Convey("Rejects stacks of different widths", func() {
			a, _ := NewRaw(4)
			b, _ := NewRaw(8)
			So(a.Swap(b), ShouldWrap, ErrWidthMismatch)
		})

		Convey("Rejects stacks with different allocators", func() {
			a, _ := NewRaw(4, WithAllocator(NewCounting(nil)))
			b, _ := NewRaw(4, WithAllocator(NewCounting(nil)))
			So(a.Swap(b), ShouldEqual, ErrAllocatorMismatch)
		})

		Convey("Rejects a nil stack", func() {
			a, _ := NewRaw(4)
			So(a.Swap(nil), ShouldEqual, ErrNilStack)
		})
	})
}

func TestRawNilReceiver(t *testing.T) {
	Convey("A nil Raw is empty, not an error", t, func() {
		var r *Raw
		So(r.IsEmpty(), ShouldBeTrue)
		So(r.Len(), ShouldEqual, 0)
		So(r.Width(), ShouldEqual, 0)
		So(r.Pop(), ShouldBeFalse)
		So(r.Push(u32(1)), ShouldEqual, ErrNilStack)
		So(r.Emplace(u32(1)), ShouldEqual, ErrNilStack)
	})
}

func TestRawEndToEnd(t *testing.T) {
	Convey("The whole lifecycle with 4-byte integer records", t, func() {
		counter := NewCounting(nil)
		r, err := NewRaw(4, WithAllocator(counter))
		So(err, ShouldBeNil)

		peek := func() uint32 {
			top, ok := r.Peek()
			So(ok, ShouldBeTrue)
			return binary.LittleEndian.Uint32(top)
		}

		So(r.Push(u32(500)), ShouldBeNil)
		So(r.Push(u32(1000)), ShouldBeNil)
		So(r.Len(), ShouldEqual, 2)
		So(peek(), ShouldEqual, 1000)

		So(r.Pop(), ShouldBeTrue)
		So(r.Len(), ShouldEqual, 1)
		So(peek(), ShouldEqual, 500)

		So(r.Pop(), ShouldBeTrue)
		So(r.Len(), ShouldEqual, 0)
		So(r.IsEmpty(), ShouldBeTrue)

		// Heap-owned record handed over wholesale.
		owned, err := counter.Alloc(4)
		So(err, ShouldBeNil)
		binary.LittleEndian.PutUint32(owned, 500)
		So(r.Emplace(owned), ShouldBeNil)
		So(r.Len(), ShouldEqual, 1)
		So(peek(), ShouldEqual, 500)

		So(r.Pop(), ShouldBeTrue)
		So(r.Len(), ShouldEqual, 0)
		So(counter.Live(), ShouldEqual, 0)
	})
}
