// Package stack implements heap-backed, singly-linked LIFO containers.
package stack

import (
	"errors"
	"fmt"
)

// Contract violations reported by Raw operations.
var (
	ErrNilStack          = errors.New("nil stack")
	ErrNilData           = errors.New("nil data buffer")
	ErrInvalidWidth      = errors.New("element width must be positive")
	ErrWidthMismatch     = errors.New("element width mismatch")
	ErrAllocatorMismatch = errors.New("stacks use different allocators")
)

// rawNode is one link of a Raw chain. It exclusively owns its data slot for
// its entire lifetime and exclusively owns its successor.
type rawNode struct {
	data []byte
	next *rawNode
}

// Raw is a LIFO container over opaque fixed-width byte records.
//
// Every element in a given instance is exactly Width bytes. Element slots are
// obtained from and returned to the instance's Allocator; the stack owns each
// slot from the moment its node is linked until the node is removed. Push
// copies caller bytes into a stack-owned slot, Emplace adopts the caller's
// buffer with no copy.
//
// A Raw is single-owner and performs no internal synchronization.
type Raw struct {
	size     int
	dataSize int
	head     *rawNode
	alloc    Allocator
}

// RawOption configures a Raw during construction.
type RawOption func(*Raw)

// WithAllocator sets the slot allocator. Buffers handed to Emplace are
// expected to originate from the same allocator, since Pop and Destroy
// release every slot through it.
func WithAllocator(a Allocator) RawOption {
	return func(r *Raw) {
		if a != nil {
			r.alloc = a
		}
	}
}

// NewRaw returns an empty stack whose elements are exactly dataSize bytes.
// The width is fixed for the instance's lifetime.
func NewRaw(dataSize int, opts ...RawOption) (*Raw, error) {
	if dataSize <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidWidth, dataSize)
	}

	r := &Raw{dataSize: dataSize, alloc: HeapAllocator{}}
	for _, opt := range opts {
		opt(r)
	}
	return r, nil
}

// IsEmpty reports whether the stack holds no elements.
// A nil stack is reported as empty rather than an error; callers must not
// rely on this to detect misuse.
func (r *Raw) IsEmpty() bool {
	return r == nil || r.head == nil
}

// Len returns the number of elements. It is 0 for a nil stack.
func (r *Raw) Len() int {
	if r.IsEmpty() {
		return 0
	}
	return r.size
}

// Width returns the fixed element byte width.
func (r *Raw) Width() int {
	if r == nil {
		return 0
	}
	return r.dataSize
}

// Push copies data into a freshly allocated stack-owned slot and links it as
// the new top. The caller retains ownership of data.
//
// The stack is left completely unchanged when data is nil, when its length
// differs from the stack width, or when the slot allocation fails.
func (r *Raw) Push(data []byte) error {
	if r == nil {
		return ErrNilStack
	}
	if data == nil {
		return ErrNilData
	}
	if len(data) != r.dataSize {
		return fmt.Errorf("%w: got %d bytes, want %d", ErrWidthMismatch, len(data), r.dataSize)
	}

	slot, err := r.alloc.Alloc(r.dataSize)
	if err != nil {
		return fmt.Errorf("allocate element slot: %w", err)
	}
	copy(slot, data)

	// The node is linked only after its slot is fully populated, so no
	// partially initialised node is ever reachable from the head.
	r.head = &rawNode{data: slot, next: r.head}
	r.size++
	return nil
}

// Emplace links the caller's buffer directly as the new top element with no
// copy, transferring ownership to the stack. After a successful Emplace the
// caller must not retain, mutate, or free data: the next Pop or Destroy
// releases it through the stack's allocator, so the buffer should originate
// from that allocator.
//
// The buffer is expected to be exactly Width bytes. Unlike Push this is not
// checked: only the reference is recorded, and a foreign buffer's length is
// the caller's contract to uphold. On failure the buffer remains untouched
// and owned by the caller.
func (r *Raw) Emplace(data []byte) error {
	if r == nil {
		return ErrNilStack
	}
	if data == nil {
		return ErrNilData
	}

	r.head = &rawNode{data: data, next: r.head}
	r.size++
	return nil
}

// Pop removes the top element, releasing its slot through the allocator.
// It reports false and leaves the stack unchanged when the stack is empty.
// Any view previously returned by Peek for that element is invalid afterwards.
func (r *Raw) Pop() bool {
	if r.IsEmpty() {
		return false
	}

	top := r.head
	r.head = top.next
	top.next = nil
	r.alloc.Free(top.data)
	top.data = nil
	r.size--
	return true
}

// Peek returns a borrowed view of the top element's slot without copying or
// transferring ownership. The view is valid only until the next mutating call
// on the stack. The second return is false when the stack is empty.
func (r *Raw) Peek() ([]byte, bool) {
	if r.IsEmpty() {
		return nil, false
	}
	return r.head.data, true
}

// Destroy releases every element slot and unlinks every node, leaving an
// empty, still usable stack. The Raw value itself stays with the caller; only
// the chain is torn down.
func (r *Raw) Destroy() {
	if r == nil {
		return
	}
	for r.Pop() {
	}
}

// Swap exchanges the chains and sizes of two stacks.
//
// Both stacks must share the same element width and the same allocator, so
// that every slot is still released through the allocator that produced it.
func (r *Raw) Swap(other *Raw) error {
	if r == nil || other == nil {
		return ErrNilStack
	}
	if r.dataSize != other.dataSize {
		return fmt.Errorf("%w: %d vs %d", ErrWidthMismatch, r.dataSize, other.dataSize)
	}
	if r.alloc != other.alloc {
		return ErrAllocatorMismatch
	}

	r.head, other.head = other.head, r.head
	r.size, other.size = other.size, r.size
	return nil
}
