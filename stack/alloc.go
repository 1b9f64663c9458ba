// Package stack implements heap-backed, singly-linked LIFO containers.
package stack

import (
	"errors"
	"fmt"
)

// ErrAllocFailed indicates that an allocator refused to provide an element slot.
var ErrAllocFailed = errors.New("allocation failed")

// Allocator provides element slot storage for Raw stacks.
// Every slot handed out by Alloc is returned to the same allocator through Free
// exactly once, when the owning node is removed or the chain is destroyed.
type Allocator interface {
	// Alloc returns a zeroed slot of the requested byte size.
	Alloc(size int) ([]byte, error)

	// Free releases a slot previously obtained from Alloc.
	Free(buf []byte)
}

// HeapAllocator is the default slot allocator, backed by the Go heap.
// Alloc never fails and Free defers reclamation to the garbage collector.
type HeapAllocator struct{}

// Alloc returns a fresh zeroed slot of the requested size.
func (HeapAllocator) Alloc(size int) ([]byte, error) {
	return make([]byte, size), nil
}

// Free is a no-op; released slots become unreachable and are collected.
func (HeapAllocator) Free([]byte) {}

// BoundedAllocator hands out slots from a fixed byte budget.
// Once the budget is exhausted Alloc fails with ErrAllocFailed until
// previously allocated slots are freed.
type BoundedAllocator struct {
	budget int
	used   int
}

// NewBounded returns an allocator limited to the given total byte budget.
func NewBounded(budget int) *BoundedAllocator {
	return &BoundedAllocator{budget: budget}
}

// Alloc returns a slot of the requested size, or ErrAllocFailed when the
// remaining budget cannot cover it.
func (b *BoundedAllocator) Alloc(size int) ([]byte, error) {
	if b.used+size > b.budget {
		return nil, fmt.Errorf("%w: %d bytes requested, %d of %d in use", ErrAllocFailed, size, b.used, b.budget)
	}
	b.used += size
	return make([]byte, size), nil
}

// Free returns the slot's bytes to the budget.
func (b *BoundedAllocator) Free(buf []byte) {
	b.used -= len(buf)
	if b.used < 0 {
		b.used = 0
	}
}

// Used reports the number of budgeted bytes currently in use.
func (b *BoundedAllocator) Used() int {
	return b.used
}

// Budget reports the total byte budget.
func (b *BoundedAllocator) Budget() int {
	return b.budget
}

// CountingAllocator wraps another allocator and tracks slot accounting.
// It backs the allocation reporting of the demo and the leak assertions in tests.
type CountingAllocator struct {
	inner  Allocator
	allocs int
	frees  int
}

// NewCounting returns a counting wrapper around inner.
// A nil inner defaults to the heap allocator.
func NewCounting(inner Allocator) *CountingAllocator {
	if inner == nil {
		inner = HeapAllocator{}
	}
	return &CountingAllocator{inner: inner}
}

// Alloc delegates to the wrapped allocator, counting successful allocations.
func (c *CountingAllocator) Alloc(size int) ([]byte, error) {
	buf, err := c.inner.Alloc(size)
	if err != nil {
		return nil, err
	}
	c.allocs++
	return buf, nil
}

// Free delegates to the wrapped allocator, counting releases.
func (c *CountingAllocator) Free(buf []byte) {
	c.frees++
	c.inner.Free(buf)
}

// Allocs reports the total number of slots handed out.
func (c *CountingAllocator) Allocs() int {
	return c.allocs
}

// Frees reports the total number of slots released.
func (c *CountingAllocator) Frees() int {
	return c.frees
}

// Live reports the number of slots allocated but not yet released.
func (c *CountingAllocator) Live() int {
	return c.allocs - c.frees
}
