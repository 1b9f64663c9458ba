// Package stack implements heap-backed, singly-linked LIFO containers.
package stack

import "github.com/samber/mo"

// node is one link of a Stack chain.
type node[T any] struct {
	value T
	next  *node[T]
}

// Stack is a typed LIFO container backed by a chain of heap-allocated nodes.
//
// It is the preferred form of the container: the type parameter fixes the
// element shape statically, so no width bookkeeping is needed. Callers that
// deal in opaque fixed-width byte records use Raw instead.
//
// The zero value is an empty stack ready for use. A Stack is single-owner and
// performs no internal synchronization.
type Stack[T any] struct {
	size int
	head *node[T]
}

// New returns an empty stack.
func New[T any]() *Stack[T] {
	return &Stack[T]{}
}

// IsEmpty reports whether the stack holds no elements.
// A nil stack is reported as empty rather than an error.
func (s *Stack[T]) IsEmpty() bool {
	return s == nil || s.head == nil
}

// Len returns the number of elements. It is 0 for a nil stack.
func (s *Stack[T]) Len() int {
	if s.IsEmpty() {
		return 0
	}
	return s.size
}

// Push copies value into a new node linked as the top of the stack.
func (s *Stack[T]) Push(value T) {
	s.head = &node[T]{value: value, next: s.head}
	s.size++
}

// Pop removes and returns the top element. It returns the zero value and
// false, leaving the stack unchanged, when the stack is empty.
func (s *Stack[T]) Pop() (T, bool) {
	if s.IsEmpty() {
		var zero T
		return zero, false
	}

	top := s.head
	s.head = top.next
	top.next = nil
	s.size--
	return top.value, true
}

// Peek returns the top element without removing it, or None when empty.
func (s *Stack[T]) Peek() mo.Option[T] {
	if s.IsEmpty() {
		return mo.None[T]()
	}
	return mo.Some(s.head.value)
}

// Clear unlinks the whole chain, leaving an empty, still usable stack.
func (s *Stack[T]) Clear() {
	if s == nil {
		return
	}
	for s.head != nil {
		top := s.head
		s.head = top.next
		top.next = nil
	}
	s.size = 0
}

// Swap exchanges the chains and sizes of two stacks of the same element type.
func (s *Stack[T]) Swap(other *Stack[T]) error {
	if s == nil || other == nil {
		return ErrNilStack
	}

	s.head, other.head = other.head, s.head
	s.size, other.size = other.size, s.size
	return nil
}
