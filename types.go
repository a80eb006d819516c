// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package lq

import "golang.org/x/exp/constraints"

// Container is the combined producer-consumer interface shared by every
// queue variant in this package.
//
// Remove panics on an empty container; TryRemove reports ErrWouldBlock
// instead. After Destroy the container must not be used again.
//
// Example:
//
//	var c lq.Container[int] = lq.New(lq.OrderedBy(lq.Ascending[int]))
//	c.Insert(5)
//	c.Insert(1)
//	fmt.Println(c.Remove()) // 1
type Container[T any] interface {
	Producer[T]
	Consumer[T]

	// Peek returns the head element without removing it.
	// Returns (zero-value, false) if the container is empty.
	Peek() (T, bool)

	// IsEmpty reports whether the container holds no elements.
	IsEmpty() bool

	// Len returns the number of elements currently stored.
	Len() int

	// Clear drops every element. Clear on an empty container is a no-op.
	Clear()

	// Destroy clears the container and invalidates it.
	Destroy()
}

var (
	_ Container[int] = (*Queue[int])(nil)
	_ Container[int] = (*Arena[int])(nil)
	_ Container[int] = (*Locked[int])(nil)
)

// Producer is the interface for inserting elements.
type Producer[T any] interface {
	// Insert adds an element. In FIFO mode the element becomes the new tail;
	// in ordered mode it is placed after every element that does not sort
	// strictly after it.
	Insert(elem T)
}

// Consumer is the interface for removing elements from the head.
type Consumer[T any] interface {
	// Remove detaches and returns the head element.
	// Panics if the container is empty.
	Remove() T

	// TryRemove detaches and returns the head element.
	// Returns (zero-value, ErrWouldBlock) if the container is empty.
	TryRemove() (T, error)
}

// Ordering selects the insertion discipline of a queue. The zero value is
// Unordered (FIFO). An Ordering is fixed when the queue is created.
type Ordering[T any] struct {
	cmp func(a, b T) int
}

// Unordered returns the FIFO discipline: Insert always appends at the tail.
func Unordered[T any]() Ordering[T] {
	return Ordering[T]{}
}

// OrderedBy returns the priority discipline driven by cmp.
//
// cmp(a, b) returns a negative number when a sorts before b, zero when they
// are equal, and a positive number when a sorts after b. It must be a
// consistent total preorder for the lifetime of the queue.
//
// Panics if cmp is nil.
func OrderedBy[T any](cmp func(a, b T) int) Ordering[T] {
	if cmp == nil {
		panic("lq: OrderedBy requires a non-nil comparator")
	}
	return Ordering[T]{cmp: cmp}
}

// Ordered reports whether o is the priority discipline.
func (o Ordering[T]) Ordered() bool {
	return o.cmp != nil
}

// notBefore reports whether elem must be placed after existing.
// Equal elements return true, which keeps arrival order among ties.
func (o Ordering[T]) notBefore(elem, existing T) bool {
	return o.cmp(elem, existing) >= 0
}

// Ascending orders keys from smallest to largest.
func Ascending[K constraints.Ordered](a, b K) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

// Descending orders keys from largest to smallest.
func Descending[K constraints.Ordered](a, b K) int {
	return Ascending(b, a)
}

// By returns a comparator that orders elements ascending by key.
//
// Example:
//
//	type Job struct {
//	    Priority int
//	    Name     string
//	}
//	q := lq.New(lq.OrderedBy(lq.By(func(j Job) int { return j.Priority })))
func By[T any, K constraints.Ordered](key func(T) K) func(a, b T) int {
	if key == nil {
		panic("lq: By requires a non-nil key function")
	}
	return func(a, b T) int {
		return Ascending(key(a), key(b))
	}
}

// state is the lifecycle of a queue instance.
// The zero value is stateUninitialized so that a zero-value queue is detected.
type state uint8

const (
	stateUninitialized state = iota
	stateCreated
	stateDestroyed
)
