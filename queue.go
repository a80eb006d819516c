// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package lq

import "iter"

// Queue is an unbounded queue built on a singly-linked chain of nodes.
//
// The queue owns every node reachable from head. Nodes are allocated by
// Insert and released by Remove, Clear, or Destroy; a released node has its
// element and link zeroed so neither it nor the element it carried stays
// reachable through the queue.
//
// Queue is not safe for concurrent use. Wrap it with NewLocked when more
// than one goroutine needs access.
//
// Memory: one node (element + pointer) per stored element
type Queue[T any] struct {
	head  *node[T]
	tail  *node[T]
	count int
	order Ordering[T]
	state state
}

type node[T any] struct {
	value T
	next  *node[T] // nil at the tail
}

// release zeroes n after it has been unlinked.
func (n *node[T]) release() {
	var zero T
	n.value = zero
	n.next = nil
}

// New creates an empty queue with the given insertion discipline.
//
//	fifo := lq.New(lq.Unordered[string]())
//	prio := lq.New(lq.OrderedBy(lq.Ascending[int]))
func New[T any](order Ordering[T]) *Queue[T] {
	return &Queue[T]{order: order, state: stateCreated}
}

func (q *Queue[T]) mustLive(op string) {
	if q == nil {
		panic(errNilQueue)
	}
	checkState(q.state, op)
}

// Insert adds an element to the queue.
//
// FIFO: the element becomes the new tail.
// Ordered: the element is linked before the first node that sorts strictly
// after it, or at the tail if there is none. Equal elements keep their
// arrival order.
func (q *Queue[T]) Insert(elem T) {
	q.mustLive("Insert")

	n := &node[T]{value: elem}
	switch {
	case q.count == 0:
		q.head = n
		q.tail = n
	case !q.order.Ordered():
		q.tail.next = n
		q.tail = n
	default:
		q.insertOrdered(n)
	}
	q.count++
}

func (q *Queue[T]) insertOrdered(n *node[T]) {
	// Monotonic arrivals append without a scan.
	if q.order.notBefore(n.value, q.tail.value) {
		q.tail.next = n
		q.tail = n
		return
	}

	link := &q.head
	for *link != nil && q.order.notBefore(n.value, (*link).value) {
		link = &(*link).next
	}
	n.next = *link
	*link = n
	if n.next == nil {
		q.tail = n
	}
}

// Remove detaches and returns the head element.
// Ownership of the element passes to the caller.
// Panics if the queue is empty.
func (q *Queue[T]) Remove() T {
	q.mustLive("Remove")
	if q.count == 0 {
		panic(errEmptyRemove)
	}
	return q.detachHead()
}

// TryRemove detaches and returns the head element.
// Returns (zero-value, ErrWouldBlock) if the queue is empty.
func (q *Queue[T]) TryRemove() (T, error) {
	q.mustLive("TryRemove")
	if q.count == 0 {
		var zero T
		return zero, ErrWouldBlock
	}
	return q.detachHead(), nil
}

func (q *Queue[T]) detachHead() T {
	n := q.head
	q.head = n.next
	if q.head == nil {
		q.tail = nil
	}
	q.count--

	elem := n.value
	n.release()
	return elem
}

// Peek returns the head element without removing it.
// Returns (zero-value, false) if the queue is empty.
func (q *Queue[T]) Peek() (T, bool) {
	q.mustLive("Peek")
	if q.count == 0 {
		var zero T
		return zero, false
	}
	return q.head.value, true
}

// IsEmpty reports whether the queue holds no elements.
// A destroyed queue is empty.
func (q *Queue[T]) IsEmpty() bool {
	if q == nil {
		panic(errNilQueue)
	}
	return q.count == 0
}

// Len returns the number of elements in the queue.
func (q *Queue[T]) Len() int {
	if q == nil {
		panic(errNilQueue)
	}
	return q.count
}

// Clear releases every node, tail included, and leaves the queue empty.
// Clear on an empty, uninitialized, or destroyed queue is a no-op.
func (q *Queue[T]) Clear() {
	if q == nil {
		panic(errNilQueue)
	}
	if q.state != stateCreated || q.count == 0 {
		return
	}

	for n := q.head; n != nil; {
		next := n.next
		n.release()
		n = next
	}
	q.head = nil
	q.tail = nil
	q.count = 0
}

// Destroy clears the queue and invalidates it. Every later call except
// IsEmpty, Len, and Clear panics, including a second Destroy.
func (q *Queue[T]) Destroy() {
	q.mustLive("Destroy")
	q.Clear()
	q.order = Ordering[T]{}
	q.state = stateDestroyed
}

// All returns an iterator over the elements from head to tail.
// The queue must not be modified while iterating.
func (q *Queue[T]) All() iter.Seq[T] {
	q.mustLive("All")
	return func(yield func(T) bool) {
		for n := q.head; n != nil; n = n.next {
			if !yield(n.value) {
				return
			}
		}
	}
}

// Drain returns an iterator that removes and yields elements from the head
// until the queue is empty or the loop stops early.
func (q *Queue[T]) Drain() iter.Seq[T] {
	q.mustLive("Drain")
	return func(yield func(T) bool) {
		for q.count > 0 {
			if !yield(q.detachHead()) {
				return
			}
		}
	}
}
