// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package lq

import "iter"

// nilSlot marks an absent link in Arena.
const nilSlot = -1

// Arena is an unbounded queue whose nodes live in a contiguous slot slice
// addressed by stable indices.
//
// Removed slots go on a free-list and are reused by later inserts, so a
// queue with steady-state churn stops allocating once the arena has grown
// to its high-water mark. Arena has the same ordering and lifecycle
// semantics as Queue.
//
// Arena is not safe for concurrent use.
//
// Memory: one slot (element + int) per stored or free element
type Arena[T any] struct {
	slots []arenaSlot[T]
	head  int
	tail  int
	free  int // head of the free-list, linked through arenaSlot.next
	count int
	order Ordering[T]
	state state
}

type arenaSlot[T any] struct {
	value T
	next  int
}

// NewArena creates an empty arena-backed queue.
// capacityHint preallocates slots; the arena grows past it as needed.
// Panics if capacityHint < 0.
func NewArena[T any](order Ordering[T], capacityHint int) *Arena[T] {
	if capacityHint < 0 {
		panic("lq: capacity hint must be >= 0")
	}
	return &Arena[T]{
		slots: make([]arenaSlot[T], 0, capacityHint),
		head:  nilSlot,
		tail:  nilSlot,
		free:  nilSlot,
		order: order,
		state: stateCreated,
	}
}

func (q *Arena[T]) mustLive(op string) {
	if q == nil {
		panic(errNilQueue)
	}
	checkState(q.state, op)
}

// alloc takes a slot from the free-list, or grows the arena.
func (q *Arena[T]) alloc(elem T) int {
	if i := q.free; i != nilSlot {
		q.free = q.slots[i].next
		q.slots[i] = arenaSlot[T]{value: elem, next: nilSlot}
		return i
	}
	q.slots = append(q.slots, arenaSlot[T]{value: elem, next: nilSlot})
	return len(q.slots) - 1
}

// release zeroes slot i and pushes it on the free-list.
func (q *Arena[T]) release(i int) {
	q.slots[i] = arenaSlot[T]{next: q.free}
	q.free = i
}

// Insert adds an element to the queue. See Queue.Insert.
func (q *Arena[T]) Insert(elem T) {
	q.mustLive("Insert")

	switch {
	case q.count == 0:
		i := q.alloc(elem)
		q.head = i
		q.tail = i
	case !q.order.Ordered() || q.order.notBefore(elem, q.slots[q.tail].value):
		i := q.alloc(elem)
		q.slots[q.tail].next = i
		q.tail = i
	default:
		q.insertOrdered(elem)
	}
	q.count++
}

// insertOrdered places elem before the first slot that sorts strictly after
// it. The slot is allocated only after the scan, so a panicking comparator
// leaves the arena unchanged.
func (q *Arena[T]) insertOrdered(elem T) {
	prev, cur := nilSlot, q.head
	for cur != nilSlot && q.order.notBefore(elem, q.slots[cur].value) {
		prev, cur = cur, q.slots[cur].next
	}

	i := q.alloc(elem)
	q.slots[i].next = cur
	if prev == nilSlot {
		q.head = i
	} else {
		q.slots[prev].next = i
	}
	if cur == nilSlot {
		q.tail = i
	}
}

// Remove detaches and returns the head element.
// Panics if the queue is empty.
func (q *Arena[T]) Remove() T {
	q.mustLive("Remove")
	if q.count == 0 {
		panic(errEmptyRemove)
	}
	return q.detachHead()
}

// TryRemove detaches and returns the head element.
// Returns (zero-value, ErrWouldBlock) if the queue is empty.
func (q *Arena[T]) TryRemove() (T, error) {
	q.mustLive("TryRemove")
	if q.count == 0 {
		var zero T
		return zero, ErrWouldBlock
	}
	return q.detachHead(), nil
}

func (q *Arena[T]) detachHead() T {
	i := q.head
	elem := q.slots[i].value
	q.head = q.slots[i].next
	if q.head == nilSlot {
		q.tail = nilSlot
	}
	q.count--
	q.release(i)
	return elem
}

// Peek returns the head element without removing it.
// Returns (zero-value, false) if the queue is empty.
func (q *Arena[T]) Peek() (T, bool) {
	q.mustLive("Peek")
	if q.count == 0 {
		var zero T
		return zero, false
	}
	return q.slots[q.head].value, true
}

// IsEmpty reports whether the queue holds no elements.
func (q *Arena[T]) IsEmpty() bool {
	if q == nil {
		panic(errNilQueue)
	}
	return q.count == 0
}

// Len returns the number of elements in the queue.
func (q *Arena[T]) Len() int {
	if q == nil {
		panic(errNilQueue)
	}
	return q.count
}

// Cap returns the number of slots the arena can hold without growing.
func (q *Arena[T]) Cap() int {
	if q == nil {
		panic(errNilQueue)
	}
	return cap(q.slots)
}

// Clear releases every slot at once and leaves the queue empty.
// The backing array is kept for reuse.
// Clear on an empty, uninitialized, or destroyed queue is a no-op.
func (q *Arena[T]) Clear() {
	if q == nil {
		panic(errNilQueue)
	}
	if q.state != stateCreated || q.count == 0 {
		return
	}

	clear(q.slots)
	q.slots = q.slots[:0]
	q.head = nilSlot
	q.tail = nilSlot
	q.free = nilSlot
	q.count = 0
}

// Destroy clears the queue, drops the backing array, and invalidates the
// queue. Every later call except IsEmpty, Len, Cap, and Clear panics.
func (q *Arena[T]) Destroy() {
	q.mustLive("Destroy")
	q.Clear()
	q.slots = nil
	q.order = Ordering[T]{}
	q.state = stateDestroyed
}

// All returns an iterator over the elements from head to tail.
// The queue must not be modified while iterating.
func (q *Arena[T]) All() iter.Seq[T] {
	q.mustLive("All")
	return func(yield func(T) bool) {
		for i := q.head; i != nilSlot; i = q.slots[i].next {
			if !yield(q.slots[i].value) {
				return
			}
		}
	}
}

// Drain returns an iterator that removes and yields elements from the head
// until the queue is empty or the loop stops early.
func (q *Arena[T]) Drain() iter.Seq[T] {
	q.mustLive("Drain")
	return func(yield func(T) bool) {
		for q.count > 0 {
			if !yield(q.detachHead()) {
				return
			}
		}
	}
}
