// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package lq

import "fmt"

// CheckQueue reports the first broken structural invariant of q, or nil.
func CheckQueue[T any](q *Queue[T]) error {
	if (q.count == 0) != (q.head == nil) || (q.head == nil) != (q.tail == nil) {
		return fmt.Errorf("count=%d head=%p tail=%p disagree", q.count, q.head, q.tail)
	}

	steps := 0
	var last *node[T]
	for n := q.head; n != nil; n = n.next {
		if last != nil && q.order.Ordered() && q.order.cmp(last.value, n.value) > 0 {
			return fmt.Errorf("out of order at position %d", steps)
		}
		steps++
		last = n
		if steps > q.count {
			return fmt.Errorf("chain longer than count %d", q.count)
		}
	}
	if steps != q.count {
		return fmt.Errorf("chain length %d, count %d", steps, q.count)
	}
	if last != q.tail {
		return fmt.Errorf("last node %p is not tail %p", last, q.tail)
	}
	return nil
}

// CheckArena reports the first broken structural invariant of q, or nil.
// Every slot must be on exactly one of the element chain or the free-list.
func CheckArena[T any](q *Arena[T]) error {
	if (q.count == 0) != (q.head == nilSlot) || (q.head == nilSlot) != (q.tail == nilSlot) {
		return fmt.Errorf("count=%d head=%d tail=%d disagree", q.count, q.head, q.tail)
	}

	seen := make([]bool, len(q.slots))
	visit := func(i int) error {
		if i < 0 || i >= len(q.slots) {
			return fmt.Errorf("slot %d out of range [0,%d)", i, len(q.slots))
		}
		if seen[i] {
			return fmt.Errorf("slot %d reachable twice", i)
		}
		seen[i] = true
		return nil
	}

	steps, last := 0, nilSlot
	for i := q.head; i != nilSlot; i = q.slots[i].next {
		if err := visit(i); err != nil {
			return err
		}
		if last != nilSlot && q.order.Ordered() && q.order.cmp(q.slots[last].value, q.slots[i].value) > 0 {
			return fmt.Errorf("out of order at position %d", steps)
		}
		steps++
		last = i
	}
	if steps != q.count {
		return fmt.Errorf("chain length %d, count %d", steps, q.count)
	}
	if last != q.tail {
		return fmt.Errorf("last slot %d is not tail %d", last, q.tail)
	}

	free := 0
	for i := q.free; i != nilSlot; i = q.slots[i].next {
		if err := visit(i); err != nil {
			return err
		}
		free++
	}
	if steps+free != len(q.slots) {
		return fmt.Errorf("%d chained + %d free != %d slots", steps, free, len(q.slots))
	}
	return nil
}
