// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package lq provides unbounded linked queues with FIFO or priority insertion.
//
// Two storage variants share the same [Container] interface:
//
//   - Queue: singly-linked chain of heap-allocated nodes
//   - Arena: the same chain stored in a slot slice with a free-list
//
// # Quick Start
//
// Direct constructors:
//
//	q := lq.New(lq.Unordered[Event]())                 // FIFO
//	q := lq.New(lq.OrderedBy(lq.Ascending[int]))       // priority
//	q := lq.NewArena(lq.OrderedBy(byDeadline), 1024)   // priority, arena-backed
//
// Builder API selects the variant:
//
//	q := lq.NewBuilder[Job]().OrderedBy(byPriority).Build()            // → *Queue
//	q := lq.NewBuilder[Job]().OrderedBy(byPriority).Arena(64).Build()  // → *Arena
//	q := lq.NewBuilder[Job]().Locked().Build()                         // → *Locked
//
// # Insertion Disciplines
//
// The discipline is an [Ordering] fixed at creation:
//
//	Unordered[T]()   - Insert appends at the tail (FIFO)
//	OrderedBy(cmp)   - Insert keeps head-to-tail order non-decreasing under cmp
//
// Ordered insertion is stable: an element is placed after every existing
// element that compares equal to it, so ties leave in arrival order.
//
//	q := lq.New(lq.OrderedBy(lq.By(func(t Task) int { return t.Priority })))
//	q.Insert(Task{2, "a"})
//	q.Insert(Task{2, "b"})
//	q.Insert(Task{1, "c"})
//	// Remove order: c, a, b
//
// Ordered insertion scans from the head, so it is O(n) per element except
// for elements that sort at or after the current tail, which append in O(1).
//
// # Error Handling
//
// Misuse is a programming error and panics:
//
//   - Remove on an empty queue
//   - any operation on a nil, zero-value, or destroyed queue
//     (IsEmpty, Len, and Clear excepted on a destroyed queue)
//   - Destroy called twice
//
// [Queue.TryRemove] is the non-panicking form. It returns [ErrWouldBlock]
// when the queue is empty. This error is sourced from
// [code.hybscloud.com/iox] for ecosystem consistency:
//
//	elem, err := q.TryRemove()
//	if lq.IsWouldBlock(err) {
//	    // Queue is empty
//	}
//
// # Ownership
//
// The queue owns its nodes, never the elements. Remove hands the element
// back to the caller and zeroes the node, so a removed element is not kept
// alive by the queue. Clear and Destroy release every node, tail included.
//
// # Thread Safety
//
// Queue and Arena are not safe for concurrent use. Share one between
// goroutines through [Locked], which serialises every call:
//
//	q := lq.NewLocked[Job](lq.New(lq.Unordered[Job]()))
//
//	// Consumer
//	backoff := iox.Backoff{}
//	for {
//	    job, err := q.TryRemove()
//	    if err != nil {
//	        backoff.Wait()
//	        continue
//	    }
//	    backoff.Reset()
//	    job.Run()
//	}
//
// # Dependencies
//
// This package uses [code.hybscloud.com/iox] for semantic errors,
// [code.hybscloud.com/atomix] and [code.hybscloud.com/spin] for the Locked
// spin lock, and [golang.org/x/exp/constraints] for the key comparators.
package lq
