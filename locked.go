// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package lq

import (
	"code.hybscloud.com/atomix"
	"code.hybscloud.com/spin"
)

// Locked serialises every call on a wrapped Container through a spin lock.
//
// Queue and Arena carry no synchronisation of their own. Locked is the
// external lock for callers that share one container between goroutines.
// Critical sections are a handful of pointer writes, so waiters spin with a
// CPU pause instead of parking.
//
// A panic raised by the wrapped container (for example Remove on an empty
// queue) releases the lock before it propagates.
//
// Example:
//
//	q := lq.NewLocked[int](lq.New(lq.Unordered[int]()))
//	go func() { q.Insert(1) }()
//	v, err := q.TryRemove()
type Locked[T any] struct {
	_    pad
	lock atomix.Uint64 // 0 unlocked, 1 locked
	_    pad
	c    Container[T]
}

// NewLocked wraps c. The caller must not use c directly afterwards.
// Panics if c is nil.
func NewLocked[T any](c Container[T]) *Locked[T] {
	if c == nil {
		panic("lq: NewLocked requires a non-nil container")
	}
	return &Locked[T]{c: c}
}

func (l *Locked[T]) acquire() {
	if l == nil {
		panic(errNilQueue)
	}
	sw := spin.Wait{}
	for {
		if l.lock.LoadRelaxed() == 0 && l.lock.CompareAndSwapAcqRel(0, 1) {
			return
		}
		sw.Once()
	}
}

func (l *Locked[T]) release() {
	l.lock.StoreRelease(0)
}

// Insert adds an element to the wrapped container.
func (l *Locked[T]) Insert(elem T) {
	l.acquire()
	defer l.release()
	l.c.Insert(elem)
}

// Remove detaches and returns the head element.
// Panics if the container is empty.
func (l *Locked[T]) Remove() T {
	l.acquire()
	defer l.release()
	return l.c.Remove()
}

// TryRemove detaches and returns the head element.
// Returns (zero-value, ErrWouldBlock) if the container is empty.
func (l *Locked[T]) TryRemove() (T, error) {
	l.acquire()
	defer l.release()
	return l.c.TryRemove()
}

// Peek returns the head element without removing it.
func (l *Locked[T]) Peek() (T, bool) {
	l.acquire()
	defer l.release()
	return l.c.Peek()
}

// IsEmpty reports whether the wrapped container holds no elements.
func (l *Locked[T]) IsEmpty() bool {
	l.acquire()
	defer l.release()
	return l.c.IsEmpty()
}

// Len returns the number of elements in the wrapped container.
func (l *Locked[T]) Len() int {
	l.acquire()
	defer l.release()
	return l.c.Len()
}

// Clear drops every element of the wrapped container.
func (l *Locked[T]) Clear() {
	l.acquire()
	defer l.release()
	l.c.Clear()
}

// Destroy destroys the wrapped container.
func (l *Locked[T]) Destroy() {
	l.acquire()
	defer l.release()
	l.c.Destroy()
}

// pad is cache line padding to prevent false sharing.
type pad [64]byte
