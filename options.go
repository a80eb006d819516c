// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package lq

// Options configures queue creation and variant selection.
type Options[T any] struct {
	order Ordering[T]

	// Storage
	arena        bool
	capacityHint int // Arena only

	// External synchronisation
	locked bool
}

// Builder creates queues with fluent configuration.
//
// Example:
//
//	// FIFO linked queue (default)
//	q := lq.NewBuilder[Event]().BuildQueue()
//
//	// Priority queue backed by an arena
//	q := lq.NewBuilder[Job]().OrderedBy(byPriority).Arena(256).BuildArena()
//
//	// Shared between goroutines
//	q := lq.NewBuilder[Job]().OrderedBy(byPriority).Locked().Build()
type Builder[T any] struct {
	opts Options[T]
}

// NewBuilder creates a builder for a FIFO linked queue.
func NewBuilder[T any]() *Builder[T] {
	return &Builder[T]{}
}

// OrderedBy selects priority insertion driven by cmp.
// Panics if cmp is nil.
func (b *Builder[T]) OrderedBy(cmp func(a, b T) int) *Builder[T] {
	b.opts.order = OrderedBy(cmp)
	return b
}

// Arena selects arena-backed storage with capacityHint preallocated slots.
// Panics if capacityHint < 0.
func (b *Builder[T]) Arena(capacityHint int) *Builder[T] {
	if capacityHint < 0 {
		panic("lq: capacity hint must be >= 0")
	}
	b.opts.arena = true
	b.opts.capacityHint = capacityHint
	return b
}

// Locked wraps the built queue with NewLocked.
func (b *Builder[T]) Locked() *Builder[T] {
	b.opts.locked = true
	return b
}

// Build creates a Container with the configured variant:
//
//	default  → *Queue[T]
//	Arena()  → *Arena[T]
//	Locked() → *Locked[T] around either of the above
func (b *Builder[T]) Build() Container[T] {
	var c Container[T]
	if b.opts.arena {
		c = NewArena(b.opts.order, b.opts.capacityHint)
	} else {
		c = New(b.opts.order)
	}
	if b.opts.locked {
		return NewLocked(c)
	}
	return c
}

// BuildQueue creates a *Queue[T].
// Panics if the builder is configured with Arena() or Locked().
func (b *Builder[T]) BuildQueue() *Queue[T] {
	if b.opts.arena || b.opts.locked {
		panic("lq: BuildQueue requires no Arena() or Locked()")
	}
	return New(b.opts.order)
}

// BuildArena creates an *Arena[T].
// Panics if the builder is not configured with Arena() or uses Locked().
func (b *Builder[T]) BuildArena() *Arena[T] {
	if !b.opts.arena || b.opts.locked {
		panic("lq: BuildArena requires Arena() without Locked()")
	}
	return NewArena(b.opts.order, b.opts.capacityHint)
}

// BuildLocked creates a *Locked[T].
// Panics if the builder is not configured with Locked().
func (b *Builder[T]) BuildLocked() *Locked[T] {
	if !b.opts.locked {
		panic("lq: BuildLocked requires Locked()")
	}
	return b.Build().(*Locked[T])
}
