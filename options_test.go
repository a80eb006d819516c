// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package lq_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"code.hybscloud.com/lq"
)

// TestBuilderSelection tests that Build picks the configured variant.
func TestBuilderSelection(t *testing.T) {
	require.IsType(t, &lq.Queue[int]{}, lq.NewBuilder[int]().Build())
	require.IsType(t, &lq.Arena[int]{}, lq.NewBuilder[int]().Arena(8).Build())
	require.IsType(t, &lq.Locked[int]{}, lq.NewBuilder[int]().Locked().Build())
	require.IsType(t, &lq.Locked[int]{}, lq.NewBuilder[int]().Arena(8).Locked().Build())
}

// TestBuilderOrdering tests that the comparator reaches the built queue.
func TestBuilderOrdering(t *testing.T) {
	builders := map[string]*lq.Builder[int]{
		"Queue":  lq.NewBuilder[int]().OrderedBy(lq.Ascending[int]),
		"Arena":  lq.NewBuilder[int]().OrderedBy(lq.Ascending[int]).Arena(2),
		"Locked": lq.NewBuilder[int]().OrderedBy(lq.Ascending[int]).Locked(),
	}
	for name, b := range builders {
		t.Run(name, func(t *testing.T) {
			q := b.Build()
			for _, v := range []int{4, 2, 8, 6} {
				q.Insert(v)
			}
			assert.Equal(t, []int{2, 4, 6, 8}, removeAll(q))
		})
	}

	fifo := lq.NewBuilder[int]().BuildQueue()
	fifo.Insert(3)
	fifo.Insert(1)
	assert.Equal(t, 3, fifo.Remove())
}

// TestBuilderTyped tests the typed Build methods and their constraints.
func TestBuilderTyped(t *testing.T) {
	assert.NotNil(t, lq.NewBuilder[int]().BuildQueue())

	a := lq.NewBuilder[int]().Arena(16).BuildArena()
	assert.Equal(t, 16, a.Cap())

	l := lq.NewBuilder[int]().Arena(4).Locked().BuildLocked()
	l.Insert(1)
	assert.Equal(t, 1, l.Len())

	assert.PanicsWithValue(t, "lq: BuildQueue requires no Arena() or Locked()", func() {
		lq.NewBuilder[int]().Arena(1).BuildQueue()
	})
	assert.PanicsWithValue(t, "lq: BuildQueue requires no Arena() or Locked()", func() {
		lq.NewBuilder[int]().Locked().BuildQueue()
	})
	assert.PanicsWithValue(t, "lq: BuildArena requires Arena() without Locked()", func() {
		lq.NewBuilder[int]().BuildArena()
	})
	assert.PanicsWithValue(t, "lq: BuildArena requires Arena() without Locked()", func() {
		lq.NewBuilder[int]().Arena(1).Locked().BuildArena()
	})
	assert.PanicsWithValue(t, "lq: BuildLocked requires Locked()", func() {
		lq.NewBuilder[int]().BuildLocked()
	})
	assert.PanicsWithValue(t, "lq: capacity hint must be >= 0", func() {
		lq.NewBuilder[int]().Arena(-1)
	})
	assert.PanicsWithValue(t, "lq: OrderedBy requires a non-nil comparator", func() {
		lq.NewBuilder[int]().OrderedBy(nil)
	})
}
