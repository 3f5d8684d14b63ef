package status

import (
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAtomicFloatConcurrentAdd(t *testing.T) {
	var f AtomicFloat
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 1000; j++ {
				f.Add(0.5)
			}
		}()
	}
	wg.Wait()
	assert.Equal(t, 4000.0, f.Get())

	f.Set(-1.25)
	assert.Equal(t, -1.25, f.Get())
}

func TestMetricMapStablePointers(t *testing.T) {
	m := NewMetricMap[atomic.Int64]()
	a := m.Get("x")
	a.Add(3)
	assert.Same(t, a, m.Get("x"))
	assert.Equal(t, int64(3), m.Get("x").Load())

	_, ok := m.Lookup("y")
	assert.False(t, ok)
	assert.Equal(t, 1, m.Count())

	m.Get("b")
	var keys []string
	m.Range(func(k string, _ *atomic.Int64) { keys = append(keys, k) })
	assert.Equal(t, []string{"b", "x"}, keys)
}

func TestRegistrySnapshot(t *testing.T) {
	r := NewRegistry()
	fm := NewFrameMetrics(r)
	fm.Drawn.Add(5)
	fm.Presented.Add(4)
	fm.DrawMs.Set(1.5)

	assert.Equal(t, 4, r.TotalCount())
	snap := r.Snapshot()
	assert.Equal(t, 5.0, snap[FramesDrawn])
	assert.Equal(t, 4.0, snap[FramesPresented])
	assert.Equal(t, 0.0, snap[FramesStale])
	assert.Equal(t, 1.5, snap[FrameDrawMs])

	attrs := r.LogAttrs()
	assert.Len(t, attrs, 4)
	assert.Equal(t, FramesDrawn, attrs[0].Key)

	// Re-registering returns the same counters
	again := NewFrameMetrics(r)
	assert.Same(t, fm.Drawn, again.Drawn)
}
