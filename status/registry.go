package status

import (
	"log/slog"
	"sync/atomic"
)

// Frame loop metric names
const (
	FramesDrawn     = "frames.drawn"
	FramesPresented = "frames.presented"
	FramesStale     = "frames.stale"
	FrameDrawMs     = "frame.draw_ms"
)

// Registry groups counters and gauges
type Registry struct {
	Ints   *MetricMap[atomic.Int64]
	Floats *MetricMap[AtomicFloat]
}

func NewRegistry() *Registry {
	return &Registry{
		Ints:   NewMetricMap[atomic.Int64](),
		Floats: NewMetricMap[AtomicFloat](),
	}
}

// TotalCount returns the number of registered metrics
func (r *Registry) TotalCount() int {
	return r.Ints.Count() + r.Floats.Count()
}

// Snapshot copies every metric into a map, counters converted to float64
func (r *Registry) Snapshot() map[string]float64 {
	out := make(map[string]float64, r.TotalCount())
	r.Ints.Range(func(k string, v *atomic.Int64) { out[k] = float64(v.Load()) })
	r.Floats.Range(func(k string, v *AtomicFloat) { out[k] = v.Get() })
	return out
}

// LogAttrs renders the snapshot as slog attributes in key order
func (r *Registry) LogAttrs() []slog.Attr {
	attrs := make([]slog.Attr, 0, r.TotalCount())
	r.Ints.Range(func(k string, v *atomic.Int64) { attrs = append(attrs, slog.Int64(k, v.Load())) })
	r.Floats.Range(func(k string, v *AtomicFloat) { attrs = append(attrs, slog.Float64(k, v.Get())) })
	return attrs
}

// FrameMetrics caches the frame loop's metric pointers
type FrameMetrics struct {
	Drawn     *atomic.Int64
	Presented *atomic.Int64
	Stale     *atomic.Int64
	DrawMs    *AtomicFloat
}

// NewFrameMetrics registers the frame loop metrics in r
func NewFrameMetrics(r *Registry) FrameMetrics {
	return FrameMetrics{
		Drawn:     r.Ints.Get(FramesDrawn),
		Presented: r.Ints.Get(FramesPresented),
		Stale:     r.Ints.Get(FramesStale),
		DrawMs:    r.Floats.Get(FrameDrawMs),
	}
}
