// Package engine runs the frame loop: a draw loop that renders into a back
// buffer and a present loop that hands completed frames to a Sink.
//
// Buffers move between the loops through a three-slot handoff. The draw loop
// owns back and spare, the present loop owns front, and the newest completed
// frame sits in a ready slot. Only pointer swaps happen under the lock, so
// the sink never sees a buffer that is being written.
package engine

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/lixenwraith/cellpaint/core"
	"github.com/lixenwraith/cellpaint/render"
	"github.com/lixenwraith/cellpaint/status"
)

var (
	ErrRunning   = errors.New("painter already running")
	ErrFrameSize = errors.New("frame size must be positive")
	ErrInterval  = errors.New("frame interval must be positive")
	ErrNoFrame   = errors.New("frame hook is required")
	ErrNoSink    = errors.New("sink is required")
)

// State is the painter lifecycle state
type State int32

const (
	Stopped State = iota
	Running
)

func (s State) String() string {
	if s == Running {
		return "running"
	}
	return "stopped"
}

// Sink receives completed frames. The buffer is owned by the painter and is
// only valid for the duration of the call
type Sink interface {
	Present(b *render.Buffer) error
}

// SinkFunc adapts a function to Sink
type SinkFunc func(b *render.Buffer) error

func (f SinkFunc) Present(b *render.Buffer) error { return f(b) }

// Hooks are the per-run callbacks. Setup runs once on the back buffer before
// the loops start; Frame runs once per draw iteration and must leave the back
// buffer in its finished state for that frame
type Hooks struct {
	Setup func(back *render.Buffer) error
	Frame func(back *render.Buffer) error
}

// Painter is the frame loop context: buffers, lifecycle and metrics
type Painter struct {
	sink    Sink
	metrics status.FrameMetrics

	// lifecycle
	mu      sync.Mutex
	state   atomic.Int32
	cancel  context.CancelFunc
	done    chan struct{}
	err     error
	started time.Time

	// handoff; swap guards ready and fresh
	swap  sync.Mutex
	back  *render.Buffer
	spare *render.Buffer
	ready *render.Buffer
	front *render.Buffer
	fresh bool
}

// NewPainter creates a stopped painter presenting to sink and recording
// frame metrics in reg. A nil reg gets a private registry
func NewPainter(sink Sink, reg *status.Registry) *Painter {
	if reg == nil {
		reg = status.NewRegistry()
	}
	return &Painter{
		sink:    sink,
		metrics: status.NewFrameMetrics(reg),
	}
}

// State returns the lifecycle state
func (p *Painter) State() State {
	return State(p.state.Load())
}

// Start allocates width x height buffers, runs hooks.Setup, publishes the
// result as the first frame and starts the draw and present loops, each
// sleeping interval between iterations. It returns once the loops are running.
// The loops stop on Stop, on ctx cancellation, or on the first hook or sink
// error
func (p *Painter) Start(ctx context.Context, hooks Hooks, width, height int, interval time.Duration) error {
	p.mu.Lock()
	if err := p.checkStart(hooks, width, height, interval); err != nil {
		p.mu.Unlock()
		return err
	}

	p.back = render.NewBuffer(width, height)
	p.spare = render.NewBuffer(width, height)
	p.ready = render.NewBuffer(width, height)
	p.front = render.NewBuffer(width, height)
	p.fresh = false

	// The run is live from here so hooks can call Stop
	runCtx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})
	p.cancel = cancel
	p.done = done
	p.err = nil
	p.started = time.Now()
	p.state.Store(int32(Running))
	p.mu.Unlock()

	if hooks.Setup != nil {
		if err := runHook(hooks.Setup, p.back); err != nil {
			err = fmt.Errorf("setup: %w", err)
			p.finish(cancel, done, err)
			return err
		}
	}
	p.publish()

	g, gctx := errgroup.WithContext(runCtx)
	g.Go(func() error { return p.drawLoop(gctx, hooks.Frame, interval) })
	g.Go(func() error { return p.presentLoop(gctx, interval) })

	Logger().Info("painter started", "width", width, "height", height, "interval", interval)

	core.Go(func() {
		p.finish(cancel, done, g.Wait())
	})
	return nil
}

func (p *Painter) checkStart(hooks Hooks, width, height int, interval time.Duration) error {
	switch {
	case p.State() == Running:
		return ErrRunning
	case p.sink == nil:
		return ErrNoSink
	case hooks.Frame == nil:
		return ErrNoFrame
	case width <= 0 || height <= 0:
		return fmt.Errorf("%w: %dx%d", ErrFrameSize, width, height)
	case interval <= 0:
		return fmt.Errorf("%w: %v", ErrInterval, interval)
	}
	return nil
}

// finish records the outcome of a run and releases Wait
func (p *Painter) finish(cancel context.CancelFunc, done chan struct{}, err error) {
	cancel()

	p.mu.Lock()
	p.err = err
	p.state.Store(int32(Stopped))
	elapsed := time.Since(p.started)
	p.mu.Unlock()

	log := Logger()
	if err != nil {
		log.Error("painter stopped", "error", err, "elapsed", elapsed)
	} else {
		log.Info("painter stopped", "elapsed", elapsed,
			"drawn", p.metrics.Drawn.Load(), "presented", p.metrics.Presented.Load())
	}
	close(done)
}

// Wait blocks until the current run ends and returns its first error. A run
// ended by Stop or by ctx cancellation returns nil
func (p *Painter) Wait() error {
	p.mu.Lock()
	done := p.done
	p.mu.Unlock()
	if done == nil {
		return nil
	}
	<-done

	p.mu.Lock()
	defer p.mu.Unlock()
	return p.err
}

// Run is Start followed by Wait
func (p *Painter) Run(ctx context.Context, hooks Hooks, width, height int, interval time.Duration) error {
	if err := p.Start(ctx, hooks, width, height, interval); err != nil {
		return err
	}
	return p.Wait()
}

// Stop asks the current run to end and returns without waiting; sleeping
// loops wake immediately. Use Wait to block until both loops have exited.
// Stop may be called from hooks and from the sink. Calling it on a stopped
// painter does nothing
func (p *Painter) Stop() {
	p.mu.Lock()
	cancel := p.cancel
	p.mu.Unlock()
	if cancel != nil {
		cancel()
	}
}

func (p *Painter) drawLoop(ctx context.Context, frame func(*render.Buffer) error, interval time.Duration) (err error) {
	defer core.Recover(&err)

	for ctx.Err() == nil {
		start := time.Now()
		if err := frame(p.back); err != nil {
			return fmt.Errorf("frame: %w", err)
		}
		p.metrics.DrawMs.Set(float64(time.Since(start).Microseconds()) / 1000)
		p.publish()
		p.metrics.Drawn.Add(1)

		if !sleep(ctx, interval) {
			break
		}
	}
	return nil
}

func (p *Painter) presentLoop(ctx context.Context, interval time.Duration) (err error) {
	defer core.Recover(&err)

	for ctx.Err() == nil {
		if !p.acquire() {
			p.metrics.Stale.Add(1)
		}
		if err := p.sink.Present(p.front); err != nil {
			return fmt.Errorf("present: %w", err)
		}
		p.metrics.Presented.Add(1)

		if !sleep(ctx, interval) {
			break
		}
	}
	return nil
}

// publish snapshots back into spare and swaps it into the ready slot. All
// four buffers come from the same Start, so a copy failure is a bug
func (p *Painter) publish() {
	if err := p.spare.CopyFrom(p.back); err != nil {
		panic(err)
	}

	p.swap.Lock()
	p.spare, p.ready = p.ready, p.spare
	p.fresh = true
	p.swap.Unlock()
}

// acquire swaps the ready frame into front if a new one was published
func (p *Painter) acquire() bool {
	p.swap.Lock()
	defer p.swap.Unlock()
	if !p.fresh {
		return false
	}
	p.front, p.ready = p.ready, p.front
	p.fresh = false
	return true
}

func runHook(hook func(*render.Buffer) error, b *render.Buffer) (err error) {
	defer core.Recover(&err)
	return hook(b)
}

// sleep waits d or until ctx is done; false means stop
func sleep(ctx context.Context, d time.Duration) bool {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-t.C:
		return true
	}
}
