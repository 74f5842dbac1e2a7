// Package async decouples event production from consumption via a
// buffered channel. Delivery order is preserved; only latency is
// decoupled.
package async

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/crimson-sun/anchorlog/internal/model"
	"github.com/crimson-sun/anchorlog/internal/output"
)

const (
	defaultCapacity     = 1024
	defaultDrainTimeout = 5 * time.Second
)

// Option configures an Async wrapper.
type Option func(*Async)

// WithBufferSize sets the queue capacity. Default: 1024.
func WithBufferSize(n int) Option {
	return func(a *Async) { a.capacity = n }
}

// WithOnError sets the callback for inner write failures. Default: logs
// a warning via slog.
func WithOnError(f func(error)) Option {
	return func(a *Async) { a.onErr = f }
}

// WithDropOnFull makes Write drop the event instead of blocking when the
// queue is full. Use where lossiness is acceptable, such as a
// non-critical webhook.
func WithDropOnFull() Option {
	return func(a *Async) { a.lossy = true }
}

// Async queues events for a background goroutine that forwards them to
// the wrapped output. Inner write failures go to the error callback, not
// to the caller; the queue preserves delivery order.
type Async struct {
	inner    output.Output
	queue    chan model.Event
	done     chan struct{}
	onErr    func(error)
	capacity int
	lossy    bool

	closeOnce sync.Once
	closeErr  error
}

// New wraps an output. The forwarding goroutine starts immediately.
func New(inner output.Output, opts ...Option) *Async {
	a := &Async{
		inner:    inner,
		capacity: defaultCapacity,
		onErr:    func(err error) { slog.Warn("async output write error", "error", err) },
	}
	for _, opt := range opts {
		opt(a)
	}
	a.queue = make(chan model.Event, a.capacity)
	a.done = make(chan struct{})
	go a.forward()
	return a
}

// Write enqueues the event. The default policy blocks on a full queue
// (backpressure); under WithDropOnFull the event is lost instead.
func (a *Async) Write(_ context.Context, event model.Event) error {
	if !a.lossy {
		a.queue <- event
		return nil
	}
	select {
	case a.queue <- event:
	default:
		slog.Warn("async output queue full, dropping event", "name", event.Name)
	}
	return nil
}

// Close stops accepting writes, waits for the queue to drain (bounded by
// a timeout), and closes the inner output. Subsequent calls return the
// first result.
func (a *Async) Close() error {
	a.closeOnce.Do(func() {
		close(a.queue)
		select {
		case <-a.done:
		case <-time.After(defaultDrainTimeout):
			slog.Warn("async output drain timed out")
		}
		a.closeErr = a.inner.Close()
	})
	return a.closeErr
}

func (a *Async) forward() {
	defer close(a.done)
	for event := range a.queue {
		if err := a.inner.Write(context.Background(), event); err != nil {
			a.onErr(err)
		}
	}
}
