// Package webhook POSTs batched decoded events to an HTTP endpoint as a
// JSON array.
package webhook

import (
	"context"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/crimson-sun/anchorlog/internal/model"
	"github.com/crimson-sun/anchorlog/internal/output"
)

const (
	defaultBatchSize     = 50
	defaultFlushInterval = 5 * time.Second
	defaultTimeout       = 10 * time.Second
)

// Option configures a webhook Output.
type Option func(*Output)

// WithHeaders sets custom HTTP headers sent with every POST.
func WithHeaders(h map[string]string) Option {
	return func(o *Output) { o.client.headers = h }
}

// WithBatchSize sets the number of events accumulated before a flush.
// Default: 50.
func WithBatchSize(n int) Option {
	return func(o *Output) { o.batchSize = n }
}

// WithFlushInterval sets the maximum time between flushes. Default: 5s.
func WithFlushInterval(d time.Duration) Option {
	return func(o *Output) { o.flushInterval = d }
}

// WithTimeout sets the HTTP client timeout. Default: 10s.
func WithTimeout(d time.Duration) Option {
	return func(o *Output) { o.client.httpClient.Timeout = d }
}

// WithOnError sets a callback for timer-triggered flush failures.
// Default: logs a warning via slog.
func WithOnError(f func(error)) Option {
	return func(o *Output) { o.onErr = f }
}

// Output accumulates formatted events and POSTs them as a JSON array
// once the batch fills or the flush interval elapses, whichever comes
// first. Transient HTTP failures are retried by the underlying client.
type Output struct {
	client        *postClient
	verbosity     output.Verbosity
	batchSize     int
	flushInterval time.Duration
	onErr         func(error)

	mu    sync.Mutex
	batch []model.Event
	timer *time.Timer
}

// New creates a webhook output targeting the given URL.
func New(url string, verbosity output.Verbosity, opts ...Option) *Output {
	o := &Output{
		client: &postClient{
			httpClient: &http.Client{Timeout: defaultTimeout},
			url:        url,
		},
		verbosity:     verbosity,
		batchSize:     defaultBatchSize,
		flushInterval: defaultFlushInterval,
		onErr:         func(err error) { slog.Warn("webhook flush error", "error", err) },
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// Write adds the event to the batch. The first event of a batch arms a
// timer so a never-filling batch still flushes; a full batch flushes
// inline and surfaces the POST error to the caller.
func (o *Output) Write(ctx context.Context, event model.Event) error {
	o.mu.Lock()
	defer o.mu.Unlock()

	o.batch = append(o.batch, output.FormatEvent(event, o.verbosity))
	if len(o.batch) == 1 {
		o.timer = time.AfterFunc(o.flushInterval, func() {
			if err := o.Flush(context.Background()); err != nil {
				o.onErr(err)
			}
		})
	}
	if len(o.batch) >= o.batchSize {
		return o.flushLocked(ctx)
	}
	return nil
}

// Flush POSTs any batched events immediately.
func (o *Output) Flush(ctx context.Context) error {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.flushLocked(ctx)
}

// Close flushes the remaining batch.
func (o *Output) Close() error {
	return o.Flush(context.Background())
}

// flushLocked disarms the timer, takes the batch, and POSTs it. Caller
// holds o.mu.
func (o *Output) flushLocked(ctx context.Context) error {
	if o.timer != nil {
		o.timer.Stop()
		o.timer = nil
	}
	if len(o.batch) == 0 {
		return nil
	}
	batch := o.batch
	o.batch = nil
	return o.client.postJSON(ctx, batch)
}
