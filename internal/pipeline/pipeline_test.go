package pipeline

import (
	"context"
	"encoding/base64"
	"errors"
	"testing"

	"github.com/crimson-sun/anchorlog/internal/decoder"
	"github.com/crimson-sun/anchorlog/internal/engine"
	"github.com/crimson-sun/anchorlog/internal/filter"
	"github.com/crimson-sun/anchorlog/internal/model"
	"github.com/crimson-sun/anchorlog/internal/output"
	"github.com/crimson-sun/anchorlog/internal/source"
)

var _ output.Output = (*collector)(nil)

type collector struct {
	events []model.Event
	err    error
	closed bool
}

func (c *collector) Write(_ context.Context, ev model.Event) error {
	if c.err != nil {
		return c.err
	}
	c.events = append(c.events, ev)
	return nil
}

func (c *collector) Close() error {
	c.closed = true
	return nil
}

func b64(s string) string {
	return base64.StdEncoding.EncodeToString([]byte(s))
}

// nameDecoder emits every payload as an event named by its bytes.
var nameDecoder = decoder.Func(func(payload []byte) (model.Event, bool) {
	return model.Event{Name: string(payload)}, true
})

func testLogs() []string {
	return []string{
		"Program A invoke [1]",
		"Program log: " + b64("keep"),
		"Program log: " + b64("drop"),
		"Program log: " + b64("keep"),
		"Program A success",
	}
}

func TestRunDeliversFilteredEvents(t *testing.T) {
	f, err := filter.New(`name == "keep"`)
	if err != nil {
		t.Fatalf("filter.New() error: %v", err)
	}
	out := &collector{}
	p := New(source.Slice(testLogs()), engine.New("A", nameDecoder), f, out)

	stats, err := p.Run(context.Background())
	if err != nil {
		t.Fatalf("Run() error: %v", err)
	}

	if stats.Lines != 5 {
		t.Fatalf("Stats.Lines = %d, want 5", stats.Lines)
	}
	if stats.Events != 2 {
		t.Fatalf("Stats.Events = %d, want 2", stats.Events)
	}
	if stats.Filtered != 1 {
		t.Fatalf("Stats.Filtered = %d, want 1", stats.Filtered)
	}
	if len(out.events) != 2 {
		t.Fatalf("got %d written events, want 2", len(out.events))
	}
	for _, ev := range out.events {
		if ev.Name != "keep" {
			t.Fatalf("written event %q, want keep", ev.Name)
		}
	}
}

func TestRunWithoutFilter(t *testing.T) {
	out := &collector{}
	p := New(source.Slice(testLogs()), engine.New("A", nameDecoder), nil, out)

	stats, err := p.Run(context.Background())
	if err != nil {
		t.Fatalf("Run() error: %v", err)
	}
	if stats.Events != 3 || stats.Filtered != 0 {
		t.Fatalf("stats = %+v, want 3 events, 0 filtered", stats)
	}
}

func TestRunPropagatesParseError(t *testing.T) {
	out := &collector{}
	p := New(source.Slice([]string{"not a log"}), engine.New("A", nameDecoder), nil, out)

	_, err := p.Run(context.Background())
	if !errors.Is(err, engine.ErrMalformedLog) {
		t.Fatalf("Run() error = %v, want ErrMalformedLog", err)
	}
}

func TestRunPropagatesSourceError(t *testing.T) {
	failing := sourceFunc(func(context.Context) ([]string, error) {
		return nil, errors.New("disk gone")
	})
	p := New(failing, engine.New("A", nameDecoder), nil, &collector{})
	if _, err := p.Run(context.Background()); err == nil {
		t.Fatal("Run() succeeded, want source error")
	}
}

func TestRunPropagatesOutputError(t *testing.T) {
	out := &collector{err: errors.New("sink closed")}
	p := New(source.Slice(testLogs()), engine.New("A", nameDecoder), nil, out)

	stats, err := p.Run(context.Background())
	if err == nil {
		t.Fatal("Run() succeeded, want output error")
	}
	if stats.Events != 0 {
		t.Fatalf("Stats.Events = %d, want 0", stats.Events)
	}
}

func TestCloseClosesOutput(t *testing.T) {
	out := &collector{}
	p := New(source.Slice(nil), engine.New("A", nameDecoder), nil, out)
	if err := p.Close(); err != nil {
		t.Fatalf("Close() error: %v", err)
	}
	if !out.closed {
		t.Fatal("output not closed")
	}
}

type sourceFunc func(ctx context.Context) ([]string, error)

func (f sourceFunc) Load(ctx context.Context) ([]string, error) {
	return f(ctx)
}
