package webhook

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/crimson-sun/anchorlog/internal/model"
	"github.com/crimson-sun/anchorlog/internal/output"
)

// batchServer records every posted batch of events.
type batchServer struct {
	mu      sync.Mutex
	batches [][]model.Event
	fails   int // respond 500 to this many requests first
}

func (s *batchServer) handler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s.mu.Lock()
		defer s.mu.Unlock()
		if s.fails > 0 {
			s.fails--
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		body, _ := io.ReadAll(r.Body)
		var batch []model.Event
		if err := json.Unmarshal(body, &batch); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		s.batches = append(s.batches, batch)
	}
}

func (s *batchServer) recorded() [][]model.Event {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.batches
}

func TestWriteFlushesFullBatches(t *testing.T) {
	bs := &batchServer{}
	srv := httptest.NewServer(bs.handler())
	defer srv.Close()

	out := New(srv.URL, output.Standard, WithBatchSize(2), WithFlushInterval(time.Hour))
	ctx := context.Background()
	for _, name := range []string{"one", "two", "three"} {
		if err := out.Write(ctx, model.Event{Name: name}); err != nil {
			t.Fatalf("Write() error: %v", err)
		}
	}
	if err := out.Close(); err != nil {
		t.Fatalf("Close() error: %v", err)
	}

	batches := bs.recorded()
	if len(batches) != 2 {
		t.Fatalf("got %d batches, want 2", len(batches))
	}
	if len(batches[0]) != 2 || batches[0][0].Name != "one" || batches[0][1].Name != "two" {
		t.Fatalf("first batch = %v", batches[0])
	}
	if len(batches[1]) != 1 || batches[1][0].Name != "three" {
		t.Fatalf("second batch = %v", batches[1])
	}
}

func TestCloseFlushesPartialBatch(t *testing.T) {
	bs := &batchServer{}
	srv := httptest.NewServer(bs.handler())
	defer srv.Close()

	out := New(srv.URL, output.Standard, WithFlushInterval(time.Hour))
	if err := out.Write(context.Background(), model.Event{Name: "only"}); err != nil {
		t.Fatalf("Write() error: %v", err)
	}
	if err := out.Close(); err != nil {
		t.Fatalf("Close() error: %v", err)
	}

	batches := bs.recorded()
	if len(batches) != 1 || len(batches[0]) != 1 {
		t.Fatalf("batches = %v", batches)
	}
}

func TestPostRetriesServerErrors(t *testing.T) {
	bs := &batchServer{fails: 1}
	srv := httptest.NewServer(bs.handler())
	defer srv.Close()

	out := New(srv.URL, output.Standard, WithFlushInterval(time.Hour))
	if err := out.Write(context.Background(), model.Event{Name: "retry-me"}); err != nil {
		t.Fatalf("Write() error: %v", err)
	}
	if err := out.Close(); err != nil {
		t.Fatalf("Close() error: %v", err)
	}

	batches := bs.recorded()
	if len(batches) != 1 || batches[0][0].Name != "retry-me" {
		t.Fatalf("batches = %v", batches)
	}
}

func TestPostGivesUpOnClientError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer srv.Close()

	out := New(srv.URL, output.Standard, WithFlushInterval(time.Hour))
	if err := out.Write(context.Background(), model.Event{Name: "x"}); err != nil {
		t.Fatalf("Write() error: %v", err)
	}
	if err := out.Close(); err == nil {
		t.Fatal("Close() succeeded, want 403 error")
	}
}
