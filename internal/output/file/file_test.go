package file

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/crimson-sun/anchorlog/internal/model"
	"github.com/crimson-sun/anchorlog/internal/output"
)

func event(name string) model.Event {
	return model.Event{Name: name, Program: "A"}
}

func TestWriteAppendsNDJSONLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "events.ndjson")
	out, err := New(path, output.Standard)
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}

	ctx := context.Background()
	if err := out.Write(ctx, event("one")); err != nil {
		t.Fatalf("Write() error: %v", err)
	}
	if err := out.Write(ctx, event("two")); err != nil {
		t.Fatalf("Write() error: %v", err)
	}
	if err := out.Close(); err != nil {
		t.Fatalf("Close() error: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2", len(lines))
	}
	var m map[string]any
	if err := json.Unmarshal([]byte(lines[0]), &m); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if m["name"] != "one" {
		t.Fatalf("first line name = %v, want one", m["name"])
	}
}

func TestWriteRotatesAtMaxSize(t *testing.T) {
	path := filepath.Join(t.TempDir(), "events.ndjson")
	out, err := New(path, output.Standard, WithMaxSize(40))
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}

	ctx := context.Background()
	for i := 0; i < 4; i++ {
		if err := out.Write(ctx, event("rotating-event-name")); err != nil {
			t.Fatalf("Write() error: %v", err)
		}
	}
	if err := out.Close(); err != nil {
		t.Fatalf("Close() error: %v", err)
	}

	if _, err := os.Stat(path + ".1"); err != nil {
		t.Fatalf("rotated file missing: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("current file missing: %v", err)
	}
}

func TestNewRejectsUnwritablePath(t *testing.T) {
	if _, err := New(filepath.Join(t.TempDir(), "no", "such", "dir", "x"), output.Standard); err == nil {
		t.Fatal("New() on unwritable path succeeded")
	}
}
