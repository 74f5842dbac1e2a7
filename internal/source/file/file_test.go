package file

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/crimson-sun/anchorlog/internal/source"
)

func TestLoadReadsLinesInOrder(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs.txt")
	content := "Program A invoke [1]\r\nProgram log: aGk=\nProgram A success\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	src, err := New(source.Config{Path: path})
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	lines, err := src.Load(context.Background())
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	want := []string{"Program A invoke [1]", "Program log: aGk=", "Program A success"}
	if len(lines) != len(want) {
		t.Fatalf("got %d lines, want %d", len(lines), len(want))
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Fatalf("lines[%d] = %q, want %q", i, lines[i], want[i])
		}
	}
}

func TestNewRequiresPath(t *testing.T) {
	if _, err := New(source.Config{}); err == nil {
		t.Fatal("New() without path succeeded")
	}
}

func TestLoadMissingFile(t *testing.T) {
	src, err := New(source.Config{Path: filepath.Join(t.TempDir(), "missing.txt")})
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	if _, err := src.Load(context.Background()); err == nil {
		t.Fatal("Load() on missing file succeeded")
	}
}
