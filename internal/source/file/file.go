// Package file reads newline-delimited transaction logs from a local file.
package file

import (
	"context"
	"fmt"
	"os"

	"github.com/crimson-sun/anchorlog/internal/source"
)

func init() {
	source.Register("file", New)
}

// Source loads log lines from a newline-delimited file.
type Source struct {
	path string
}

// New creates a file source. cfg.Path is required.
func New(cfg source.Config) (source.Source, error) {
	if cfg.Path == "" {
		return nil, fmt.Errorf("file source: path is required")
	}
	return &Source{path: cfg.Path}, nil
}

func (s *Source) Load(_ context.Context) ([]string, error) {
	f, err := os.Open(s.path)
	if err != nil {
		return nil, fmt.Errorf("file source: open %s: %w", s.path, err)
	}
	defer f.Close()

	lines, err := source.ReadLines(f)
	if err != nil {
		return nil, fmt.Errorf("file source: %s: %w", s.path, err)
	}
	return lines, nil
}
