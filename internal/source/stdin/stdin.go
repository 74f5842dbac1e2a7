// Package stdin reads newline-delimited transaction logs from standard
// input.
package stdin

import (
	"context"
	"io"
	"os"

	"github.com/crimson-sun/anchorlog/internal/source"
)

func init() {
	source.Register("stdin", New)
}

// Source loads log lines from an io.Reader, os.Stdin by default.
type Source struct {
	r io.Reader
}

// New creates a stdin source.
func New(source.Config) (source.Source, error) {
	return &Source{r: os.Stdin}, nil
}

func (s *Source) Load(_ context.Context) ([]string, error) {
	return source.ReadLines(s.r)
}
