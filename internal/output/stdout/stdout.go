// Package stdout writes decoded events to standard output as NDJSON.
package stdout

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/crimson-sun/anchorlog/internal/model"
	"github.com/crimson-sun/anchorlog/internal/output"
)

// Output JSON-encodes events to a writer, one per line.
type Output struct {
	verbosity output.Verbosity
	enc       *json.Encoder
}

// New creates an Output over os.Stdout.
func New(verbosity output.Verbosity, pretty bool) *Output {
	return NewWriter(os.Stdout, verbosity, pretty)
}

// NewWriter creates an Output over an arbitrary writer.
func NewWriter(w io.Writer, verbosity output.Verbosity, pretty bool) *Output {
	enc := json.NewEncoder(w)
	if pretty {
		enc.SetIndent("", "  ")
	}
	return &Output{verbosity: verbosity, enc: enc}
}

func (o *Output) Write(_ context.Context, event model.Event) error {
	if err := o.enc.Encode(output.FormatEvent(event, o.verbosity)); err != nil {
		return fmt.Errorf("stdout output: %w", err)
	}
	return nil
}

func (o *Output) Close() error {
	return nil
}
