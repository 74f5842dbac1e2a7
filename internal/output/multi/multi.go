// Package multi fans decoded events out to several outputs in order.
package multi

import (
	"context"
	"errors"
	"fmt"

	"github.com/crimson-sun/anchorlog/internal/model"
	"github.com/crimson-sun/anchorlog/internal/output"
)

// Output writes each event to all wrapped outputs, in the order given.
type Output struct {
	outs []output.Output
}

// New creates a fan-out over the given outputs.
func New(outs ...output.Output) *Output {
	return &Output{outs: outs}
}

// Write delivers the event to every output. The first failure stops the
// fan-out and is returned.
func (o *Output) Write(ctx context.Context, event model.Event) error {
	for _, out := range o.outs {
		if err := out.Write(ctx, event); err != nil {
			return fmt.Errorf("multi output: %w", err)
		}
	}
	return nil
}

// Close closes every output and returns the accumulated errors.
func (o *Output) Close() error {
	var errs []error
	for _, out := range o.outs {
		if err := out.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
