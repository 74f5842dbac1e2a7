package output

import (
	"context"

	"github.com/crimson-sun/anchorlog/internal/model"
)

// Output defines the interface for decoded-event destinations.
type Output interface {
	Write(ctx context.Context, event model.Event) error
	Close() error
}
