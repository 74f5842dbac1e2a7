// Package source supplies materialized, ordered transaction log lines to
// the pipeline. Sources are local: fetching logs over the network
// belongs to an RPC layer, not to this engine.
package source

import (
	"context"
	"fmt"
)

// Source loads an ordered sequence of log lines.
type Source interface {
	Load(ctx context.Context) ([]string, error)
}

// Config holds source-specific settings.
type Config struct {
	Kind string // registered source kind: "file", "stdin", "txjson"
	Path string // input path, where applicable
}

// Constructor is a function that creates a new Source from its config.
type Constructor func(cfg Config) (Source, error)

var registry = map[string]Constructor{}

// Register adds a source constructor under the given kind name.
func Register(name string, ctor Constructor) {
	registry[name] = ctor
}

// Get returns the source constructor for the given kind name.
func Get(name string) (Constructor, error) {
	ctor, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("unknown source kind: %s", name)
	}
	return ctor, nil
}

// Kinds returns the names of all registered sources.
func Kinds() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	return names
}

// Slice returns a Source over an in-memory line slice.
func Slice(lines []string) Source {
	return sliceSource(lines)
}

type sliceSource []string

func (s sliceSource) Load(context.Context) ([]string, error) {
	return s, nil
}
