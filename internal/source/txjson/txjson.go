// Package txjson extracts the meta.logMessages array from a
// getTransaction-shaped JSON document stored on disk. Both the full RPC
// envelope ({"result": {"meta": ...}}) and a bare result object are
// accepted.
package txjson

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/crimson-sun/anchorlog/internal/source"
)

func init() {
	source.Register("txjson", New)
}

type envelope struct {
	Result *result `json:"result"`
	Meta   *meta   `json:"meta"`
}

type result struct {
	Meta *meta `json:"meta"`
}

type meta struct {
	LogMessages []string `json:"logMessages"`
}

// Source loads log lines from a transaction JSON file.
type Source struct {
	path string
}

// New creates a txjson source. cfg.Path is required.
func New(cfg source.Config) (source.Source, error) {
	if cfg.Path == "" {
		return nil, fmt.Errorf("txjson source: path is required")
	}
	return &Source{path: cfg.Path}, nil
}

func (s *Source) Load(_ context.Context) ([]string, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("txjson source: read %s: %w", s.path, err)
	}

	var env envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, fmt.Errorf("txjson source: parse %s: %w", s.path, err)
	}

	m := env.Meta
	if env.Result != nil && env.Result.Meta != nil {
		m = env.Result.Meta
	}
	if m == nil || m.LogMessages == nil {
		return nil, fmt.Errorf("txjson source: %s has no meta.logMessages", s.path)
	}
	return m.LogMessages, nil
}
