// Package pipeline connects a line source, the event parser, an optional
// filter, and an output sink.
package pipeline

import (
	"context"
	"fmt"

	"github.com/crimson-sun/anchorlog/internal/engine"
	"github.com/crimson-sun/anchorlog/internal/filter"
	"github.com/crimson-sun/anchorlog/internal/model"
	"github.com/crimson-sun/anchorlog/internal/output"
	"github.com/crimson-sun/anchorlog/internal/source"
)

// Pipeline runs the scan stages in order: load, parse, filter, write.
type Pipeline struct {
	source source.Source
	parser *engine.Parser
	filter *filter.Filter // nil = match all
	out    output.Output
}

// Stats summarizes one pipeline run.
type Stats struct {
	Lines    int // log lines scanned
	Events   int // events delivered to the output
	Filtered int // events rejected by the filter
}

// New creates a Pipeline from the given components. f may be nil.
func New(src source.Source, parser *engine.Parser, f *filter.Filter, out output.Output) *Pipeline {
	return &Pipeline{
		source: src,
		parser: parser,
		filter: f,
		out:    out,
	}
}

// Run loads the lines and scans them, writing each decoded event to the
// output synchronously, in line order. The first output failure stops
// event delivery; the scan itself still runs to completion or parse error.
func (p *Pipeline) Run(ctx context.Context) (Stats, error) {
	lines, err := p.source.Load(ctx)
	if err != nil {
		return Stats{}, fmt.Errorf("pipeline load: %w", err)
	}

	stats := Stats{Lines: len(lines)}
	var writeErr error
	err = p.parser.Parse(lines, func(ev model.Event) {
		if writeErr != nil {
			return
		}
		if !p.filter.Match(ev) {
			stats.Filtered++
			return
		}
		if err := p.out.Write(ctx, ev); err != nil {
			writeErr = err
			return
		}
		stats.Events++
	})
	if err != nil {
		return stats, fmt.Errorf("pipeline parse: %w", err)
	}
	if writeErr != nil {
		return stats, fmt.Errorf("pipeline output: %w", writeErr)
	}
	return stats, nil
}

// Close shuts down the output.
func (p *Pipeline) Close() error {
	return p.out.Close()
}
