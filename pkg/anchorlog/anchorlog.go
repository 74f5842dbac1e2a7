package anchorlog

import (
	"errors"

	"github.com/crimson-sun/anchorlog/internal/decoder"
	"github.com/crimson-sun/anchorlog/internal/engine"
)

// Sentinel errors returned by ParseLogs. Match with errors.Is.
var (
	// ErrMalformedLog reports input that does not fit the required log
	// shape: an empty sequence, a first line announcing no invocation, or
	// (with WithStrict) a mid-stream line outside the grammar.
	ErrMalformedLog = engine.ErrMalformedLog

	// ErrEmptyStack reports an invocation end with no open invocation.
	ErrEmptyStack = engine.ErrEmptyStack
)

// Parser extracts one program's events from transaction log sequences.
type Parser struct {
	engine *engine.Parser
}

// New creates a Parser for the given target program identifier. The
// identifier is compared as an opaque string against the log lines.
func New(programID string, opts ...Option) (*Parser, error) {
	if programID == "" {
		return nil, errors.New("anchorlog: program id is required")
	}

	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	dec := o.decoder
	if dec == nil {
		reg := decoder.NewRegistry()
		for _, ev := range o.events {
			reg.Register(ev.name, ev.proto)
		}
		dec = reg
	}

	var engineOpts []engine.Option
	if o.strict {
		engineOpts = append(engineOpts, engine.WithStrict())
	}
	return &Parser{engine: engine.New(programID, dec, engineOpts...)}, nil
}

// ParseLogs scans the ordered log lines and invokes fn once per decoded
// event, synchronously, in line order. Events delivered before an error
// stay delivered.
func (p *Parser) ParseLogs(logs []string, fn func(Event)) error {
	return p.engine.Parse(logs, engine.Sink(fn))
}
