// Package engine reconstructs the cross-program invocation stack from an
// ordered sequence of transaction log lines and extracts the events a
// single target program emitted during its own execution.
//
// The parser is a two-state machine keyed on the top of the execution
// stack: while the target program is executing, authored-message lines are
// payload-decoded; while any other program is executing, they are not.
package engine

import (
	"errors"
	"fmt"

	"github.com/crimson-sun/anchorlog/internal/decoder"
	"github.com/crimson-sun/anchorlog/internal/engine/classifier"
	"github.com/crimson-sun/anchorlog/internal/engine/scanner"
	"github.com/crimson-sun/anchorlog/internal/model"
)

var (
	// ErrMalformedLog reports input that does not fit the required log
	// shape: an empty sequence, a first line that announces no invocation,
	// or (in strict mode) a mid-stream line outside the grammar.
	ErrMalformedLog = errors.New("malformed program log")

	// ErrEmptyStack reports an invocation end with no open invocation.
	ErrEmptyStack = errors.New("execution stack is empty")
)

// Sink receives decoded events one at a time, synchronously, in line order.
type Sink func(model.Event)

// Parser extracts one target program's events from transaction logs.
// It holds no mutable state across calls; a Parser is safe for concurrent
// use as long as its decoder is stateless and re-entrant.
type Parser struct {
	programID string
	decoder   decoder.Decoder
	strict    bool
}

// Option configures a Parser.
type Option func(*Parser)

// WithStrict makes mid-stream lines that fall outside the log grammar
// fatal (ErrMalformedLog) instead of silently unrelated. The lenient
// default tolerates authored messages and free-form text from other
// programs; strict mode restores the reference behavior.
func WithStrict() Option {
	return func(p *Parser) { p.strict = true }
}

// New creates a Parser for the given target program identifier. The
// identifier is treated as an opaque string; dec supplies the decode
// capability consulted for each authored-message payload.
func New(programID string, dec decoder.Decoder, opts ...Option) *Parser {
	p := &Parser{programID: programID, decoder: dec}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Parse scans the ordered log lines and invokes sink once per decoded
// event, before the next line is processed. The first line must announce
// the outermost invocation. Stack-integrity failures abort the scan;
// events already delivered stay delivered.
func (p *Parser) Parse(logs []string, sink Sink) error {
	sc := scanner.New(logs)
	first, ok := sc.Next()
	if !ok {
		return fmt.Errorf("empty log sequence: %w", ErrMalformedLog)
	}
	stack, err := newExecutionStack(first)
	if err != nil {
		return err
	}

	for line, ok := sc.Next(); ok; line, ok = sc.Next() {
		var res classifier.Result
		if cur, err := stack.current(); err == nil && cur == p.programID {
			res = classifier.ClassifyTarget(line, p.programID)
		} else {
			res = classifier.ClassifySystem(line, p.programID)
		}

		switch res.Kind {
		case classifier.Data:
			if ev, ok := p.decoder.Decode(res.Payload); ok {
				ev.Program = p.programID
				sink(ev)
			}
		case classifier.Invoke:
			stack.push(res.Program)
		case classifier.Complete:
			if err := stack.pop(); err != nil {
				return fmt.Errorf("completion line %q: %w", line, err)
			}
		case classifier.Malformed:
			if p.strict {
				return fmt.Errorf("line %q: %w", line, ErrMalformedLog)
			}
		}
	}
	return nil
}
