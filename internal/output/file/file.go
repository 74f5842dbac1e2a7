// Package file appends decoded events to an NDJSON log file. Writes go
// through a buffer; an optional size limit moves the full file aside to
// <path>.1 and restarts on a fresh one.
package file

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sync"

	"github.com/crimson-sun/anchorlog/internal/model"
	"github.com/crimson-sun/anchorlog/internal/output"
)

const defaultBufSize = 64 * 1024

// Option configures a file Output.
type Option func(*Output)

// WithMaxSize sets the size limit (bytes) that triggers rotation.
// 0 (default) never rotates.
func WithMaxSize(limit int64) Option {
	return func(o *Output) { o.limit = limit }
}

// WithBufSize sets the write buffer size. Default: 64KB.
func WithBufSize(n int) Option {
	return func(o *Output) { o.bufSize = n }
}

// Output appends NDJSON records to a file. Safe for concurrent writers.
type Output struct {
	mu        sync.Mutex
	path      string
	verbosity output.Verbosity
	limit     int64
	bufSize   int

	file *os.File
	buf  *bufio.Writer
	size int64
}

// New opens (or creates) the file at path for appending.
func New(path string, verbosity output.Verbosity, opts ...Option) (*Output, error) {
	o := &Output{path: path, verbosity: verbosity, bufSize: defaultBufSize}
	for _, opt := range opts {
		opt(o)
	}
	if err := o.open(); err != nil {
		return nil, err
	}
	return o, nil
}

// Write appends the event as one JSON line, rotating first if the line
// would push the file past the size limit.
func (o *Output) Write(_ context.Context, event model.Event) error {
	record, err := json.Marshal(output.FormatEvent(event, o.verbosity))
	if err != nil {
		return fmt.Errorf("file output: marshal: %w", err)
	}
	record = append(record, '\n')

	o.mu.Lock()
	defer o.mu.Unlock()

	if o.limit > 0 && o.size+int64(len(record)) > o.limit {
		if err := o.rotate(); err != nil {
			return fmt.Errorf("file output: rotate: %w", err)
		}
	}
	n, err := o.buf.Write(record)
	o.size += int64(n)
	if err != nil {
		return fmt.Errorf("file output: write: %w", err)
	}
	return nil
}

// Close flushes the buffer and closes the file.
func (o *Output) Close() error {
	o.mu.Lock()
	defer o.mu.Unlock()
	if err := o.buf.Flush(); err != nil {
		o.file.Close()
		return fmt.Errorf("file output: flush: %w", err)
	}
	return o.file.Close()
}

// open prepares the append target. The size counter seeds from the
// existing file so rotation accounts for prior runs.
func (o *Output) open() error {
	f, err := os.OpenFile(o.path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return fmt.Errorf("file output: open %s: %w", o.path, err)
	}
	info, err := f.Stat()
	if err != nil {
		f.Close()
		return fmt.Errorf("file output: stat %s: %w", o.path, err)
	}
	o.file = f
	o.buf = bufio.NewWriterSize(f, o.bufSize)
	o.size = info.Size()
	return nil
}

// rotate moves the full file to <path>.1, overwriting any previous
// rotation, and reopens a fresh file.
func (o *Output) rotate() error {
	if err := o.buf.Flush(); err != nil {
		return err
	}
	if err := o.file.Close(); err != nil {
		return err
	}
	if err := os.Rename(o.path, o.path+".1"); err != nil {
		return err
	}
	return o.open()
}
