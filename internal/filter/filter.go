// Package filter evaluates a caller-supplied predicate expression against
// decoded events before they reach the output sink.
package filter

import (
	"fmt"
	"log/slog"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/crimson-sun/anchorlog/internal/model"
)

// Filter is a pre-compiled event predicate. A nil *Filter matches
// everything, so callers can thread an optional filter without nil checks.
type Filter struct {
	source string
	prog   *vm.Program
}

// New compiles a boolean expression over the environment
// {name, program, data}. An empty expression yields a nil (match-all)
// Filter.
func New(expression string) (*Filter, error) {
	if expression == "" {
		return nil, nil
	}
	prog, err := expr.Compile(expression, expr.AsBool())
	if err != nil {
		return nil, fmt.Errorf("compile filter %q: %w", expression, err)
	}
	return &Filter{source: expression, prog: prog}, nil
}

// Match reports whether the event passes the predicate. Evaluation errors
// reject the event and are logged; the scan continues.
func (f *Filter) Match(ev model.Event) bool {
	if f == nil {
		return true
	}
	env := map[string]any{
		"name":    ev.Name,
		"program": ev.Program,
		"data":    ev.Data,
	}
	out, err := expr.Run(f.prog, env)
	if err != nil {
		slog.Warn("filter evaluation failed", "expr", f.source, "error", err)
		return false
	}
	match, ok := out.(bool)
	return ok && match
}
