package engine

import (
	"fmt"
	"strings"
)

// executionStack models the nested cross-program invocation stack as an
// ordered sequence of program identifiers, innermost frame last. It is
// owned by a single Parse call and never shared.
type executionStack struct {
	frames []string
}

// newExecutionStack seeds the stack from the first log line, which must
// announce the outermost invocation: "Program <id> invoke [". Anything
// else rejects the whole input before any line is processed.
func newExecutionStack(first string) (*executionStack, error) {
	_, rest, found := strings.Cut(first, "Program ")
	if !found {
		return nil, fmt.Errorf("first line %q has no program invocation: %w", first, ErrMalformedLog)
	}
	program, _, found := strings.Cut(rest, " invoke [")
	if !found || program == "" {
		return nil, fmt.Errorf("first line %q has no program invocation: %w", first, ErrMalformedLog)
	}
	return &executionStack{frames: []string{program}}, nil
}

// current returns the innermost frame's identifier.
func (s *executionStack) current() (string, error) {
	if len(s.frames) == 0 {
		return "", ErrEmptyStack
	}
	return s.frames[len(s.frames)-1], nil
}

func (s *executionStack) push(program string) {
	s.frames = append(s.frames, program)
}

// pop removes the innermost frame. Popping an empty stack indicates a
// classification bug or a log that does not nest as announced; it is
// surfaced, not swallowed.
func (s *executionStack) pop() error {
	if len(s.frames) == 0 {
		return ErrEmptyStack
	}
	s.frames = s.frames[:len(s.frames)-1]
	return nil
}

func (s *executionStack) depth() int {
	return len(s.frames)
}
