// Package scanner provides a forward-only cursor over an ordered sequence
// of transaction log lines.
package scanner

// Scanner yields lines strictly in input order, one per call. It never
// blocks, reorders, or skips; its only state is the cursor position.
type Scanner struct {
	lines []string
	pos   int
}

// New creates a Scanner over the given lines. The slice is not copied and
// must not be mutated while scanning.
func New(lines []string) *Scanner {
	return &Scanner{lines: lines}
}

// Next returns the next line. ok is false once the input is exhausted.
func (s *Scanner) Next() (line string, ok bool) {
	if s.pos >= len(s.lines) {
		return "", false
	}
	line = s.lines[s.pos]
	s.pos++
	return line, true
}
