package source

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/unicode/norm"
)

const maxLineSize = 1024 * 1024 // 1MB, well above any real log record

// ReadLines consumes r line by line, stripping trailing carriage returns
// and applying NFC normalization so that literal substring matches hold
// regardless of the producer's unicode form.
func ReadLines(r io.Reader) ([]string, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	var lines []string
	for sc.Scan() {
		line := strings.TrimSuffix(sc.Text(), "\r")
		lines = append(lines, norm.NFC.String(line))
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read lines: %w", err)
	}
	return lines, nil
}
