package reader

import (
	"bufio"
	"io"
)

// Buffer sizing for the underlying bufio.Scanner. Lines longer than
// maxLineSize cannot be read forward (the backwards scanner has no such
// limit, its carry grows as needed).
const (
	initialLineSize = 64 * 1024
	maxLineSize     = 1024 * 1024
)

// ForwardsLineScanner reads logical lines from a source in forward order,
// with the same line semantics as BackwardsLineScanner: lossy UTF-8 decoded,
// whitespace trimmed, blank lines skipped. The source does not need to be
// seekable.
type ForwardsLineScanner struct {
	scanner *bufio.Scanner
	line    string
	err     error
	done    bool
}

func NewForwardsLineScanner(r io.Reader) *ForwardsLineScanner {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, initialLineSize), maxLineSize)
	scanner.Split(bufio.ScanLines)
	return &ForwardsLineScanner{scanner: scanner}
}

// Scan advances to the next non-blank line, skipping blank ones in a loop.
// It returns false once the source is exhausted or a read fails, in which
// case Err reports the failure if any.
func (s *ForwardsLineScanner) Scan() bool {
	if s.done {
		return false
	}

	for s.scanner.Scan() {
		line := trimLossy(s.scanner.Bytes())
		if line != "" {
			s.line = line
			return true
		}
	}

	s.done = true
	s.line = ""
	s.err = s.scanner.Err()
	return false
}

// Text returns the line produced by the last successful Scan.
func (s *ForwardsLineScanner) Text() string {
	return s.line
}

// Err returns the first error encountered while scanning, if any.
func (s *ForwardsLineScanner) Err() error {
	return s.err
}

// ReadLine returns the next logical line, or io.EOF once the source is
// exhausted.
func (s *ForwardsLineScanner) ReadLine() (string, error) {
	if !s.Scan() {
		if s.err != nil {
			return "", s.err
		}
		return "", io.EOF
	}
	return s.line, nil
}

// Count drains the remaining stream and returns the number of non-blank
// lines it held. Line contents are not retained, so counting a large source
// uses constant memory.
func (s *ForwardsLineScanner) Count() (int, error) {
	count := 0
	for s.Scan() {
		count++
	}
	return count, s.err
}
