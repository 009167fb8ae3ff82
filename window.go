package jsonl

import (
	"io"

	"github.com/gpmcp/async-jsonl/reader"
)

// FirstN bounds the stream to its first n non-blank lines, in source order.
// The window shares the Jsonl's forward scanner, so it picks up wherever the
// stream currently is.
func (j *Jsonl) FirstN(n int) *FirstLines {
	return &FirstLines{
		scanner:   j.scanner,
		remaining: n,
	}
}

// LastN returns a window over the last n non-blank lines of the source,
// yielding the very last line first. Callers wanting chronological order
// collect the window and reverse it explicitly.
//
// The window is driven lazily: the source is read backward from its end one
// chunk at a time, only as far as the consumed lines require. LastN fails if
// the source is not seekable. The source's size is captured on the first
// read and the window does not observe later appends.
func (j *Jsonl) LastN(n int) (*LastLines, error) {
	rs, err := j.seeker()
	if err != nil {
		return nil, err
	}

	return &LastLines{
		scanner:   reader.NewBackwardsLineScanner(rs, j.bufSize),
		remaining: n,
	}, nil
}

// FirstLines is a bounded forward window of at most n non-blank lines.
type FirstLines struct {
	scanner   *reader.ForwardsLineScanner
	remaining int
}

// ReadLine returns the next line of the window, or io.EOF once n lines have
// been produced or the source ran out first.
func (l *FirstLines) ReadLine() (string, error) {
	if l.remaining <= 0 {
		return "", io.EOF
	}

	line, err := l.scanner.ReadLine()
	if err != nil {
		return "", err
	}

	l.remaining--
	return line, nil
}

// Collect drains the window into a slice in source order.
func (l *FirstLines) Collect() ([]string, error) {
	return collect(l)
}

// LastLines is a bounded window over the tail of a source: at most n
// non-blank lines, last line first.
type LastLines struct {
	scanner   *reader.BackwardsLineScanner
	remaining int
}

// ReadLine returns the next line of the window moving backward through the
// source, or io.EOF once n lines have been produced or the start of the
// source was reached first.
func (l *LastLines) ReadLine() (string, error) {
	if l.remaining <= 0 {
		return "", io.EOF
	}

	line, err := l.scanner.ReadLine()
	if err != nil {
		return "", err
	}

	l.remaining--
	return line, nil
}

// Collect drains the window into a slice in emission order, i.e. the last
// line of the source first.
func (l *LastLines) Collect() ([]string, error) {
	return collect(l)
}

func collect(lines LineReader) ([]string, error) {
	var out []string
	for {
		line, err := lines.ReadLine()
		if err == io.EOF {
			return out, nil
		}
		if err != nil {
			return out, err
		}
		out = append(out, line)
	}
}
