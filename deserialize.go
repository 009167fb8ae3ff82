package jsonl

import "encoding/json"

// LineReader is the stream interface shared by Jsonl, FirstLines, LastLines
// and the reader package's scanners: ReadLine returns the next logical line
// or io.EOF at the end of the stream.
type LineReader interface {
	ReadLine() (string, error)
}

// Records decodes each line of a stream into T.
type Records[T any] struct {
	lines LineReader
}

// Deserialize chains a line stream into typed records. Lines arrive in
// whatever order the underlying stream produces them.
func Deserialize[T any](lines LineReader) *Records[T] {
	return &Records[T]{lines: lines}
}

// Values decodes each line into a generic JSON value (map[string]any,
// []any, string, float64, bool or nil).
func Values(lines LineReader) *Records[any] {
	return Deserialize[any](lines)
}

// Next returns the next decoded record. A line that fails to decode yields a
// *DecodeError carrying the raw line; the failure is local to that line and
// the stream continues, so callers can keep calling Next. io.EOF and I/O
// errors from the underlying stream pass through unchanged.
func (r *Records[T]) Next() (T, error) {
	var v T

	line, err := r.lines.ReadLine()
	if err != nil {
		return v, err
	}

	if err := json.Unmarshal([]byte(line), &v); err != nil {
		return v, &DecodeError{Line: line, Err: err}
	}
	return v, nil
}
