package jsonl

import (
	"encoding/json"
	"fmt"

	"github.com/itchyny/gojq"
)

// Query runs a jq expression over every decoded line of a stream, emitting
// each query output in order. Expressions producing multiple outputs per
// line (e.g. ".items[]") emit them all before the next line is read.
type Query struct {
	code    *gojq.Code
	lines   LineReader
	pending []any
}

// NewQuery compiles expr and binds it to a line stream.
func NewQuery(expr string, lines LineReader) (*Query, error) {
	parsed, err := gojq.Parse(expr)
	if err != nil {
		return nil, fmt.Errorf("failed to parse query %q: %w", expr, err)
	}

	code, err := gojq.Compile(parsed)
	if err != nil {
		return nil, fmt.Errorf("failed to compile query %q: %w", expr, err)
	}

	return &Query{code: code, lines: lines}, nil
}

// Next returns the next query output. Decode failures and query errors are
// local to the line that caused them: the error is returned, that line's
// outputs are dropped, and the stream continues. io.EOF and I/O errors pass
// through unchanged.
func (q *Query) Next() (any, error) {
	for {
		if len(q.pending) > 0 {
			v := q.pending[0]
			q.pending = q.pending[1:]
			return v, nil
		}

		line, err := q.lines.ReadLine()
		if err != nil {
			return nil, err
		}

		var v any
		if err := json.Unmarshal([]byte(line), &v); err != nil {
			return nil, &DecodeError{Line: line, Err: err}
		}

		var outputs []any
		iter := q.code.Run(v)
		for {
			out, ok := iter.Next()
			if !ok {
				break
			}
			if err, ok := out.(error); ok {
				return nil, fmt.Errorf("query failed: %w", err)
			}
			outputs = append(outputs, out)
		}

		// A query may legitimately produce no outputs for a line (e.g. a
		// select() that rejects it); move on to the next line.
		q.pending = outputs
	}
}
