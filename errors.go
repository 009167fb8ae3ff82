package jsonl

import (
	"fmt"

	"github.com/gpmcp/async-jsonl/utils"
)

// errLineWidth caps how much of an offending line a DecodeError quotes, in
// display cells, so one bad multi-megabyte record doesn't flood a log.
const errLineWidth = 120

// DecodeError reports a line that could not be decoded. It is local to that
// line: the stream it came from remains usable.
type DecodeError struct {
	// Line is the raw logical line that failed to decode.
	Line string
	Err  error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("failed to parse JSON line %q: %v", utils.Truncate(e.Line, errLineWidth), e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}
