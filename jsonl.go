// Package jsonl reads line-delimited JSON from byte sources of arbitrary
// size, forward or backward, without buffering whole files.
//
// A Jsonl streams the non-blank lines of a source in order. FirstN and LastN
// bound the stream to a head or tail window, and Deserialize chains any line
// stream into typed records. The tail side is backed by a chunked backward
// reader (see the reader package), so taking the last lines of a very large
// file reads only as much of its end as needed.
package jsonl

import (
	"errors"
	"fmt"
	"io"

	"github.com/gpmcp/async-jsonl/reader"
	"github.com/spf13/afero"
)

// Jsonl reads the non-blank logical lines of a source in forward order. Each
// line is lossy UTF-8 decoded and trimmed of surrounding whitespace; blank
// lines are never surfaced.
//
// A Jsonl is not safe for concurrent use.
type Jsonl struct {
	src     io.Reader
	scanner *reader.ForwardsLineScanner
	bufSize int
	closer  io.Closer
}

// New returns a Jsonl over r with the default chunk size. Forward reads work
// on any io.Reader; LastN additionally needs r to be an io.ReadSeeker.
func New(r io.Reader) *Jsonl {
	return NewSize(r, reader.DefaultBufSize)
}

// NewSize is like New but sets the chunk size used for backward reads. The
// chunk size affects performance only, never which lines are produced.
func NewSize(r io.Reader, bufSize int) *Jsonl {
	if bufSize <= 0 {
		bufSize = reader.DefaultBufSize
	}
	return &Jsonl{
		src:     r,
		scanner: reader.NewForwardsLineScanner(r),
		bufSize: bufSize,
	}
}

// FromPath opens the file at path on the OS filesystem. The caller owns the
// returned Jsonl and should Close it.
func FromPath(path string) (*Jsonl, error) {
	return FromPathFs(afero.NewOsFs(), path)
}

// FromPathFs opens the file at path on the given filesystem. Passing an
// in-memory filesystem keeps tests and embedders off the disk.
func FromPathFs(fsys afero.Fs, path string) (*Jsonl, error) {
	f, err := fsys.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}

	j := New(f)
	j.closer = f
	return j, nil
}

// ReadLine returns the next logical line of the source, or io.EOF once it is
// exhausted.
func (j *Jsonl) ReadLine() (string, error) {
	return j.scanner.ReadLine()
}

// Count drains the remaining stream and returns the number of non-blank
// lines it held, retaining none of them.
func (j *Jsonl) Count() (int, error) {
	return j.scanner.Count()
}

// Close releases a source opened by FromPath or FromPathFs. It is a no-op
// for a Jsonl constructed over a caller-owned reader.
func (j *Jsonl) Close() error {
	if j.closer == nil {
		return nil
	}
	return j.closer.Close()
}

// seeker returns the underlying source as an io.ReadSeeker, which backward
// reads require.
func (j *Jsonl) seeker() (io.ReadSeeker, error) {
	rs, ok := j.src.(io.ReadSeeker)
	if !ok {
		return nil, errors.New("source is not seekable, cannot read it backwards")
	}
	return rs, nil
}
