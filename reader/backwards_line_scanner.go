package reader

import (
	"bytes"
	"io"
	"strings"
)

// lineTerminators are the bytes that end a logical line. A bare \r is
// accepted as a terminator so sources with mixed line endings still split
// correctly; the empty "line" between the \r and \n of a \r\n pair is
// dropped by the blank-line filter.
const lineTerminators = "\n\r"

// BackwardsLineScanner reconstructs logical lines from a seekable source,
// yielding them in last-to-first order. Lines are lossy UTF-8 decoded and
// trimmed of surrounding whitespace, and blank lines are never surfaced.
//
// Bytes read but not yet resolved into a complete line are carried between
// chunk fetches, so lines longer than the chunk size work; the carry grows
// as needed and is the only unbounded allocation.
//
// A BackwardsLineScanner is not safe for concurrent use.
type BackwardsLineScanner struct {
	reader    *BackwardsReader
	chunkSize int

	// The carry occupies buf[start:end]. Chunks hold older bytes than the
	// carry, so they are prepended: copied into the free space before start,
	// reallocating with room to spare when it runs out.
	buf   []byte
	start int
	end   int

	done bool
}

// NewBackwardsLineScanner returns a scanner over r reading chunks of at most
// chunkSize bytes. A chunkSize <= 0 selects DefaultBufSize. The source is
// not touched until the first ReadLine call.
func NewBackwardsLineScanner(r io.ReadSeeker, chunkSize int) *BackwardsLineScanner {
	if chunkSize <= 0 {
		chunkSize = DefaultBufSize
	}
	return &BackwardsLineScanner{
		reader:    NewBackwardsReader(r, chunkSize),
		chunkSize: chunkSize,
	}
}

// ReadLine returns the next logical line moving backward through the source,
// or io.EOF once the start of the source has been reached and the carry is
// drained. I/O errors are returned as-is; the scanner's cursor is unchanged
// by a failed read, so the caller may call ReadLine again.
func (s *BackwardsLineScanner) ReadLine() (string, error) {
	if s.done {
		return "", io.EOF
	}

	for {
		carry := s.buf[s.start:s.end]

		// Scan for the rightmost terminator still in the carry. Everything
		// after it is the next candidate line. As long as terminators remain
		// in the carry we keep resolving lines without touching the source.
		if idx := bytes.LastIndexAny(carry, lineTerminators); idx >= 0 {
			line := trimLossy(carry[idx+1:])
			s.end = s.start + idx
			if line != "" {
				s.shrink()
				return line, nil
			}
			continue
		}

		chunk, err := s.reader.ReadChunk()
		if err == io.EOF {
			// Start of the source. Whatever is left in the carry is the
			// chronologically first line, which has no terminator before it.
			s.done = true
			line := trimLossy(carry)
			s.buf, s.start, s.end = nil, 0, 0
			if line != "" {
				return line, nil
			}
			return "", io.EOF
		}
		if err != nil {
			return "", err
		}

		s.prepend(chunk)
	}
}

// prepend copies chunk into the free space before the carry, growing the
// backing array when there is not enough. The carry is kept at the tail of
// the array so consecutive prepends amortize to O(1) per byte.
func (s *BackwardsLineScanner) prepend(chunk []byte) {
	if s.start >= len(chunk) {
		copy(s.buf[s.start-len(chunk):s.start], chunk)
		s.start -= len(chunk)
		return
	}

	used := s.end - s.start
	size := 2 * (used + len(chunk))
	if size < 2*s.chunkSize {
		size = 2 * s.chunkSize
	}

	buf := make([]byte, size)
	start := size - used
	copy(buf[start:], s.buf[s.start:s.end])
	start -= len(chunk)
	copy(buf[start:start+len(chunk)], chunk)

	s.buf = buf
	s.start = start
	s.end = size
}

// shrink reallocates the backing array after a long line has been emitted so
// GC can reclaim the grown buffer.
func (s *BackwardsLineScanner) shrink() {
	used := s.end - s.start
	if len(s.buf) <= 2*s.chunkSize || used > s.chunkSize {
		return
	}

	size := 2 * s.chunkSize
	buf := make([]byte, size)
	copy(buf[size-used:], s.buf[s.start:s.end])
	s.buf = buf
	s.start = size - used
	s.end = size
}

// trimLossy decodes raw line bytes the way every line in this package is
// surfaced: malformed UTF-8 is replaced rather than rejected, and
// surrounding whitespace is trimmed.
func trimLossy(b []byte) string {
	return strings.TrimSpace(strings.ToValidUTF8(string(b), "�"))
}
