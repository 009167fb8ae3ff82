package reader

import (
	"fmt"
	"io"
)

// DefaultBufSize is the chunk capacity used when none is given.
const DefaultBufSize = 8192

// BackwardsReader reads a seekable source in fixed-size chunks, moving from
// the end of the source toward its start. It owns a single chunk buffer, so
// memory use is bounded regardless of source size.
//
// A BackwardsReader is not safe for concurrent use. Independent readers over
// independent handles to the same source may run concurrently.
type BackwardsReader struct {
	r           io.ReadSeeker
	buf         []byte
	pos         int64
	size        int64
	initialized bool
}

// NewBackwardsReader returns a reader that will produce chunks of at most
// capacity bytes. A capacity <= 0 selects DefaultBufSize. The source's size
// is not queried until the first read.
func NewBackwardsReader(r io.ReadSeeker, capacity int) *BackwardsReader {
	if capacity <= 0 {
		capacity = DefaultBufSize
	}
	return &BackwardsReader{
		r:   r,
		buf: make([]byte, capacity),
	}
}

// init seeks to the end of the source to learn its total size and positions
// the cursor there. It runs once; later calls are no-ops. The size is assumed
// immutable for the lifetime of the reader.
func (b *BackwardsReader) init() error {
	if b.initialized {
		return nil
	}

	size, err := b.r.Seek(0, io.SeekEnd)
	if err != nil {
		return fmt.Errorf("failed to seek to end of source: %w", err)
	}

	b.size = size
	b.pos = size
	b.initialized = true
	return nil
}

// Size returns the total size of the source, initializing the reader if
// needed.
func (b *BackwardsReader) Size() (int64, error) {
	if err := b.init(); err != nil {
		return 0, err
	}
	return b.size, nil
}

// Position returns the absolute offset of the first byte not yet returned by
// ReadChunk. It is 0 once the reader is exhausted, and equal to the source
// size before the first read.
func (b *BackwardsReader) Position() int64 {
	return b.pos
}

// ReadChunk reads the next chunk moving backward through the source. The
// returned bytes are in forward file order and alias the reader's internal
// buffer: they are only valid until the next call. ReadChunk returns io.EOF
// once the start of the source is reached.
//
// Short reads are retried until the chunk is full; a zero-byte read before
// that point means the source ended early and yields io.ErrUnexpectedEOF.
// The cursor only advances after a fully successful read, so a failed call
// leaves the reader where it was.
func (b *BackwardsReader) ReadChunk() ([]byte, error) {
	if err := b.init(); err != nil {
		return nil, err
	}

	if b.pos == 0 {
		return nil, io.EOF
	}

	readLen := int64(len(b.buf))
	if b.pos < readLen {
		readLen = b.pos
	}

	if _, err := b.r.Seek(b.pos-readLen, io.SeekStart); err != nil {
		return nil, fmt.Errorf("failed to seek to offset %d: %w", b.pos-readLen, err)
	}

	total := 0
	for total < int(readLen) {
		n, err := b.r.Read(b.buf[total:readLen])
		total += n
		if total == int(readLen) {
			break
		}
		if err == io.EOF || (err == nil && n == 0) {
			// The source claims to end before the size we measured at
			// initialization. It must have shrunk underneath us.
			return nil, io.ErrUnexpectedEOF
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read %d bytes at offset %d: %w", readLen, b.pos-readLen, err)
		}
	}

	b.pos -= readLen
	return b.buf[:readLen], nil
}
