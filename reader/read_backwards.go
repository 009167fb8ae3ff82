package reader

import "io"

// BackwardsReadResult describes a single backward read: N is the number of
// bytes placed in the buffer and NextPos is the absolute offset the read
// started from, i.e. where the next backward read should end.
type BackwardsReadResult struct {
	N       int
	NextPos int64
}

// ReadBackwards reads up to len(buf) bytes ending at the reader's current
// seek position. The bytes are returned in forward file order.
func ReadBackwards(r io.ReadSeeker, buf []byte) (BackwardsReadResult, error) {
	pos, err := r.Seek(0, io.SeekCurrent)
	if err != nil {
		return BackwardsReadResult{0, 0}, err
	}

	return ReadBackwardsFrom(r, pos, buf)
}

// ReadBackwardsFrom reads up to len(buf) bytes ending at fromPos. The read is
// capped at the start of the source, so fewer bytes than requested may be
// read even on success. A single Read call is issued; short reads are
// reflected in the result, not retried.
func ReadBackwardsFrom(r io.ReadSeeker, fromPos int64, buf []byte) (BackwardsReadResult, error) {
	if fromPos < 0 {
		panic("fromPos must be non-negative")
	}

	toRead := int64(len(buf))
	if fromPos < toRead {
		toRead = fromPos
	}
	if toRead == 0 {
		return BackwardsReadResult{0, fromPos}, nil
	}

	if _, err := r.Seek(fromPos-toRead, io.SeekStart); err != nil {
		return BackwardsReadResult{0, fromPos}, err
	}

	n, err := r.Read(buf[:toRead])
	return BackwardsReadResult{n, fromPos - toRead}, err
}
