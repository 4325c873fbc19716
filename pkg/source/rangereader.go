package source

import (
	"errors"
	"fmt"
	"io"
)

// readAhead is how much a remote source fetches per round trip. A dump reads
// 16 bytes at a time, so going to the network for each line is out of the
// question.
const readAhead = 64 * 1024

// fetchFunc returns up to n bytes of the remote object starting at off.
type fetchFunc func(off, n int64) ([]byte, error)

// rangeReader turns ranged reads against a remote object into an
// io.ReadSeeker, keeping the last fetched window in memory.
type rangeReader struct {
	fetch      fetchFunc
	size       int64
	off        int64
	window     []byte
	windowOff  int64
	windowSize int64
}

func newRangeReader(size int64, fetch fetchFunc) *rangeReader {
	return &rangeReader{fetch: fetch, size: size, windowSize: readAhead}
}

func (r *rangeReader) Read(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}
	if r.off >= r.size {
		return 0, io.EOF
	}

	if r.off < r.windowOff || r.off >= r.windowOff+int64(len(r.window)) {
		n := r.windowSize
		if rem := r.size - r.off; rem < n {
			n = rem
		}
		data, err := r.fetch(r.off, n)
		if err != nil {
			return 0, err
		}
		if len(data) == 0 {
			return 0, io.ErrUnexpectedEOF
		}
		r.window, r.windowOff = data, r.off
	}

	n := copy(p, r.window[r.off-r.windowOff:])
	r.off += int64(n)
	return n, nil
}

func (r *rangeReader) Seek(offset int64, whence int) (int64, error) {
	var abs int64
	switch whence {
	case io.SeekStart:
		abs = offset
	case io.SeekCurrent:
		abs = r.off + offset
	case io.SeekEnd:
		abs = r.size + offset
	default:
		return 0, fmt.Errorf("seek: invalid whence %d", whence)
	}
	if abs < 0 {
		return 0, errors.New("seek: negative position")
	}
	r.off = abs
	return abs, nil
}
