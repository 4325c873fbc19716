package hexdump

import (
	"errors"
	"fmt"
	"io"

	"github.com/zhengshuai-xiao/hd/internal"
)

// Chunker is an interface that returns the next chunk from a stream.
// The returned chunk's data is only valid until the next call to Next().
type Chunker interface {
	Next() (Chunk, error)
}

// FixedChunker cuts a bounded byte range of a seekable input into LineSize
// chunks.
type FixedChunker struct {
	r         io.ReadSeeker
	buf       []byte
	addr      int64
	remaining int64
	total     int64
}

// NewChunker prepares to read length bytes of r starting at offset. size is
// the total size of r. A negative length reads to the end of r; a length
// running past the end is clamped to what is available. Asking for bytes at
// or past the end is an ErrRange.
func NewChunker(r io.ReadSeeker, size, offset, length int64) (*FixedChunker, error) {
	if offset < 0 || offset > size {
		return nil, fmt.Errorf("offset %d beyond input size %d: %w", offset, size, internal.ErrRange)
	}
	c := &FixedChunker{r: r, buf: make([]byte, LineSize), addr: offset}
	avail := size - offset
	if length < 0 {
		length = avail
	}
	if length == 0 {
		return c, nil
	}
	if avail == 0 {
		return nil, fmt.Errorf("offset %d is at the end of input: %w", offset, internal.ErrRange)
	}
	if length > avail {
		logger.Debugf("length %d truncated to %d available bytes", length, avail)
		length = avail
	}
	c.remaining = length
	c.total = length

	if offset != 0 {
		if _, err := r.Seek(offset, io.SeekStart); err != nil {
			return nil, fmt.Errorf("seek to %d: %v: %w", offset, err, internal.ErrIO)
		}
	}
	return c, nil
}

// Len returns the number of bytes the chunker yields in total.
func (c *FixedChunker) Len() int64 {
	return c.total
}

// Remaining returns the number of bytes not yet yielded.
func (c *FixedChunker) Remaining() int64 {
	return c.remaining
}

// Next returns the next chunk, or io.EOF once the whole range has been read.
func (c *FixedChunker) Next() (Chunk, error) {
	if c.remaining == 0 {
		return Chunk{}, io.EOF
	}

	n := int64(LineSize)
	if c.remaining < n {
		n = c.remaining
	}
	buf := c.buf[:n]
	read, err := io.ReadFull(c.r, buf)
	if err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			return Chunk{}, fmt.Errorf("didn't read %d bytes at 0x%x, read %d bytes: %w", n, c.addr, read, internal.ErrIO)
		}
		return Chunk{}, fmt.Errorf("read at 0x%x: %v: %w", c.addr, err, internal.ErrIO)
	}

	chunk := Chunk{Addr: c.addr, Data: buf}
	c.addr += n
	c.remaining -= n
	return chunk, nil
}
