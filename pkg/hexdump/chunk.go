package hexdump

import "github.com/zhengshuai-xiao/hd/internal"

var logger = internal.GetLogger("hexdump")

// LineSize is the number of input bytes shown on one output line.
const LineSize = 0x10

// Chunk is one line worth of input. Only the last chunk of a dump may hold
// fewer than LineSize bytes.
type Chunk struct {
	Addr int64
	Data []byte
}

// Len returns the number of bytes in the chunk.
func (c Chunk) Len() int {
	return len(c.Data)
}

// Full reports whether the chunk holds a complete line.
func (c Chunk) Full() bool {
	return len(c.Data) == LineSize
}

// End is the address just past the chunk.
func (c Chunk) End() int64 {
	return c.Addr + int64(len(c.Data))
}
