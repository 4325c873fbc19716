package compression

import (
	"bytes"
	"io"

	"github.com/golang/snappy"
)

// SnappyCompressor implements the Compressor interface using the Snappy block format.
type SnappyCompressor struct{}

// NewSnappy returns a new SnappyCompressor.
func NewSnappy() *SnappyCompressor {
	return &SnappyCompressor{}
}

// Type returns the compression type.
func (c *SnappyCompressor) Type() CompressionType {
	return Compress_snappy
}

// Type returns the compression type string.
func (c *SnappyCompressor) TypeString() string {
	return "snappy"
}

// Compress compresses data using Snappy.
func (c *SnappyCompressor) Compress(data []byte) ([]byte, error) {
	return snappy.Encode(nil, data), nil
}

// Decompress decompresses a single Snappy block.
func (c *SnappyCompressor) Decompress(r io.Reader) ([]byte, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	decompressed, err := snappy.Decode(nil, data)
	if err != nil {
		return nil, err
	}
	if decompressed == nil {
		return []byte{}, nil
	}
	return decompressed, nil
}

// SnappyFrameCompressor handles the framed Snappy stream format (.sz files).
type SnappyFrameCompressor struct{}

func NewSnappyFrame() *SnappyFrameCompressor {
	return &SnappyFrameCompressor{}
}

func (c *SnappyFrameCompressor) Type() CompressionType {
	return Compress_snappy_frame
}

func (c *SnappyFrameCompressor) TypeString() string {
	return "snappy-frame"
}

func (c *SnappyFrameCompressor) Compress(data []byte) ([]byte, error) {
	var b bytes.Buffer
	w := snappy.NewBufferedWriter(&b)
	if _, err := w.Write(data); err != nil {
		return nil, err
	}
	if err := w.Close(); err != nil {
		return nil, err
	}
	return b.Bytes(), nil
}

func (c *SnappyFrameCompressor) Decompress(r io.Reader) ([]byte, error) {
	return io.ReadAll(snappy.NewReader(r))
}
