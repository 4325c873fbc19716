package source

import (
	"bytes"
	"fmt"

	"github.com/zhengshuai-xiao/hd/internal"
	"github.com/zhengshuai-xiao/hd/internal/compression"
)

type memSource struct {
	*bytes.Reader
	name string
}

func (s *memSource) Size() int64  { return s.Reader.Size() }
func (s *memSource) Name() string { return s.name }
func (s *memSource) Close() error { return nil }

// Inflate decompresses all of src into memory and closes it. Offsets and
// lengths given to the dump then refer to the decompressed bytes.
func Inflate(src Source, c compression.Compressor) (Source, error) {
	defer src.Close()

	data, err := c.Decompress(src)
	if err != nil {
		return nil, fmt.Errorf("%s: %s decompress: %v: %w", src.Name(), c.TypeString(), err, internal.ErrIO)
	}
	logger.Debugf("%s: %s decompressed %s to %s", src.Name(), c.TypeString(),
		internal.FormatBytes(src.Size()), internal.FormatBytes(int64(len(data))))
	return &memSource{Reader: bytes.NewReader(data), name: fmt.Sprintf("%s (%s)", src.Name(), c.TypeString())}, nil
}
