package compression

import (
	"errors"
	"io"
	"sort"
)

type CompressionType byte

const (
	Compress_none         CompressionType = iota //0
	Compress_zlib                                //1
	Compress_snappy                              //2
	Compress_snappy_frame                        //3
)

var ErrInvalidCompressionType = errors.New("invalid compression type")

var (
	CompressionMethods = map[string]CompressionType{
		"none":         Compress_none,
		"zlib":         Compress_zlib,
		"snappy":       Compress_snappy,
		"snappy-frame": Compress_snappy_frame,
	}
)

// Compressor defines the interface for data compression and decompression algorithms.
type Compressor interface {
	// Compress takes a byte slice and returns the compressed data.
	Compress(data []byte) ([]byte, error)

	// Decompress reads the whole compressed stream and returns the original data.
	Decompress(r io.Reader) ([]byte, error)

	// Type returns the type of compression, e.g., "zlib", "snappy".
	TypeString() string
	Type() CompressionType
}

// Names lists the accepted compression names, for flag usage strings.
func Names() []string {
	names := make([]string, 0, len(CompressionMethods))
	for name := range CompressionMethods {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// GetCompressorViaString returns a nil Compressor for "none" and "".
func GetCompressorViaString(compressionStr string) (Compressor, error) {
	if compressionStr == "" {
		return nil, nil
	}
	compressionType, ok := CompressionMethods[compressionStr]
	if !ok {
		return nil, ErrInvalidCompressionType
	}
	return GetCompressorViaType(compressionType)
}

func GetCompressorViaType(compressionType CompressionType) (Compressor, error) {
	switch compressionType {
	case Compress_none:
		return nil, nil
	case Compress_zlib:
		return NewZlib(), nil
	case Compress_snappy:
		return NewSnappy(), nil
	case Compress_snappy_frame:
		return NewSnappyFrame(), nil
	default:
		return nil, ErrInvalidCompressionType
	}
}
