package internal

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

const (
	K = 1024
	M = 1024 * K
	G = 1024 * M
)

// ParseSize parses a byte count given in decimal or, with a 0x prefix, in
// hexadecimal. An optional k, m or g suffix multiplies by the matching power
// of 1024.
func ParseSize(sizeStr string) (int64, error) {
	s := strings.ToLower(strings.TrimSpace(sizeStr))
	if s == "" {
		return 0, fmt.Errorf("invalid size format: %q", sizeStr)
	}

	var multiplier uint64 = 1
	switch {
	case strings.HasSuffix(s, "g"):
		multiplier = G
	case strings.HasSuffix(s, "m"):
		multiplier = M
	case strings.HasSuffix(s, "k"):
		multiplier = K
	}
	if multiplier != 1 {
		s = s[:len(s)-1]
	}

	base := 10
	if strings.HasPrefix(s, "0x") {
		base = 16
		s = s[2:]
	}

	size, err := strconv.ParseUint(s, base, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid size format: %q", sizeStr)
	}
	if size > math.MaxInt64/multiplier {
		return 0, fmt.Errorf("size out of range: %q", sizeStr)
	}
	return int64(size * multiplier), nil
}

// FormatBytes renders n for log messages, e.g. "1.50 KiB (1536 Bytes)".
func FormatBytes(n int64) string {
	switch {
	case n >= G:
		return fmt.Sprintf("%.2f GiB (%d Bytes)", float64(n)/G, n)
	case n >= M:
		return fmt.Sprintf("%.2f MiB (%d Bytes)", float64(n)/M, n)
	case n >= K:
		return fmt.Sprintf("%.2f KiB (%d Bytes)", float64(n)/K, n)
	}
	return fmt.Sprintf("%d Bytes", n)
}
