package source

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"strings"

	"github.com/zhengshuai-xiao/hd/internal"
	"github.com/zhengshuai-xiao/hd/internal/compression"
)

var logger = internal.GetLogger("source")

// Source is a seekable input of known size.
type Source interface {
	io.ReadSeeker
	io.Closer
	Size() int64
	Name() string
}

const (
	schemeFile  = "file"
	schemeS3    = "s3"
	schemeRedis = "redis"
)

// Open resolves target to a Source. Targets are local paths, file:// URLs,
// s3://bucket/key or redis://host:port/db/key. When conf.Decompress names a
// compression method the input is decompressed into memory first.
func Open(ctx context.Context, target string, conf *internal.Config) (Source, error) {
	if conf == nil {
		conf = &internal.Config{}
	}
	src, err := open(ctx, target, conf)
	if err != nil {
		return nil, err
	}
	logger.Debugf("opened %s, %s", src.Name(), internal.FormatBytes(src.Size()))

	c, err := compression.GetCompressorViaString(conf.Decompress)
	if err != nil {
		src.Close()
		return nil, fmt.Errorf("decompress %q: %w", conf.Decompress, err)
	}
	if c == nil {
		return src, nil
	}
	return Inflate(src, c)
}

func open(ctx context.Context, target string, conf *internal.Config) (Source, error) {
	scheme, rest := splitScheme(target)
	switch scheme {
	case "", schemeFile:
		return OpenFile(rest)
	case schemeS3:
		bucket, key, err := parseS3Target(target)
		if err != nil {
			return nil, err
		}
		if conf.S3Client == internal.S3ClientAWS {
			return OpenAWS(ctx, bucket, key, conf)
		}
		return OpenMinio(ctx, bucket, key, conf)
	case schemeRedis:
		return OpenRedis(ctx, target, conf)
	default:
		return nil, fmt.Errorf("unsupported input %q: %w", target, internal.ErrUsage)
	}
}

// splitScheme returns the lower-cased scheme of a URL-like target and the
// remainder. Plain paths, including Windows drive letters, have no scheme.
func splitScheme(target string) (string, string) {
	i := strings.Index(target, "://")
	if i <= 1 {
		return "", target
	}
	scheme := strings.ToLower(target[:i])
	for _, r := range scheme {
		if (r < 'a' || r > 'z') && (r < '0' || r > '9') && r != '+' && r != '-' && r != '.' {
			return "", target
		}
	}
	return scheme, target[i+3:]
}

func parseS3Target(target string) (bucket, key string, err error) {
	u, err := url.Parse(target)
	if err != nil {
		return "", "", fmt.Errorf("invalid s3 target %q: %v: %w", target, err, internal.ErrUsage)
	}
	bucket = u.Host
	key = strings.TrimPrefix(u.Path, "/")
	if bucket == "" || key == "" {
		return "", "", fmt.Errorf("s3 target %q must look like s3://bucket/key: %w", target, internal.ErrUsage)
	}
	return bucket, key, nil
}
