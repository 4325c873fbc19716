package source

import (
	"context"
	"fmt"
	"io"

	miniogo "github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/sirupsen/logrus"

	"github.com/zhengshuai-xiao/hd/internal"
)

type minioSource struct {
	*miniogo.Object
	name  string
	size  int64
	trace *io.PipeWriter
}

// OpenMinio opens bucket/key through minio-go. The returned object is read
// lazily; minio-go turns each Read after a Seek into a ranged GET.
func OpenMinio(ctx context.Context, bucket, key string, conf *internal.Config) (Source, error) {
	endpoint, secure := s3Endpoint(conf)
	client, err := miniogo.New(endpoint, &miniogo.Options{
		Creds:  credentials.NewStaticV4(conf.S3AccessKey, conf.S3SecretKey, ""),
		Secure: secure,
		Region: s3Region(conf),
	})
	if err != nil {
		return nil, fmt.Errorf("minio client for %s: %w", endpoint, err)
	}

	var trace *io.PipeWriter
	if logger.IsLevelEnabled(logrus.TraceLevel) {
		trace = logger.WriterLevel(logrus.TraceLevel)
		client.TraceOn(trace)
	}

	name := s3Name(bucket, key)
	obj, err := client.GetObject(ctx, bucket, key, miniogo.GetObjectOptions{})
	if err != nil {
		closeTrace(trace)
		return nil, minioError(name, err)
	}
	// GetObject does not talk to the server; Stat does.
	info, err := obj.Stat()
	if err != nil {
		obj.Close()
		closeTrace(trace)
		return nil, minioError(name, err)
	}
	logger.Debugf("%s: size %d, etag %s, modified %s", name, info.Size, info.ETag, info.LastModified)

	return &minioSource{Object: obj, name: name, size: info.Size, trace: trace}, nil
}

func minioError(name string, err error) error {
	switch miniogo.ToErrorResponse(err).Code {
	case "NoSuchKey", "NoSuchBucket", "NotFound":
		return fmt.Errorf("%s: %w", name, internal.ErrNotFound)
	}
	return fmt.Errorf("%s: %v: %w", name, err, internal.ErrIO)
}

func closeTrace(w *io.PipeWriter) {
	if w != nil {
		w.Close()
	}
}

func (s *minioSource) Size() int64  { return s.size }
func (s *minioSource) Name() string { return s.name }

func (s *minioSource) Close() error {
	err := s.Object.Close()
	closeTrace(s.trace)
	return err
}
