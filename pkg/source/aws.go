package source

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/smithy-go"
	"github.com/sirupsen/logrus"

	"github.com/zhengshuai-xiao/hd/internal"
)

type awsSource struct {
	*rangeReader
	name string
}

// OpenAWS opens bucket/key through aws-sdk-go-v2. The size comes from
// HeadObject; reads are ranged GetObject calls of readAhead bytes.
func OpenAWS(ctx context.Context, bucket, key string, conf *internal.Config) (Source, error) {
	opts := []func(*config.LoadOptions) error{
		config.WithRegion(s3Region(conf)),
		config.WithLogger(logger),
	}
	if conf.S3AccessKey != "" || conf.S3SecretKey != "" {
		opts = append(opts, config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(conf.S3AccessKey, conf.S3SecretKey, "")))
	}
	if endpoint := s3EndpointURL(conf); endpoint != "" {
		opts = append(opts, config.WithEndpointResolverWithOptions(
			aws.EndpointResolverWithOptionsFunc(func(service, region string, options ...interface{}) (aws.Endpoint, error) {
				if service == s3.ServiceID {
					return aws.Endpoint{
						URL:           endpoint,
						SigningRegion: region,
					}, nil
				}
				return aws.Endpoint{}, fmt.Errorf("unknown endpoint requested")
			}),
		))
	}
	if logger.IsLevelEnabled(logrus.TraceLevel) {
		opts = append(opts, config.WithClientLogMode(aws.LogRequest|aws.LogResponse|aws.LogRetries))
	}

	cfg, err := config.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}
	client := s3.NewFromConfig(cfg, func(o *s3.Options) {
		o.UsePathStyle = true
	})

	name := s3Name(bucket, key)
	head, err := client.HeadObject(ctx, &s3.HeadObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return nil, awsError(name, err)
	}
	size := aws.ToInt64(head.ContentLength)
	logger.Debugf("%s: size %d, etag %s", name, size, aws.ToString(head.ETag))

	fetch := func(off, n int64) ([]byte, error) {
		resp, err := client.GetObject(ctx, &s3.GetObjectInput{
			Bucket: aws.String(bucket),
			Key:    aws.String(key),
			Range:  aws.String(fmt.Sprintf("bytes=%d-%d", off, off+n-1)),
		})
		if err != nil {
			return nil, awsError(name, err)
		}
		defer resp.Body.Close()
		data, err := io.ReadAll(resp.Body)
		if err != nil {
			return nil, fmt.Errorf("%s: read range at 0x%x: %v: %w", name, off, err, internal.ErrIO)
		}
		return data, nil
	}
	return &awsSource{rangeReader: newRangeReader(size, fetch), name: name}, nil
}

func awsError(name string, err error) error {
	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		switch apiErr.ErrorCode() {
		case "NotFound", "NoSuchKey", "NoSuchBucket":
			return fmt.Errorf("%s: %w", name, internal.ErrNotFound)
		}
	}
	return fmt.Errorf("%s: %v: %w", name, err, internal.ErrIO)
}

func (s *awsSource) Size() int64  { return s.size }
func (s *awsSource) Name() string { return s.name }
func (s *awsSource) Close() error { return nil }
