package source

import (
	"strings"

	"github.com/zhengshuai-xiao/hd/internal"
)

const defaultS3Endpoint = "s3.amazonaws.com"

// s3Endpoint splits the configured endpoint into a bare host:port and whether
// TLS should be used. An explicit http:// or https:// prefix wins over
// --s3-insecure.
func s3Endpoint(conf *internal.Config) (host string, secure bool) {
	host, secure = conf.S3Endpoint, !conf.S3Insecure
	switch {
	case strings.HasPrefix(host, "http://"):
		host, secure = strings.TrimPrefix(host, "http://"), false
	case strings.HasPrefix(host, "https://"):
		host, secure = strings.TrimPrefix(host, "https://"), true
	}
	host = strings.TrimSuffix(host, "/")
	if host == "" {
		host = defaultS3Endpoint
	}
	return host, secure
}

// s3EndpointURL is s3Endpoint in the form aws-sdk-go-v2 wants: with a scheme.
// Empty means the SDK's own resolution.
func s3EndpointURL(conf *internal.Config) string {
	if conf.S3Endpoint == "" {
		return ""
	}
	host, secure := s3Endpoint(conf)
	if secure {
		return "https://" + host
	}
	return "http://" + host
}

func s3Region(conf *internal.Config) string {
	if conf.S3Region == "" {
		return internal.DefaultS3Region
	}
	return conf.S3Region
}

func s3Name(bucket, key string) string {
	return "s3://" + bucket + "/" + key
}
