package internal

// Config carries the settings for reaching remote inputs and for post
// processing what was read.
type Config struct {
	S3Endpoint  string
	S3AccessKey string
	S3SecretKey string
	S3Region    string
	S3Insecure  bool
	S3Client    string

	RedisPassword string

	Decompress string
}

const (
	S3ClientMinio = "minio"
	S3ClientAWS   = "aws"
)

const DefaultS3Region = "us-east-1"
