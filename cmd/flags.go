package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/urfave/cli/v2"
	"github.com/zhengshuai-xiao/hd/internal"
	"github.com/zhengshuai-xiao/hd/internal/compression"
	"github.com/zhengshuai-xiao/hd/pkg/hexdump"
)

func displayFlags() []cli.Flag {
	return []cli.Flag{
		&cli.BoolFlag{
			Name:    "one-byte-octal",
			Aliases: []string{"b"},
			Usage:   "one-byte octal display",
		},
		&cli.BoolFlag{
			Name:    "one-byte-char",
			Aliases: []string{"c"},
			Usage:   "one-byte character display",
		},
		&cli.BoolFlag{
			Name:    "canonical",
			Aliases: []string{"C"},
			Usage:   "canonical hex+ASCII display",
		},
		&cli.BoolFlag{
			Name:    "two-bytes-dec",
			Aliases: []string{"d"},
			Usage:   "two-byte decimal display",
		},
		&cli.BoolFlag{
			Name:    "two-bytes-octal",
			Aliases: []string{"o"},
			Usage:   "two-byte octal display",
		},
		&cli.BoolFlag{
			Name:    "two-bytes-hex",
			Aliases: []string{"x"},
			Usage:   "two-byte hexadecimal display",
		},
		&cli.BoolFlag{
			Name:    "no-squeezing",
			Aliases: []string{"v"},
			Usage:   "output identical lines instead of a single '*'",
		},
	}
}

func rangeFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "length",
			Aliases: []string{"n"},
			Usage:   "interpret only `LENGTH` bytes of input (decimal, 0x hex, k/m/g suffix)",
		},
		&cli.StringFlag{
			Name:    "skip",
			Aliases: []string{"s", "offset"},
			Value:   "0",
			Usage:   "skip `OFFSET` bytes from the beginning of the input",
		},
		&cli.StringFlag{
			Name:  "decompress",
			Usage: "decompress the input before dumping (" + strings.Join(compression.Names(), ", ") + ")",
		},
	}
}

func logFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:  "log-level",
			Value: "warn",
			Usage: "log level: trace/debug/info/warn/error",
		},
		&cli.StringFlag{
			Name:  "log-file",
			Usage: "write logs to `PATH` (rotated daily) instead of stderr",
		},
		&cli.BoolFlag{
			Name:  "no-color",
			Usage: "disable colors in log output",
		},
	}
}

func remoteFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "s3-endpoint",
			Usage:   "S3 endpoint for s3:// inputs, e.g. 127.0.0.1:9000 or https://s3.example.com",
			EnvVars: []string{"HD_S3_ENDPOINT"},
		},
		&cli.StringFlag{
			Name:    "s3-access-key",
			Usage:   "S3 access key",
			EnvVars: []string{"MINIO_ROOT_USER", "AWS_ACCESS_KEY_ID"},
		},
		&cli.StringFlag{
			Name:    "s3-secret-key",
			Usage:   "S3 secret key",
			EnvVars: []string{"MINIO_ROOT_PASSWORD", "AWS_SECRET_ACCESS_KEY"},
		},
		&cli.StringFlag{
			Name:    "s3-region",
			Value:   internal.DefaultS3Region,
			Usage:   "S3 region",
			EnvVars: []string{"AWS_REGION"},
		},
		&cli.BoolFlag{
			Name:  "s3-insecure",
			Usage: "use plain HTTP when the endpoint has no scheme",
		},
		&cli.StringFlag{
			Name:  "s3-client",
			Value: internal.S3ClientMinio,
			Usage: "S3 client library: minio or aws",
		},
		&cli.StringFlag{
			Name:  "timeout",
			Value: "0",
			Usage: "give up on a remote input after `DURATION`, e.g. 30s or 1d2h; 0 waits forever",
		},
		&cli.StringFlag{
			Name:    "redis-password",
			Usage:   "password for redis:// inputs without one in the URL",
			EnvVars: []string{"REDIS_PASSWORD"},
		},
	}
}

func setCategory(flags []cli.Flag, category string) []cli.Flag {
	for _, flag := range flags {
		switch ff := flag.(type) {
		case *cli.BoolFlag:
			ff.Category = category
		case *cli.StringFlag:
			ff.Category = category
		}
	}
	return flags
}

func globalFlags() []cli.Flag {
	var flags []cli.Flag
	flags = append(flags, setCategory(displayFlags(), "DISPLAY")...)
	flags = append(flags, setCategory(rangeFlags(), "INPUT")...)
	flags = append(flags, setCategory(remoteFlags(), "REMOTE")...)
	flags = append(flags, setCategory(logFlags(), "LOG")...)
	return flags
}

func modeFlags(c *cli.Context) hexdump.ModeFlags {
	return hexdump.ModeFlags{
		Canonical:    c.Bool("canonical"),
		OneByteOctal: c.Bool("one-byte-octal"),
		OneByteChar:  c.Bool("one-byte-char"),
		TwoByteDec:   c.Bool("two-bytes-dec"),
		TwoByteOctal: c.Bool("two-bytes-octal"),
		TwoByteHex:   c.Bool("two-bytes-hex"),
	}
}

func sizeFlag(c *cli.Context, name string) (int64, error) {
	v, err := internal.ParseSize(c.String(name))
	if err != nil {
		return 0, fmt.Errorf("--%s: %v: %w", name, err, internal.ErrUsage)
	}
	return v, nil
}

func timeoutFlag(c *cli.Context) (time.Duration, error) {
	d, err := internal.Duration(c.String("timeout"))
	if err == nil && d < 0 {
		err = fmt.Errorf("negative duration %q", c.String("timeout"))
	}
	if err != nil {
		return 0, fmt.Errorf("--timeout: %v: %w", err, internal.ErrUsage)
	}
	return d, nil
}

func sourceConfig(c *cli.Context) (*internal.Config, error) {
	conf := &internal.Config{
		S3Endpoint:    c.String("s3-endpoint"),
		S3AccessKey:   c.String("s3-access-key"),
		S3SecretKey:   c.String("s3-secret-key"),
		S3Region:      c.String("s3-region"),
		S3Insecure:    c.Bool("s3-insecure"),
		S3Client:      c.String("s3-client"),
		RedisPassword: c.String("redis-password"),
		Decompress:    c.String("decompress"),
	}
	switch conf.S3Client {
	case internal.S3ClientMinio, internal.S3ClientAWS:
	default:
		return nil, fmt.Errorf("--s3-client must be %s or %s, not %q: %w",
			internal.S3ClientMinio, internal.S3ClientAWS, conf.S3Client, internal.ErrUsage)
	}
	return conf, nil
}
