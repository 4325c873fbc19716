package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
	"github.com/zhengshuai-xiao/hd/internal"
	"github.com/zhengshuai-xiao/hd/pkg/hexdump"
	"github.com/zhengshuai-xiao/hd/pkg/source"
)

func setupLogger(c *cli.Context) error {
	lvl, err := logrus.ParseLevel(c.String("log-level"))
	if err != nil {
		return fmt.Errorf("--log-level: %v: %w", err, internal.ErrUsage)
	}
	internal.SetLogLevel(lvl)
	if c.Bool("no-color") {
		internal.DisableLogColor()
	}
	if path := c.String("log-file"); path != "" {
		if err := internal.SetOutFile(path); err != nil {
			return err
		}
		internal.SetLogID(uuid.NewString() + " ")
	}
	return nil
}

func dumpOptions(c *cli.Context) (hexdump.Options, error) {
	opts := hexdump.Options{
		Mode:      modeFlags(c).Mode(),
		NoSqueeze: c.Bool("no-squeezing"),
		Length:    -1,
	}
	var err error
	if opts.Offset, err = sizeFlag(c, "skip"); err != nil {
		return opts, err
	}
	if c.IsSet("length") {
		if opts.Length, err = sizeFlag(c, "length"); err != nil {
			return opts, err
		}
	}
	return opts, nil
}

func dump(c *cli.Context) error {
	if c.NArg() != 1 {
		return fmt.Errorf("expected one FILE argument, got %d: %w", c.NArg(), internal.ErrUsage)
	}
	if err := setupLogger(c); err != nil {
		return err
	}
	opts, err := dumpOptions(c)
	if err != nil {
		return err
	}
	conf, err := sourceConfig(c)
	if err != nil {
		return err
	}
	timeout, err := timeoutFlag(c)
	if err != nil {
		return err
	}
	ctx := c.Context
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	start := time.Now()
	target := c.Args().First()
	src, err := source.Open(ctx, target, conf)
	if err != nil {
		return fmt.Errorf("hd: %s: %w", internal.RemovePassword(target), err)
	}
	defer src.Close()
	logger.Debugf("dumping %s: mode %s, offset 0x%x, length %d, size %d",
		src.Name(), opts.Mode, opts.Offset, opts.Length, src.Size())

	d := hexdump.NewDumper(c.App.Writer, opts)
	n, err := d.Dump(src, src.Size())
	if internal.IsBrokenPipe(err) {
		logger.Debugf("output closed early: %s", err)
		return nil
	}
	if err != nil {
		return fmt.Errorf("hd: %s: %w", src.Name(), err)
	}

	stats := d.Stats()
	logger.Infof("dump of %s finished: %s, %d lines, %d repeated, crc32 %08x in %s",
		src.Name(), internal.FormatBytes(n), stats.Lines, stats.Markers+stats.Suppressed,
		stats.CRC32, time.Since(start))
	return nil
}
