package hexdump

import (
	"bufio"
	"errors"
	"fmt"
	"io"

	"github.com/zhengshuai-xiao/hd/internal"
)

// Options controls a single dump.
type Options struct {
	Mode      Mode
	NoSqueeze bool
	Offset    int64
	// Length is the number of bytes to dump from Offset; negative means up
	// to the end of the input.
	Length int64
}

// Stats describes a finished dump.
type Stats struct {
	Bytes      int64
	Lines      int
	Markers    int
	Suppressed int
	CRC32      uint32
}

// Dumper renders the lines of a byte range to a writer.
type Dumper struct {
	w        *bufio.Writer
	opts     Options
	squeezer Squeezer
	line     []byte
	stats    Stats
}

func NewDumper(w io.Writer, opts Options) *Dumper {
	return &Dumper{
		w:    bufio.NewWriter(w),
		opts: opts,
		line: make([]byte, 0, 128),
	}
}

// Dump writes the configured range of r, whose total size is size, and
// returns the number of input bytes covered. Output already written is
// flushed even when the dump fails part way.
func (d *Dumper) Dump(r io.ReadSeeker, size int64) (n int64, err error) {
	d.squeezer.Reset()
	d.stats = Stats{}

	chunker, err := NewChunker(r, size, d.opts.Offset, d.opts.Length)
	if err != nil {
		return 0, err
	}
	if chunker.Len() == 0 {
		return 0, nil
	}
	logger.Debugf("dumping %s from 0x%x as %s", internal.FormatBytes(chunker.Len()), d.opts.Offset, d.opts.Mode)

	defer func() {
		if ferr := d.w.Flush(); ferr != nil && err == nil {
			err = fmt.Errorf("write output: %w", ferr)
		}
		n = d.stats.Bytes
	}()

	end := d.opts.Offset
	for {
		chunk, err := chunker.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return 0, err
		}

		action := Print
		if !d.opts.NoSqueeze {
			action = d.squeezer.Observe(chunk.Data)
		}
		switch action {
		case Print:
			if err := d.writeLine(chunk); err != nil {
				return 0, err
			}
			d.stats.Lines++
		case PrintMarker:
			if _, err := d.w.WriteString(Marker + "\n"); err != nil {
				return 0, fmt.Errorf("write output: %w", err)
			}
			d.stats.Markers++
		case Suppress:
			d.stats.Suppressed++
		}

		d.stats.Bytes += int64(chunk.Len())
		d.stats.CRC32 = internal.UpdateCRC32(d.stats.CRC32, chunk.Data)
		end = chunk.End()
	}

	// a range of whole lines ends with an empty chunk, printed as a bare
	// address; a short last line already shows where the data ends
	if chunker.Len()%LineSize == 0 {
		if err := d.writeLine(Chunk{Addr: end}); err != nil {
			return 0, err
		}
	}
	return 0, nil
}

func (d *Dumper) writeLine(c Chunk) error {
	line, err := AppendLine(d.line[:0], c, d.opts.Mode)
	if err != nil {
		return err
	}
	d.line = append(line, '\n')
	if _, err := d.w.Write(d.line); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	return nil
}

// Stats returns the counters of the last dump.
func (d *Dumper) Stats() Stats {
	return d.stats
}

// Dump is a shorthand for NewDumper(w, opts).Dump(r, size).
func Dump(r io.ReadSeeker, size int64, w io.Writer, opts Options) (int64, error) {
	return NewDumper(w, opts).Dump(r, size)
}
