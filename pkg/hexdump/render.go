package hexdump

import (
	"fmt"

	"github.com/zhengshuai-xiao/hd/internal"
)

// midLine is the slot that gets an extra column of padding so the two
// halves of a line stay visually apart.
const midLine = 8

type pairLayout struct {
	format string
	width  int
}

// Two byte groups are printed as little-endian 16 bit values, so the byte at
// the higher address comes first.
var pairLayouts = map[Mode]pairLayout{
	Default:      {" %04x", 5},
	TwoByteHex:   {"    %04x", 8},
	TwoByteOctal: {"  %06o", 8},
	TwoByteDec:   {"   %05d", 8},
}

// Render formats one chunk as a single line of text without the trailing
// newline.
func Render(c Chunk, mode Mode) (string, error) {
	line, err := AppendLine(nil, c, mode)
	if err != nil {
		return "", err
	}
	return string(line), nil
}

// AppendLine appends the rendering of c to dst.
func AppendLine(dst []byte, c Chunk, mode Mode) ([]byte, error) {
	if c.Len() > LineSize {
		return dst, fmt.Errorf("%d bytes at 0x%x, at most %d fit a line: %w", c.Len(), c.Addr, LineSize, internal.ErrFormat)
	}

	dst = fmt.Appendf(dst, "%0*x", mode.AddressWidth(), c.Addr)
	if c.Len() == 0 {
		return dst, nil
	}

	switch mode {
	case Canonical:
		dst = appendCanonical(dst, c.Data)
	case OneByteOctal:
		dst = appendOctalBytes(dst, c.Data)
	case OneByteChar:
		for _, b := range c.Data {
			dst = append(dst, charField(b)...)
		}
	case Default, TwoByteHex, TwoByteOctal, TwoByteDec:
		dst = appendPairs(dst, c.Data, pairLayouts[mode])
	default:
		return dst, fmt.Errorf("display mode %s: %w", mode, internal.ErrFormat)
	}
	return dst, nil
}

func appendCanonical(dst, data []byte) []byte {
	dst = append(dst, ' ')
	for i := 0; i < LineSize; i++ {
		gap := " "
		if i == midLine {
			gap = "  "
		}
		if i < len(data) {
			dst = fmt.Appendf(dst, "%s%02x", gap, data[i])
		} else {
			dst = appendSpaces(dst, len(gap)+2)
		}
	}
	dst = append(dst, "  |"...)
	dst = appendASCII(dst, data)
	return append(dst, '|')
}

func appendOctalBytes(dst, data []byte) []byte {
	for i := 0; i < LineSize; i++ {
		if i < len(data) {
			dst = fmt.Appendf(dst, " %03o", data[i])
			continue
		}
		dst = appendPadding(dst, 4, i)
	}
	return dst
}

func appendPairs(dst, data []byte, layout pairLayout) []byte {
	for i := 0; i < LineSize; i += 2 {
		if i+1 < len(data) {
			v := uint16(data[i+1])<<8 | uint16(data[i])
			dst = fmt.Appendf(dst, layout.format, v)
			continue
		}
		dst = appendPadding(dst, layout.width, i)
	}
	return dst
}

func appendPadding(dst []byte, width, slot int) []byte {
	if slot == midLine {
		width++
	}
	return appendSpaces(dst, width)
}

func appendSpaces(dst []byte, n int) []byte {
	for ; n > 0; n-- {
		dst = append(dst, ' ')
	}
	return dst
}

var charEscapes = map[byte]string{
	0:  `  \0`,
	7:  `  \a`,
	8:  `  \b`,
	9:  `  \t`,
	10: `  \n`,
	11: `  \v`,
	12: `  \f`,
	13: `  \r`,
}

// charField renders one byte for the one-byte character display. Every
// field is four columns wide.
func charField(b byte) string {
	if esc, ok := charEscapes[b]; ok {
		return esc
	}
	switch {
	case b < 0x20 || b > '~':
		return fmt.Sprintf(" %03o", b)
	default:
		return "   " + string(rune(b))
	}
}

// ASCII renders the printable side of a canonical line: bytes in
// [0x20, 0x7e] as themselves, everything else as '.'.
func ASCII(b []byte) string {
	return string(appendASCII(nil, b))
}

func appendASCII(dst, b []byte) []byte {
	for _, c := range b {
		if c >= 0x20 && c <= 0x7e {
			dst = append(dst, c)
		} else {
			dst = append(dst, '.')
		}
	}
	return dst
}
