package hexdump

import "fmt"

// Mode selects how each line is rendered.
type Mode int

const (
	Default Mode = iota
	Canonical
	OneByteOctal
	OneByteChar
	TwoByteDec
	TwoByteOctal
	TwoByteHex
)

var modeNames = map[Mode]string{
	Default:      "default",
	Canonical:    "canonical",
	OneByteOctal: "one-byte-octal",
	OneByteChar:  "one-byte-char",
	TwoByteDec:   "two-bytes-dec",
	TwoByteOctal: "two-bytes-octal",
	TwoByteHex:   "two-bytes-hex",
}

func (m Mode) String() string {
	if name, ok := modeNames[m]; ok {
		return name
	}
	return fmt.Sprintf("Mode(%d)", int(m))
}

// AddressWidth is the number of hex digits used for the line address.
func (m Mode) AddressWidth() int {
	if m == Canonical {
		return 8
	}
	return 7
}

// ModeFlags mirrors the display mode switches of the command line.
type ModeFlags struct {
	Canonical    bool
	OneByteOctal bool
	OneByteChar  bool
	TwoByteDec   bool
	TwoByteOctal bool
	TwoByteHex   bool
}

// Mode picks the single active display mode. When several switches are set
// the first one in the order canonical, two-byte hex, one-byte octal,
// two-byte octal, two-byte decimal, one-byte char wins.
func (f ModeFlags) Mode() Mode {
	picked := []Mode{}
	for _, c := range []struct {
		set  bool
		mode Mode
	}{
		{f.Canonical, Canonical},
		{f.TwoByteHex, TwoByteHex},
		{f.OneByteOctal, OneByteOctal},
		{f.TwoByteOctal, TwoByteOctal},
		{f.TwoByteDec, TwoByteDec},
		{f.OneByteChar, OneByteChar},
	} {
		if c.set {
			picked = append(picked, c.mode)
		}
	}
	if len(picked) == 0 {
		return Default
	}
	if len(picked) > 1 {
		logger.Warnf("several display modes requested %v, using %s", picked, picked[0])
	}
	return picked[0]
}
