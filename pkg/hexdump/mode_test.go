package hexdump

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestModeFlags(t *testing.T) {
	testCases := []struct {
		name     string
		flags    ModeFlags
		expected Mode
	}{
		{"None", ModeFlags{}, Default},
		{"Canonical", ModeFlags{Canonical: true}, Canonical},
		{"One byte octal", ModeFlags{OneByteOctal: true}, OneByteOctal},
		{"One byte char", ModeFlags{OneByteChar: true}, OneByteChar},
		{"Two bytes decimal", ModeFlags{TwoByteDec: true}, TwoByteDec},
		{"Two bytes octal", ModeFlags{TwoByteOctal: true}, TwoByteOctal},
		{"Two bytes hex", ModeFlags{TwoByteHex: true}, TwoByteHex},
		{"Canonical beats everything", ModeFlags{Canonical: true, OneByteChar: true, TwoByteHex: true}, Canonical},
		{"Hex beats octal", ModeFlags{TwoByteHex: true, OneByteOctal: true}, TwoByteHex},
		{"One byte octal beats two byte octal", ModeFlags{OneByteOctal: true, TwoByteOctal: true}, OneByteOctal},
		{"Two byte octal beats decimal", ModeFlags{TwoByteOctal: true, TwoByteDec: true}, TwoByteOctal},
		{"Decimal beats char", ModeFlags{TwoByteDec: true, OneByteChar: true}, TwoByteDec},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, tc.flags.Mode())
		})
	}
}

func TestModeString(t *testing.T) {
	assert.Equal(t, "default", Default.String())
	assert.Equal(t, "canonical", Canonical.String())
	assert.Equal(t, "two-bytes-hex", TwoByteHex.String())
	assert.Equal(t, 8, Canonical.AddressWidth())
	assert.Equal(t, 7, OneByteChar.AddressWidth())
}
