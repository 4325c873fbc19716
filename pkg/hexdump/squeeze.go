package hexdump

import (
	"bytes"
	"fmt"
)

// Marker replaces a run of repeated lines.
const Marker = "*"

// Action tells the dump loop what to do with a line.
type Action int

const (
	Print Action = iota
	Suppress
	PrintMarker
)

func (a Action) String() string {
	switch a {
	case Print:
		return "print"
	case Suppress:
		return "suppress"
	case PrintMarker:
		return "marker"
	}
	return fmt.Sprintf("Action(%d)", int(a))
}

// Squeezer collapses runs of identical full lines: the first line of a run is
// printed, the first repeat becomes a Marker and the remaining repeats are
// dropped. Short lines are always printed and do not touch the state.
type Squeezer struct {
	prev      [LineSize]byte
	hasPrev   bool
	squeezing bool
}

// Observe classifies the next line of the dump.
func (s *Squeezer) Observe(line []byte) Action {
	if len(line) != LineSize {
		return Print
	}

	same := s.hasPrev && LinesEqual(line, s.prev[:])
	copy(s.prev[:], line)
	s.hasPrev = true

	switch {
	case !same:
		s.squeezing = false
		return Print
	case !s.squeezing:
		s.squeezing = true
		return PrintMarker
	default:
		return Suppress
	}
}

// Reset forgets the previous line.
func (s *Squeezer) Reset() {
	*s = Squeezer{}
}

// LinesEqual compares two lines byte for byte.
func LinesEqual(a, b []byte) bool {
	return bytes.Equal(a, b)
}
