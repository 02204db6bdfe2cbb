package bench

import (
	"errors"
	"fmt"

	"github.com/pion/decodebench/pkg/decoder"
)

// DefaultBufferSize is the size of the destination buffer shared by every
// configuration of a run.
const DefaultBufferSize = 64 << 20

// ErrWrongPixels reports a sentinel byte mismatch.
var ErrWrongPixels = errors.New("wrong dst pixels")

// MismatchError reports a decoded byte count that differs from the
// expectation.
type MismatchError struct {
	Got, Want uint64
}

func (e *MismatchError) Error() string {
	return fmt.Sprintf("num_bytes: got %d, want %d", e.Got, e.Want)
}

// Sentinel holds the expected first and last decoded byte.
type Sentinel struct {
	First, Last byte
}

// Config is one named benchmark: a source, what decoding it must produce
// and how many times to decode it per measurement.
type Config struct {
	Name          string
	Src           []byte
	WantBytes     uint64
	ItersUnscaled uint64
	Output        decoder.Output
	Sentinel      *Sentinel
	// Pixels per decode, used by the megapixel layout. Zero means one pixel
	// per byte.
	Pixels uint64
}

func (c Config) pixels() uint64 {
	if c.Pixels == 0 {
		return c.WantBytes
	}
	return c.Pixels
}

// Style selects the reporter's line layout.
type Style int

const (
	// StyleBenchstat prints one benchstat line per result and a comment
	// header.
	StyleBenchstat Style = iota
	// StyleMegapixels prints one megapixels/second summary per result.
	StyleMegapixels
)

// Suite is one benchmark program: a library decoding one format over a
// table of configurations.
type Suite struct {
	Library string
	Format  decoder.Format
	// Op is appended to the family name, e.g. "decode" or "decode_image".
	Op        string
	IterScale uint64
	Reps      int
	WarmUp    bool
	Style     Style
	// Stderr sends results to standard error instead of standard output.
	Stderr  bool
	Configs []Config
}

// Name identifies the suite, e.g. "go_png".
func (s *Suite) Name() string {
	return s.Library + "_" + string(s.Format)
}

// Family prefixes every result name, e.g. "go_png_decode_image".
func (s *Suite) Family() string {
	return s.Name() + "_" + s.Op
}
