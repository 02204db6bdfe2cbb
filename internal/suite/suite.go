// Package suite holds the benchmark tables shared by the cmd programs.
package suite

import (
	"errors"
	"fmt"
	"os"
	"sort"

	"github.com/pion/decodebench/internal/bench"
	"github.com/pion/decodebench/internal/logging"
	"github.com/pion/decodebench/pkg/decoder"
	"github.com/pion/decodebench/pkg/fixture"
)

var ErrUnknownSuite = errors.New("unknown suite")

var builders = map[string]func() bench.Suite{}

func register(library string, format decoder.Format, b func(library string) bench.Suite) {
	name := library + "_" + string(format)
	builders[name] = func() bench.Suite { return b(library) }
}

func init() {
	for _, lib := range []string{"go", "klauspost"} {
		register(lib, decoder.FormatDeflate, Deflate)
		register(lib, decoder.FormatGzip, Gzip)
	}
	for _, lib := range []string{"go", "imaging"} {
		register(lib, decoder.FormatPNG, PNG)
		register(lib, decoder.FormatJPEG, JPEG)
	}
	register("go", decoder.FormatGIF, GIF)
}

// Names lists the registered suites, sorted.
func Names() []string {
	names := make([]string, 0, len(builders))
	for name := range builders {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Lookup returns the suite called name, e.g. "go_png".
func Lookup(name string) (bench.Suite, error) {
	b, ok := builders[name]
	if !ok {
		return bench.Suite{}, fmt.Errorf("%w: %s", ErrUnknownSuite, name)
	}
	return b(), nil
}

// All returns every registered suite in name order.
func All() []bench.Suite {
	var suites []bench.Suite
	for _, name := range Names() {
		suites = append(suites, builders[name]())
	}
	return suites
}

// Main runs s with its compiled-in settings and exits the process with status
// 1 on the first failure.
func Main(s bench.Suite) {
	if err := bench.NewRunner(s).Run(); err != nil {
		logging.NewLogger("decodebench/suite").Errorf("%v", err)
		os.Exit(1)
	}
}

func load(name string) []byte {
	return fixture.MustLoad(fixture.Current, name).Data
}

// Deflate decodes the raw deflate streams inside the gzip fixtures.
func Deflate(library string) bench.Suite {
	slice := func(name string, lo, hi int) []byte {
		return fixture.MustLoad(fixture.Current, name).Slice(lo, hi).Data
	}
	return bench.Suite{
		Library:   library,
		Format:    decoder.FormatDeflate,
		Op:        "decode",
		IterScale: 10,
		Reps:      5,
		WarmUp:    true,
		Configs: []bench.Config{
			{Name: "1k", Src: slice("romeo.txt.gz", 20, 550), WantBytes: 942, ItersUnscaled: 2000},
			{Name: "10k", Src: slice("midsummer.txt.gz", 24, 1619), WantBytes: 11065, ItersUnscaled: 300},
			{Name: "100k", Src: slice("pi.txt.gz", 17, 48199), WantBytes: 100003, ItersUnscaled: 30},
		},
	}
}

func Gzip(library string) bench.Suite {
	return bench.Suite{
		Library:   library,
		Format:    decoder.FormatGzip,
		Op:        "decode",
		IterScale: 10,
		Reps:      5,
		WarmUp:    true,
		Configs: []bench.Config{
			{Name: "1k", Src: load("romeo.txt.gz"), WantBytes: 942, ItersUnscaled: 2000},
			{Name: "10k", Src: load("midsummer.txt.gz"), WantBytes: 11065, ItersUnscaled: 300},
			{Name: "100k", Src: load("pi.txt.gz"), WantBytes: 100003, ItersUnscaled: 30},
		},
	}
}

// PNG reports gray images at 1 byte per pixel and everything else as BGRA.
// 77k_8bpp is paletted and gets expanded.
func PNG(library string) bench.Suite {
	return bench.Suite{
		Library:   library,
		Format:    decoder.FormatPNG,
		Op:        "decode_image",
		IterScale: 20,
		Reps:      5,
		WarmUp:    true,
		Configs: []bench.Config{
			{Name: "19k_8bpp", Src: load("bricks-gray.no-ancillary.png"), WantBytes: 19200, ItersUnscaled: 50},
			{Name: "40k_24bpp", Src: load("hat.png"), WantBytes: 40320, ItersUnscaled: 50},
			{Name: "77k_8bpp", Src: load("bricks-dither.png"), WantBytes: 76800, ItersUnscaled: 50, Output: decoder.OutputBGRA},
			{Name: "552k_32bpp_verify_checksum", Src: load("hibiscus.primitive.png"), WantBytes: 551616, ItersUnscaled: 4},
			{Name: "4002k_24bpp", Src: load("harvesters.png"), WantBytes: 4002940, ItersUnscaled: 1},
		},
	}
}

func JPEG(library string) bench.Suite {
	s := bench.Suite{
		Library:   library,
		Format:    decoder.FormatJPEG,
		Op:        "decode_image",
		IterScale: 50,
		Reps:      5,
		WarmUp:    true,
		Configs: []bench.Config{
			{Name: "19k_8bpp", Src: load("bricks-gray.jpeg"), WantBytes: 19200, ItersUnscaled: 100},
			{Name: "30k_24bpp_progressive", Src: load("peacock.progressive.jpeg"), WantBytes: 30000, ItersUnscaled: 50},
			{Name: "30k_24bpp_sequential", Src: load("peacock.default.jpeg"), WantBytes: 30000, ItersUnscaled: 50},
			{Name: "77k_24bpp", Src: load("bricks-color.jpeg"), WantBytes: 76800, ItersUnscaled: 30},
			{Name: "552k_24bpp_420", Src: load("hibiscus.regular.jpeg"), WantBytes: 551616, ItersUnscaled: 5},
			{Name: "552k_24bpp_444", Src: load("hibiscus.primitive.jpeg"), WantBytes: 551616, ItersUnscaled: 5},
			{Name: "4002k_24bpp", Src: load("harvesters.jpeg"), WantBytes: 4002940, ItersUnscaled: 1},
		},
	}
	// libjpeg's default message hooks write to the standard streams.
	s.Stderr = library == "libjpeg"
	return s
}

// GIF prints a megapixel summary per config without a warm-up pass. The
// legacy config decodes the older encoding of the same image.
func GIF(library string) bench.Suite {
	const harvesters = 1165 * 859
	return bench.Suite{
		Library:   library,
		Format:    decoder.FormatGIF,
		Op:        "decode_image",
		IterScale: 1,
		Reps:      1,
		Style:     bench.StyleMegapixels,
		Configs: []bench.Config{
			{
				Name: "1k_8bpp", Src: load("pjw-thumbnail.gif"),
				WantBytes: 1024, ItersUnscaled: 2000,
				Sentinel: &bench.Sentinel{First: 1, Last: 1},
			},
			{
				Name: "1000k_8bpp", Src: load("harvesters.gif"),
				WantBytes: harvesters, ItersUnscaled: 50,
				Sentinel: &bench.Sentinel{First: 0, Last: 1},
			},
			{
				Name: "1000k_24bpp", Src: load("harvesters.gif"),
				WantBytes: 3 * harvesters, Pixels: harvesters, ItersUnscaled: 50,
				Output:   decoder.OutputRGB,
				Sentinel: &bench.Sentinel{First: 1, Last: 3},
			},
			{
				Name: "1000k_8bpp_legacy", Src: fixture.MustLoad(fixture.Legacy, "harvesters.gif").Data,
				WantBytes: harvesters, ItersUnscaled: 50,
				Sentinel: &bench.Sentinel{First: 0, Last: 1},
			},
		},
	}
}
