package suite

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/pion/decodebench/internal/bench"
	"github.com/pion/decodebench/pkg/decoder"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookup(t *testing.T) {
	for _, name := range []string{
		"go_deflate", "klauspost_deflate",
		"go_gzip", "klauspost_gzip",
		"go_png", "imaging_png",
		"go_jpeg", "imaging_jpeg",
		"go_gif",
	} {
		s, err := Lookup(name)
		require.NoError(t, err, name)
		assert.Equal(t, name, s.Name())
	}

	_, err := Lookup("go_webp")
	assert.True(t, errors.Is(err, ErrUnknownSuite))
	assert.Equal(t, len(Names()), len(All()))
}

// TestConfigs decodes every config of every suite twice and checks the
// result against the table.
func TestConfigs(t *testing.T) {
	if testing.Short() {
		t.Skip("decodes every fixture")
	}

	a := make([]byte, 16<<20)
	b := make([]byte, 16<<20)
	for _, s := range All() {
		for _, c := range s.Configs {
			name := s.Family() + "_" + c.Name
			t.Run(name, func(t *testing.T) {
				d, err := decoder.NewDecoder(s.Format, s.Library, c.Output)
				require.NoError(t, err)

				n, err := d.Decode(a, c.Src)
				require.NoError(t, err)
				require.Equal(t, c.WantBytes, n)

				m, err := d.Decode(b, c.Src)
				require.NoError(t, err)
				require.Equal(t, n, m)
				if !bytes.Equal(a[:n], b[:m]) {
					t.Fatal("decoding twice gave different output")
				}

				if c.Sentinel != nil {
					assert.Equal(t, c.Sentinel.First, a[0], "first byte")
					assert.Equal(t, c.Sentinel.Last, a[n-1], "last byte")
				}
				assert.LessOrEqual(t, c.WantBytes, uint64(bench.DefaultBufferSize))
			})
		}
	}
}

func TestGzip1k(t *testing.T) {
	s := Gzip("go")
	c := s.Configs[0]
	require.Equal(t, "1k", c.Name)
	require.Len(t, c.Src, 550)

	d, err := decoder.NewDecoder(s.Format, s.Library, c.Output)
	require.NoError(t, err)
	n, err := d.Decode(make([]byte, 2048), c.Src)
	require.NoError(t, err)
	assert.Equal(t, uint64(942), n)
}

// The deflate ranges run from the end of each gzip header to the end of
// the file and inflate to the same bytes as the gzip config.
func TestDeflateRanges(t *testing.T) {
	deflate, gzip := Deflate("go").Configs, Gzip("go").Configs
	require.Len(t, deflate, len(gzip))

	for i, want := range []struct{ lo, hi int }{{20, 550}, {24, 1619}, {17, 48199}} {
		d, g := deflate[i], gzip[i]
		require.Equal(t, g.Name, d.Name)
		require.Len(t, g.Src, want.hi)
		assert.Equal(t, g.Src[want.lo:want.hi], d.Src, d.Name)
		assert.Equal(t, g.WantBytes, d.WantBytes, d.Name)

		dd, err := decoder.NewDecoder(decoder.FormatDeflate, "go", d.Output)
		require.NoError(t, err)
		gd, err := decoder.NewDecoder(decoder.FormatGzip, "go", g.Output)
		require.NoError(t, err)

		a := make([]byte, 1<<20)
		b := make([]byte, 1<<20)
		n, err := dd.Decode(a, d.Src)
		require.NoError(t, err)
		m, err := gd.Decode(b, g.Src)
		require.NoError(t, err)
		assert.Equal(t, b[:m], a[:n], d.Name)
	}
}

func TestGIFThumbnail(t *testing.T) {
	c := GIF("go").Configs[0]
	require.Equal(t, "1k_8bpp", c.Name)

	d, err := decoder.NewDecoder(decoder.FormatGIF, "go", c.Output)
	require.NoError(t, err)
	dst := make([]byte, 2048)
	n, err := d.Decode(dst, c.Src)
	require.NoError(t, err)
	require.Equal(t, uint64(1024), n)
	assert.Equal(t, byte(1), dst[0])
	assert.Equal(t, byte(1), dst[1023])
}

func TestRunFocused(t *testing.T) {
	reps := 1
	var out bytes.Buffer
	r := bench.NewRunner(Deflate("klauspost"))
	r.Focus = []string{"1k"}
	r.Reps = &reps
	r.IterScale = 1
	r.Out = &out
	r.Buffer = make([]byte, 1<<20)
	require.NoError(t, r.Run())

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	var results []string
	for _, l := range lines {
		if strings.HasPrefix(l, "Benchmark") {
			results = append(results, l)
		}
	}
	require.Len(t, results, 1)
	assert.True(t, strings.HasPrefix(results[0], "Benchmarkklauspost_deflate_decode_1k "), results[0])
	assert.Contains(t, results[0], " 2000 ")
	assert.Equal(t, "# (1 benchmarks run, 1+1 reps per benchmark)", lines[len(lines)-1])
}

func TestStreams(t *testing.T) {
	assert.True(t, JPEG("libjpeg").Stderr)
	assert.False(t, JPEG("go").Stderr)
	assert.Equal(t, bench.StyleMegapixels, GIF("go").Style)
	assert.False(t, GIF("go").WarmUp)
}
