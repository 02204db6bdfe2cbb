package cli

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pion/decodebench/internal/suite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := NewCommand()
	cmd.SetArgs(args)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	err := cmd.Execute()
	return out.String(), err
}

func countResults(text, prefix string) int {
	n := 0
	for _, line := range strings.Split(text, "\n") {
		if strings.HasPrefix(line, prefix) {
			n++
		}
	}
	return n
}

func TestList(t *testing.T) {
	out, err := execute(t, "", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "go_png_decode_image_19k_8bpp")
	assert.Contains(t, out, "klauspost_gzip_decode_100k")
	assert.Contains(t, out, "go_gif_decode_image_1000k_8bpp_legacy")
}

func TestRun(t *testing.T) {
	out, err := execute(t, "", "run", "klauspost_gzip", "go_deflate", "--focus=1k", "--reps=2", "--iterscale=1")
	require.NoError(t, err)
	assert.Equal(t, 2, countResults(out, "Benchmarkklauspost_gzip_decode_1k "))
	assert.Equal(t, 2, countResults(out, "Benchmarkgo_deflate_decode_1k "))
	assert.Zero(t, countResults(out, "Benchmarkgo_deflate_decode_10k"))
}

func TestRunEnv(t *testing.T) {
	t.Setenv("DECODEBENCH_REPS", "3")
	t.Setenv("DECODEBENCH_ITERSCALE", "1")
	t.Setenv("DECODEBENCH_FOCUS", "go_gzip_decode_1k")

	out, err := execute(t, "", "run", "go_gzip")
	require.NoError(t, err)
	assert.Equal(t, 3, countResults(out, "Benchmarkgo_gzip_decode_1k "))
	assert.Equal(t, 3, countResults(out, "Benchmark"))
}

func TestRunConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bench.yaml")
	require.NoError(t, os.WriteFile(path, []byte("reps: 1\niterscale: 1\nfocus: 10k\n"), 0o600))

	out, err := execute(t, "", "run", "go_gzip", "--config", path)
	require.NoError(t, err)
	assert.Equal(t, 1, countResults(out, "Benchmarkgo_gzip_decode_10k "))
	assert.Equal(t, 1, countResults(out, "Benchmark"))
}

func TestRunErrors(t *testing.T) {
	_, err := execute(t, "", "run", "go_webp")
	assert.True(t, errors.Is(err, suite.ErrUnknownSuite))

	_, err = execute(t, "", "run", "go_gzip", "--reps=1000001")
	assert.Error(t, err)

	_, err = execute(t, "", "run", "go_gzip", "--iterscale=-2")
	assert.Error(t, err)
}

func TestRatio(t *testing.T) {
	in := `# Go go1.23.0
Benchmarkgo_png_decode_image_19k_8bpp          50   100 ns/op   100.000 MB/s
Benchmarkimaging_png_decode_image_19k_8bpp     50   100 ns/op   300.000 MB/s
Benchmarkgo_png_decode_image_19k_8bpp          50   100 ns/op   200.000 MB/s
Benchmarkklauspost_gzip_decode_1k              50   100 ns/op    50.000 MB/s
`
	out, err := execute(t, in, "ratio")
	require.NoError(t, err)

	var rows [][]string
	for _, line := range strings.Split(strings.TrimSpace(out), "\n") {
		rows = append(rows, strings.Fields(line))
	}
	assert.Equal(t, [][]string{
		{"go_png_decode_image_19k_8bpp", "150.000", "MB/s", "1.00x"},
		{"imaging_png_decode_image_19k_8bpp", "300.000", "MB/s", "2.00x"},
		{"klauspost_gzip_decode_1k", "50.000", "MB/s", "-"},
	}, rows)
}

func TestRatioBaselineAndFiles(t *testing.T) {
	path := filepath.Join(t.TempDir(), "results.txt")
	require.NoError(t, os.WriteFile(path, []byte(
		"Benchmarkgo_gzip_decode_1k   10   100 ns/op   100.000 MB/s\n"+
			"Benchmarkklauspost_gzip_decode_1k   10   100 ns/op   400.000 MB/s\n"), 0o600))

	out, err := execute(t, "", "ratio", "--baseline=klauspost", path)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, []string{"klauspost_gzip_decode_1k", "400.000", "MB/s", "1.00x"}, strings.Fields(lines[0]))
	assert.Equal(t, []string{"go_gzip_decode_1k", "100.000", "MB/s", "0.25x"}, strings.Fields(lines[1]))

	_, err = execute(t, "", "ratio", filepath.Join(t.TempDir(), "missing.txt"))
	assert.Error(t, err)
}
