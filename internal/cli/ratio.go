package cli

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/perf/benchfmt"
)

func newRatioCommand(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ratio [file...]",
		Short: "Compare mean MB/s of each library against a baseline library",
		Long: `ratio reads benchmark results, from stdin when no files are given, and
groups them by name without the leading library, e.g. go_png_decode_image_19k_8bpp
and imaging_png_decode_image_19k_8bpp are the same benchmark. Each line shows a
library's mean throughput and its speed relative to the baseline.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			t := newRatioTable()
			if len(args) == 0 {
				if err := t.read(cmd.InOrStdin(), "stdin"); err != nil {
					return err
				}
			}
			for _, path := range args {
				if err := readFile(t, path); err != nil {
					return err
				}
			}
			return t.write(cmd.OutOrStdout(), v.GetString("baseline"))
		},
	}
	cmd.Flags().String("baseline", "go", "library whose results count as 1.00x")
	bindFlags(v, cmd.Flags(), "baseline")
	return cmd
}

func readFile(t *ratioTable, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return t.read(f, path)
}

type sample struct {
	sum float64
	n   int
}

func (s sample) mean() float64 { return s.sum / float64(s.n) }

// ratioTable accumulates MB/s samples per benchmark and library.
type ratioTable struct {
	keys    []string
	samples map[string]map[string]*sample
}

func newRatioTable() *ratioTable {
	return &ratioTable{samples: make(map[string]map[string]*sample)}
}

func (t *ratioTable) read(r io.Reader, fileName string) error {
	br := benchfmt.NewReader(r, fileName)
	for br.Scan() {
		switch rec := br.Result().(type) {
		case *benchfmt.SyntaxError:
			return rec
		case *benchfmt.Result:
			mbps, ok := megabytesPerSecond(rec)
			if !ok {
				continue
			}
			t.add(strings.TrimPrefix(string(rec.Name), "Benchmark"), mbps)
		}
	}
	return br.Err()
}

func (t *ratioTable) add(name string, mbps float64) {
	i := strings.IndexByte(name, '_')
	if i <= 0 {
		return
	}
	lib, key := name[:i], name[i+1:]

	libs, ok := t.samples[key]
	if !ok {
		libs = make(map[string]*sample)
		t.samples[key] = libs
		t.keys = append(t.keys, key)
	}
	s, ok := libs[lib]
	if !ok {
		s = &sample{}
		libs[lib] = s
	}
	s.sum += mbps
	s.n++
}

func (t *ratioTable) write(w io.Writer, baseline string) error {
	tw := tabwriter.NewWriter(w, 0, 8, 2, ' ', 0)
	for _, key := range t.keys {
		libs := t.samples[key]
		names := make([]string, 0, len(libs))
		for lib := range libs {
			names = append(names, lib)
		}
		sort.Slice(names, func(i, j int) bool {
			if (names[i] == baseline) != (names[j] == baseline) {
				return names[i] == baseline
			}
			return names[i] < names[j]
		})

		base, hasBase := libs[baseline]
		for _, lib := range names {
			mean := libs[lib].mean()
			ratio := "-"
			if hasBase && base.mean() > 0 {
				ratio = fmt.Sprintf("%.2fx", mean/base.mean())
			}
			fmt.Fprintf(tw, "%s_%s\t%.3f MB/s\t%s\n", lib, key, mean, ratio)
		}
	}
	return tw.Flush()
}

// megabytesPerSecond finds the MB/s value whether or not benchfmt has
// normalized it to B/s.
func megabytesPerSecond(res *benchfmt.Result) (float64, bool) {
	for _, v := range res.Values {
		switch {
		case v.OrigUnit == "MB/s":
			return v.OrigValue, true
		case v.Unit == "MB/s":
			return v.Value, true
		case v.Unit == "B/s":
			return v.Value / 1e6, true
		}
	}
	return 0, false
}
