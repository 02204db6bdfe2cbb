package bench

import (
	"fmt"
	"io"
	"runtime"
	"strings"
)

// Reporter prints results in the layout selected by Style.
type Reporter struct {
	w       io.Writer
	style   Style
	library string
	err     error
}

func NewReporter(w io.Writer, style Style, library string) *Reporter {
	return &Reporter{w: w, style: style, library: library}
}

func (r *Reporter) printf(format string, args ...interface{}) {
	if r.err != nil {
		return
	}
	_, r.err = fmt.Fprintf(r.w, format, args...)
}

// Header prints the comment block that precedes benchstat results.
func (r *Reporter) Header() {
	if r.style != StyleBenchstat {
		return
	}
	r.printf("# Go %s\n", runtime.Version())
	r.printf("#\n")
	r.printf("# The output format, including the \"Benchmark\" prefixes, is compatible with the\n")
	r.printf("# https://godoc.org/golang.org/x/perf/cmd/benchstat tool. To install it, first\n")
	r.printf("# install Go, then run \"go install golang.org/x/perf/cmd/benchstat@latest\".\n")
}

// Result prints one measurement of config name in family.
func (r *Reporter) Result(family, name string, m Measurement) {
	switch r.style {
	case StyleMegapixels:
		kp := m.KPPerSecond()
		r.printf("%-7s %3d.%03d megapixels/second  %s\n", label(r.library), kp/1000, kp%1000, name)
	default:
		kb := m.KBPerSecond()
		r.printf("Benchmark%s_%-16s   %8d   %12d ns/op   %3d.%03d MB/s\n",
			family, name, m.Iters, m.NanosPerOp(), kb/1000, kb%1000)
	}
}

// Footer summarizes a run that had a warm-up pass.
func (r *Reporter) Footer(benchmarks, reps int) {
	if r.style != StyleBenchstat {
		return
	}
	r.printf("# (%d benchmarks run, 1+%d reps per benchmark)\n", benchmarks, reps)
}

// Err returns the first write error.
func (r *Reporter) Err() error {
	return r.err
}

// label capitalizes a library name for the summary layout, e.g. "Go".
func label(library string) string {
	if library == "" {
		return library
	}
	return strings.ToUpper(library[:1]) + library[1:]
}
