package bench

import (
	"fmt"
	"io"
	"os"
	"runtime"
	"time"

	"github.com/pion/decodebench/internal/logging"
	"github.com/pion/decodebench/pkg/decoder"
	plogging "github.com/pion/logging"
)

// Runner executes a Suite. The zero values of the optional fields select the
// suite's compiled-in behaviour.
type Runner struct {
	Suite Suite

	// Focus limits the run to configs matching one of these prefixes.
	Focus []string
	// Reps and IterScale override the suite when set.
	Reps      *int
	IterScale uint64
	// Out receives results. Defaults to stdout, or stderr for suites that
	// ask for it.
	Out io.Writer
	// Buffer is the destination for every decode. Defaults to
	// DefaultBufferSize bytes.
	Buffer []byte

	now func() time.Time
	gc  func()
	log plogging.LeveledLogger
}

func NewRunner(s Suite) *Runner {
	return &Runner{
		Suite: s,
		now:   time.Now,
		gc:    runtime.GC,
		log:   logging.NewLogger("decodebench/bench"),
	}
}

func (r *Runner) reps() int {
	if r.Reps != nil {
		return *r.Reps
	}
	return r.Suite.Reps
}

func (r *Runner) iterScale() uint64 {
	if r.IterScale != 0 {
		return r.IterScale
	}
	if r.Suite.IterScale == 0 {
		return 1
	}
	return r.Suite.IterScale
}

func (r *Runner) out() io.Writer {
	switch {
	case r.Out != nil:
		return r.Out
	case r.Suite.Stderr:
		return os.Stderr
	default:
		return os.Stdout
	}
}

// Configs returns the suite's configs that pass the focus filter.
func (r *Runner) Configs() []Config {
	var cfgs []Config
	for _, c := range r.Suite.Configs {
		if focused(r.Focus, r.Suite.Family(), c.Name) {
			cfgs = append(cfgs, c)
		}
	}
	return cfgs
}

// Run benchmarks every focused config. With warm-up enabled every config is
// first run once without printing. The first failing check stops the run.
func (r *Runner) Run() error {
	s := &r.Suite
	cfgs := r.Configs()
	if len(cfgs) == 0 {
		r.log.Warnf("%s: no benchmarks match focus %v", s.Name(), r.Focus)
	}

	dst := r.Buffer
	if dst == nil {
		dst = make([]byte, DefaultBufferSize)
	}
	for _, c := range cfgs {
		if c.WantBytes > uint64(len(dst)) {
			return fmt.Errorf("%s: buffer of %d bytes cannot hold %d bytes", c.Name, len(dst), c.WantBytes)
		}
	}

	decoders := make(map[decoder.Output]decoder.Decoder)
	for _, c := range cfgs {
		if _, ok := decoders[c.Output]; ok {
			continue
		}
		d, err := decoder.NewDecoder(s.Format, s.Library, c.Output)
		if err != nil {
			return err
		}
		decoders[c.Output] = d
	}

	rep := NewReporter(r.out(), s.Style, s.Library)
	rep.Header()

	reps := r.reps()
	first := 0
	if s.WarmUp {
		first = -1
	}
	for i := first; i < reps; i++ {
		for _, c := range cfgs {
			r.gc()
			iters := c.ItersUnscaled * r.iterScale()
			m, err := r.measure(decoders[c.Output], c, dst, iters)
			if err != nil {
				return fmt.Errorf("%s_%s: %w", s.Family(), c.Name, err)
			}
			if i < 0 {
				r.log.Debugf("warm up %s_%s: %v", s.Family(), c.Name, m.Elapsed)
				continue
			}
			rep.Result(s.Family(), c.Name, m)
		}
	}

	if s.WarmUp {
		rep.Footer(len(cfgs), reps)
	}
	return rep.Err()
}

func (r *Runner) measure(d decoder.Decoder, c Config, dst []byte, iters uint64) (Measurement, error) {
	return measure(r.now, iters, c.pixels(), func() (uint64, error) {
		if c.Sentinel != nil && c.WantBytes > 0 {
			dst[0] = 0xFE
			dst[c.WantBytes-1] = 0xFE
		}

		n, err := d.Decode(dst, c.Src)
		if err != nil {
			return 0, err
		}
		if n != c.WantBytes {
			return 0, &MismatchError{Got: n, Want: c.WantBytes}
		}
		if c.Sentinel != nil && n > 0 {
			if dst[0] != c.Sentinel.First || dst[n-1] != c.Sentinel.Last {
				return 0, ErrWrongPixels
			}
		}
		return n, nil
	})
}
