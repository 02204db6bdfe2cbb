package bench

import (
	"math"
	"math/bits"
	"time"
)

// Measurement is the accumulated result of one configuration's iterations.
type Measurement struct {
	Iters   uint64
	Bytes   uint64
	Pixels  uint64
	Elapsed time.Duration
}

// nanos never returns zero so that rates stay finite on coarse clocks.
func (m Measurement) nanos() uint64 {
	if m.Elapsed <= 0 {
		return 1
	}
	return uint64(m.Elapsed)
}

// NanosPerOp is the mean elapsed time per iteration.
func (m Measurement) NanosPerOp() uint64 {
	if m.Iters == 0 {
		return 0
	}
	return m.nanos() / m.Iters
}

// KBPerSecond is the decoded byte rate in thousandths of a megabyte per
// second.
func (m Measurement) KBPerSecond() uint64 {
	return rate(m.Bytes, m.nanos())
}

// KPPerSecond is the pixel rate in thousandths of a megapixel per second.
func (m Measurement) KPPerSecond() uint64 {
	return rate(m.Pixels, m.nanos())
}

// rate computes count*1e6/nanos with a 128-bit intermediate, saturating at
// math.MaxUint64 when the quotient does not fit.
func rate(count, nanos uint64) uint64 {
	hi, lo := bits.Mul64(count, 1000000)
	if hi >= nanos {
		return math.MaxUint64
	}
	q, _ := bits.Div64(hi, lo, nanos)
	return q
}

// measure calls step iters times and accumulates the bytes and pixels it
// reports, timing the whole loop once.
func measure(now func() time.Time, iters, pixelsPerStep uint64, step func() (uint64, error)) (Measurement, error) {
	m := Measurement{Iters: iters}
	start := now()
	for i := uint64(0); i < iters; i++ {
		n, err := step()
		if err != nil {
			return Measurement{}, err
		}
		m.Bytes += n
		m.Pixels += pixelsPerStep
	}
	m.Elapsed = now().Sub(start)
	return m, nil
}
