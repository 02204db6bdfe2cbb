package decoder

import (
	"bytes"
	"compress/flate"
	"compress/gzip"
	"io"

	kflate "github.com/klauspost/compress/flate"
	kgzip "github.com/klauspost/compress/gzip"
)

func init() {
	Register(FormatDeflate, "go", streamBuilder(FormatDeflate, func() opener {
		var zr io.ReadCloser
		return func(src io.Reader) (io.Reader, error) {
			if zr == nil {
				zr = flate.NewReader(src)
				return zr, nil
			}
			return zr, zr.(flate.Resetter).Reset(src, nil)
		}
	}))
	Register(FormatDeflate, "klauspost", streamBuilder(FormatDeflate, func() opener {
		var zr io.ReadCloser
		return func(src io.Reader) (io.Reader, error) {
			if zr == nil {
				zr = kflate.NewReader(src)
				return zr, nil
			}
			return zr, zr.(kflate.Resetter).Reset(src, nil)
		}
	}))
	Register(FormatGzip, "go", streamBuilder(FormatGzip, func() opener {
		var zr *gzip.Reader
		return func(src io.Reader) (io.Reader, error) {
			if zr == nil {
				r, err := gzip.NewReader(src)
				if err != nil {
					return nil, err
				}
				zr = r
			} else if err := zr.Reset(src); err != nil {
				return nil, err
			}
			zr.Multistream(false)
			return zr, nil
		}
	}))
	Register(FormatGzip, "klauspost", streamBuilder(FormatGzip, func() opener {
		var zr *kgzip.Reader
		return func(src io.Reader) (io.Reader, error) {
			if zr == nil {
				r, err := kgzip.NewReader(src)
				if err != nil {
					return nil, err
				}
				zr = r
			} else if err := zr.Reset(src); err != nil {
				return nil, err
			}
			zr.Multistream(false)
			return zr, nil
		}
	}))
}

// opener returns a decompressing reader over src, reusing the previous one
// when the library allows it.
type opener func(src io.Reader) (io.Reader, error)

func streamBuilder(format Format, newOpener func() opener) Builder {
	return func(out Output) (Decoder, error) {
		if out != OutputNative {
			return nil, unsupported(out, format)
		}

		var br bytes.Reader
		open := newOpener()
		return decoderFunc(func(dst, src []byte) (uint64, error) {
			br.Reset(src)
			r, err := open(&br)
			if err != nil {
				return 0, err
			}
			return readStream(dst, r)
		}), nil
	}
}

// readStream reads r to EOF into dst.
func readStream(dst []byte, r io.Reader) (uint64, error) {
	var probe [1]byte
	n := 0
	for {
		if n == len(dst) {
			m, err := r.Read(probe[:])
			if m > 0 {
				return uint64(n), &InsufficientBufferError{RequiredSize: n + 1}
			}
			if err == io.EOF {
				return uint64(n), nil
			}
			if err != nil {
				return uint64(n), err
			}
			continue
		}

		m, err := r.Read(dst[n:])
		n += m
		if err == io.EOF {
			return uint64(n), nil
		}
		if err != nil {
			return uint64(n), err
		}
	}
}
