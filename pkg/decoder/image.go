package decoder

import (
	"bytes"
	"image"

	"github.com/pion/decodebench/internal/logging"
	"github.com/pion/decodebench/pkg/pixfmt"
	plogging "github.com/pion/logging"
)

// newLogger is called on the warning path so that the level and writer set
// by the command line apply.
func newLogger() plogging.LeveledLogger {
	return logging.NewLogger("decodebench/decoder")
}

// imageFunc decodes one encoded image. The returned image may share memory
// with a previous call's result.
type imageFunc func(r *bytes.Reader) (image.Image, error)

// imageBuilder adapts an image.Image returning library to Decoder. Outputs not
// listed in outs are rejected when building.
func imageBuilder(format Format, decode func() imageFunc, outs ...Output) Builder {
	return func(out Output) (Decoder, error) {
		if !hasOutput(outs, out) {
			return nil, unsupported(out, format)
		}

		var br bytes.Reader
		fn := decode()
		return decoderFunc(func(dst, src []byte) (uint64, error) {
			br.Reset(src)
			m, err := fn(&br)
			if err != nil {
				return 0, err
			}
			return writeImage(dst, m, out)
		}), nil
	}
}

func hasOutput(outs []Output, out Output) bool {
	for _, o := range outs {
		if o == out {
			return true
		}
	}
	return false
}

// writeImage stores m into dst using out's layout. A color model the layout
// has no rule for yields 0 bytes, which callers treat as a size mismatch.
func writeImage(dst []byte, m image.Image, out Output) (uint64, error) {
	b := m.Bounds()
	pixels := b.Dx() * b.Dy()

	var bpp int
	switch out {
	case OutputRGB:
		bpp = 3
	case OutputBGRA:
		bpp = 4
	case OutputNative:
		switch m.(type) {
		case *image.Gray, *image.Paletted:
			bpp = 1
		case *image.RGBA, *image.NRGBA, *image.YCbCr:
			bpp = 4
		default:
			newLogger().Warnf("unexpected image type %T", m)
			return 0, nil
		}
	default:
		return 0, unsupported(out, "image")
	}

	if need := bpp * pixels; len(dst) < need {
		return 0, &InsufficientBufferError{RequiredSize: need}
	}

	switch out {
	case OutputRGB:
		return uint64(pixfmt.ToRGB(dst, m)), nil
	case OutputBGRA:
		return uint64(pixfmt.ToBGRA(dst, m)), nil
	}

	switch s := m.(type) {
	case *image.Gray:
		return uint64(pixfmt.CopyPlane(dst, s.Pix[s.PixOffset(b.Min.X, b.Min.Y):], s.Stride, b.Dx(), b.Dy())), nil
	case *image.Paletted:
		return uint64(pixfmt.CopyPlane(dst, s.Pix[s.PixOffset(b.Min.X, b.Min.Y):], s.Stride, b.Dx(), b.Dy())), nil
	default:
		return uint64(pixfmt.ToBGRA(dst, m)), nil
	}
}
