//go:build cgo && libjpeg

package decoder

import (
	"bytes"

	"github.com/pion/decodebench/pkg/pixfmt"
	"github.com/pixiv/go-libjpeg/jpeg"
	"github.com/pixiv/go-libjpeg/rgb"
)

func init() {
	Register(FormatJPEG, "libjpeg", newLibjpegDecoder)
}

// newLibjpegDecoder decodes color images straight to packed RGB with
// libjpeg-turbo and widens them to BGRA. Gray images stay 1 byte per pixel
// in native output.
func newLibjpegDecoder(out Output) (Decoder, error) {
	if out != OutputNative && out != OutputBGRA && out != OutputRGB {
		return nil, unsupported(out, FormatJPEG)
	}

	var br bytes.Reader
	opts := &jpeg.DecoderOptions{}
	return decoderFunc(func(dst, src []byte) (uint64, error) {
		// DecodeConfig reports YCbCr for every image, so the component
		// count comes from the frame header.
		components, err := jpegComponents(src)
		if err != nil {
			return 0, err
		}

		br.Reset(src)
		if jpegGrayPath(components, out) {
			m, err := jpeg.Decode(&br, opts)
			if err != nil {
				return 0, err
			}
			return writeImage(dst, m, out)
		}

		m, err := jpeg.DecodeIntoRGB(&br, opts)
		if err != nil {
			return 0, err
		}
		return writeRGB(dst, m, out)
	}), nil
}

func writeRGB(dst []byte, m *rgb.Image, out Output) (uint64, error) {
	w, h := m.Rect.Dx(), m.Rect.Dy()
	if out == OutputRGB {
		if need := 3 * w * h; len(dst) < need {
			return 0, &InsufficientBufferError{RequiredSize: need}
		}
		return uint64(pixfmt.CopyPlane(dst, m.Pix, m.Stride, 3*w, h)), nil
	}

	n := 4 * w * h
	if len(dst) < n {
		return 0, &InsufficientBufferError{RequiredSize: n}
	}
	if m.Stride == 3*w {
		pixfmt.RGBToBGRA(dst[:n], m.Pix[:3*w*h])
		return uint64(n), nil
	}
	for y := 0; y < h; y++ {
		pixfmt.RGBToBGRA(dst[4*w*y:4*w*(y+1)], m.Pix[m.Stride*y:m.Stride*y+3*w])
	}
	return uint64(n), nil
}
