package decoder

import (
	"bytes"
	"image"
	"image/gif"
	"image/jpeg"
	"image/png"

	"github.com/disintegration/imaging"
)

func init() {
	Register(FormatGIF, "go", imageBuilder(FormatGIF, func() imageFunc {
		return func(r *bytes.Reader) (image.Image, error) { return gif.Decode(r) }
	}, OutputNative, OutputRGB, OutputBGRA))

	Register(FormatPNG, "go", imageBuilder(FormatPNG, func() imageFunc {
		return func(r *bytes.Reader) (image.Image, error) { return png.Decode(r) }
	}, OutputNative, OutputBGRA))
	Register(FormatPNG, "imaging", imageBuilder(FormatPNG, decodeImaging, OutputNative, OutputBGRA))

	Register(FormatJPEG, "go", imageBuilder(FormatJPEG, func() imageFunc {
		return func(r *bytes.Reader) (image.Image, error) { return jpeg.Decode(r) }
	}, OutputNative, OutputBGRA))
	Register(FormatJPEG, "imaging", imageBuilder(FormatJPEG, decodeImaging, OutputNative, OutputBGRA))
}

// Orientation tags are ignored so that the pixel count matches the other
// libraries.
func decodeImaging() imageFunc {
	return func(r *bytes.Reader) (image.Image, error) {
		return imaging.Decode(r, imaging.AutoOrientation(false))
	}
}
