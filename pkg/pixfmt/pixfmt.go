// Package pixfmt normalizes decoded pixels into the byte layouts the
// benchmarks compare: 1 byte per pixel for gray and palette indexes, 3 bytes
// for RGB and 4 bytes for BGRA.
package pixfmt

import (
	"fmt"
	"image"
	"image/color"

	"golang.org/x/image/draw"
)

// RGBToBGRA converts packed 3 byte R G B pixels from src into 4 byte B G R A
// pixels in dst, with alpha set to 0xFF. len(src) must be a multiple of 3,
// len(dst) a multiple of 4, and both must hold the same number of pixels.
func RGBToBGRA(dst, src []byte) {
	if len(src)%3 != 0 {
		panic(fmt.Sprintf("pixfmt: src length (%d) is not a multiple of 3", len(src)))
	}
	if len(dst)%4 != 0 {
		panic(fmt.Sprintf("pixfmt: dst length (%d) is not a multiple of 4", len(dst)))
	}
	if len(src) != len(dst)/4*3 {
		panic(fmt.Sprintf("pixfmt: src length (%d) does not match dst length (%d)", len(src), len(dst)))
	}

	for i, j := 0, 0; i < len(src); i, j = i+3, j+4 {
		s := src[i : i+3 : i+3]
		d := dst[j : j+4 : j+4]
		d[0] = s[2]
		d[1] = s[1]
		d[2] = s[0]
		d[3] = 0xFF
	}
}

// SwapRB swaps the first and third byte of every 4 byte pixel in place,
// turning RGBA into BGRA and back.
func SwapRB(pix []byte) {
	if len(pix)%4 != 0 {
		panic(fmt.Sprintf("pixfmt: length (%d) is not a multiple of 4", len(pix)))
	}
	for i := 0; i < len(pix); i += 4 {
		pix[i], pix[i+2] = pix[i+2], pix[i]
	}
}

// CopyPlane copies h rows of w bytes each from pix, whose rows are stride
// bytes apart, into dst without gaps. It returns w*h.
func CopyPlane(dst, pix []byte, stride, w, h int) int {
	n := w * h
	checkLen(dst, n)
	if stride == w {
		copy(dst, pix[:n])
		return n
	}
	for y := 0; y < h; y++ {
		copy(dst[y*w:(y+1)*w], pix[y*stride:y*stride+w])
	}
	return n
}

// ToBGRA writes src into dst as 4 byte B G R A pixels and returns the number
// of bytes written. Paletted images are expanded and gray becomes opaque gray.
// *image.NRGBA keeps its non-premultiplied values.
func ToBGRA(dst []byte, src image.Image) int {
	b := src.Bounds()
	w, h := b.Dx(), b.Dy()
	n := 4 * w * h
	checkLen(dst, n)
	dst = dst[:n:n]

	switch s := src.(type) {
	case *image.RGBA:
		CopyPlane(dst, s.Pix[s.PixOffset(b.Min.X, b.Min.Y):], s.Stride, 4*w, h)
		SwapRB(dst)
	case *image.NRGBA:
		CopyPlane(dst, s.Pix[s.PixOffset(b.Min.X, b.Min.Y):], s.Stride, 4*w, h)
		SwapRB(dst)
	case *image.Gray:
		for y := 0; y < h; y++ {
			row := s.Pix[s.PixOffset(b.Min.X, b.Min.Y+y):][:w]
			d := dst[4*w*y:]
			for x, v := range row {
				d[4*x+0] = v
				d[4*x+1] = v
				d[4*x+2] = v
				d[4*x+3] = 0xFF
			}
		}
	case *image.Paletted:
		lut := bgraPalette(s.Palette)
		for y := 0; y < h; y++ {
			row := s.Pix[s.PixOffset(b.Min.X, b.Min.Y+y):][:w]
			d := dst[4*w*y:]
			for x, idx := range row {
				copy(d[4*x:4*x+4], lut[idx][:])
			}
		}
	default:
		rgba := &image.RGBA{Pix: dst, Stride: 4 * w, Rect: image.Rect(0, 0, w, h)}
		draw.Draw(rgba, rgba.Rect, src, b.Min, draw.Src)
		SwapRB(dst)
	}
	return n
}

// ToRGB writes src into dst as 3 byte R G B pixels, dropping alpha, and
// returns the number of bytes written.
func ToRGB(dst []byte, src image.Image) int {
	b := src.Bounds()
	w, h := b.Dx(), b.Dy()
	n := 3 * w * h
	checkLen(dst, n)

	if p, ok := src.(*image.Paletted); ok {
		lut := rgbPalette(p.Palette)
		for y := 0; y < h; y++ {
			row := p.Pix[p.PixOffset(b.Min.X, b.Min.Y+y):][:w]
			d := dst[3*w*y:]
			for x, idx := range row {
				copy(d[3*x:3*x+3], lut[idx][:])
			}
		}
		return n
	}

	i := 0
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			r, g, bb, _ := src.At(x, y).RGBA()
			dst[i+0] = uint8(r >> 8)
			dst[i+1] = uint8(g >> 8)
			dst[i+2] = uint8(bb >> 8)
			i += 3
		}
	}
	return n
}

// Out of range indexes decode as opaque black.
func bgraPalette(p color.Palette) (lut [256][4]byte) {
	for i := range lut {
		lut[i][3] = 0xFF
	}
	for i, c := range p {
		if i >= len(lut) {
			break
		}
		r, g, b, a := c.RGBA()
		lut[i] = [4]byte{uint8(b >> 8), uint8(g >> 8), uint8(r >> 8), uint8(a >> 8)}
	}
	return lut
}

func rgbPalette(p color.Palette) (lut [256][3]byte) {
	for i, c := range p {
		if i >= len(lut) {
			break
		}
		r, g, b, _ := c.RGBA()
		lut[i] = [3]byte{uint8(r >> 8), uint8(g >> 8), uint8(b >> 8)}
	}
	return lut
}

func checkLen(dst []byte, n int) {
	if len(dst) < n {
		panic(fmt.Sprintf("pixfmt: dst length (%d) less than required (%d)", len(dst), n))
	}
}
