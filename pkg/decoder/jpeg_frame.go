package decoder

import (
	"errors"
	"fmt"
)

var errNoFrameHeader = errors.New("jpeg: no frame header before scan data")

// jpegComponents reads the number of color components from the first SOFn
// frame header of a JPEG stream.
func jpegComponents(src []byte) (int, error) {
	if len(src) < 2 || src[0] != 0xFF || src[1] != 0xD8 {
		return 0, errors.New("jpeg: missing SOI marker")
	}

	i := 2
	for i < len(src) {
		if src[i] != 0xFF {
			return 0, fmt.Errorf("jpeg: expected marker at offset %d", i)
		}
		// Skip fill bytes.
		for i < len(src) && src[i] == 0xFF {
			i++
		}
		if i >= len(src) {
			break
		}
		marker := src[i]
		i++

		switch {
		case marker == 0x01 || marker == 0xD8 || (marker >= 0xD0 && marker <= 0xD7):
			continue
		case marker == 0xD9 || marker == 0xDA:
			return 0, errNoFrameHeader
		}

		if i+2 > len(src) {
			break
		}
		length := int(src[i])<<8 | int(src[i+1])
		if length < 2 || i+length > len(src) {
			return 0, fmt.Errorf("jpeg: bad segment length %d for marker %#x", length, marker)
		}

		// SOF0..SOF15 except DHT, JPG and DAC.
		if marker >= 0xC0 && marker <= 0xCF && marker != 0xC4 && marker != 0xC8 && marker != 0xCC {
			if length < 8 {
				return 0, fmt.Errorf("jpeg: short frame header (%d bytes)", length)
			}
			return int(src[i+7]), nil
		}
		i += length
	}
	return 0, errNoFrameHeader
}

// jpegGrayPath reports whether an image with the given component count keeps
// its 1 byte per pixel gray decode for out. Everything else is decoded to
// packed RGB.
func jpegGrayPath(components int, out Output) bool {
	return components == 1 && out != OutputRGB
}
