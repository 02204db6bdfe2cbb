package decoder

import (
	"errors"
	"testing"

	"github.com/pion/decodebench/pkg/fixture"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJPEGComponents(t *testing.T) {
	cases := map[string]int{
		"bricks-gray.jpeg":         1,
		"bricks-color.jpeg":        3,
		"peacock.default.jpeg":     3,
		"peacock.progressive.jpeg": 3,
		"hibiscus.regular.jpeg":    3,
		"harvesters.jpeg":          3,
	}
	for name, want := range cases {
		got, err := jpegComponents(fixture.MustLoad(fixture.Current, name).Data)
		require.NoError(t, err, name)
		assert.Equal(t, want, got, name)
	}
}

func TestJPEGComponentsErrors(t *testing.T) {
	_, err := jpegComponents([]byte("not a jpeg"))
	assert.Error(t, err)

	// SOI then EOI, no frame.
	_, err = jpegComponents([]byte{0xFF, 0xD8, 0xFF, 0xD9})
	assert.True(t, errors.Is(err, errNoFrameHeader))

	// Truncated inside the frame header.
	src := fixture.MustLoad(fixture.Current, "bricks-gray.jpeg").Data
	_, err = jpegComponents(src[:2])
	assert.True(t, errors.Is(err, errNoFrameHeader))
}

// The gray path must be taken for every gray JPEG in the tables, or the
// libjpeg suite decodes 19k_8bpp to 4 bytes per pixel.
func TestJPEGGrayPath(t *testing.T) {
	src := fixture.MustLoad(fixture.Current, "bricks-gray.jpeg").Data
	n, err := jpegComponents(src)
	require.NoError(t, err)

	assert.True(t, jpegGrayPath(n, OutputNative))
	assert.True(t, jpegGrayPath(n, OutputBGRA))
	assert.False(t, jpegGrayPath(n, OutputRGB))
	assert.False(t, jpegGrayPath(3, OutputNative))
	assert.False(t, jpegGrayPath(3, OutputBGRA))
}
