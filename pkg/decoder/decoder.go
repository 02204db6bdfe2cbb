// Package decoder adapts third-party decoding libraries to a single
// Decoder interface that writes into a caller-owned buffer.
package decoder

type Format string

const (
	FormatGIF     Format = "gif"
	FormatDeflate Format = "deflate"
	FormatGzip    Format = "gzip"
	FormatJPEG    Format = "jpeg"
	FormatPNG     Format = "png"
)

// Output selects the byte layout a Decoder writes.
type Output int

const (
	// OutputNative keeps gray and palette indexes at 1 byte per pixel and
	// writes any color model as 4 byte BGRA. Byte streams are written as is.
	OutputNative Output = iota
	// OutputRGB writes 3 byte R G B pixels.
	OutputRGB
	// OutputBGRA writes 4 byte B G R A pixels, expanding palettes and gray.
	OutputBGRA
)

func (o Output) String() string {
	switch o {
	case OutputNative:
		return "native"
	case OutputRGB:
		return "rgb"
	case OutputBGRA:
		return "bgra"
	default:
		return "unknown"
	}
}

// Decoder decodes src into dst and returns the number of bytes written.
// Bytes of dst beyond that count are left untouched. Decoders are not safe for
// concurrent use.
type Decoder interface {
	Decode(dst, src []byte) (uint64, error)
}

// decoderFunc is a proxy type for Decoder
type decoderFunc func(dst, src []byte) (uint64, error)

func (f decoderFunc) Decode(dst, src []byte) (uint64, error) {
	return f(dst, src)
}
