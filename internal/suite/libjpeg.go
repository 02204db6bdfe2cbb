//go:build cgo && libjpeg

package suite

import "github.com/pion/decodebench/pkg/decoder"

func init() {
	register("libjpeg", decoder.FormatJPEG, JPEG)
}
