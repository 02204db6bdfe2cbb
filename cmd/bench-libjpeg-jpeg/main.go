//go:build cgo && libjpeg

// Command bench-libjpeg-jpeg benchmarks libjpeg-turbo through
// github.com/pixiv/go-libjpeg. Build it with -tags libjpeg. Results go to
// stderr.
package main

import "github.com/pion/decodebench/internal/suite"

func main() {
	suite.Main(suite.JPEG("libjpeg"))
}
