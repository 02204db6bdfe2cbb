// Command bench-klauspost-deflate benchmarks github.com/klauspost/compress/flate over the raw deflate streams of the gzip fixtures.
package main

import "github.com/pion/decodebench/internal/suite"

func main() {
	suite.Main(suite.Deflate("klauspost"))
}
