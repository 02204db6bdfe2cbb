// Command bench-go-deflate benchmarks compress/flate over the raw deflate streams of the gzip fixtures.
package main

import "github.com/pion/decodebench/internal/suite"

func main() {
	suite.Main(suite.Deflate("go"))
}
