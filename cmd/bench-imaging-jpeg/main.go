// Command bench-imaging-jpeg benchmarks JPEG decoding through github.com/disintegration/imaging.
package main

import "github.com/pion/decodebench/internal/suite"

func main() {
	suite.Main(suite.JPEG("imaging"))
}
