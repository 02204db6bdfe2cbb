// Command bench-imaging-png benchmarks PNG decoding through github.com/disintegration/imaging.
package main

import "github.com/pion/decodebench/internal/suite"

func main() {
	suite.Main(suite.PNG("imaging"))
}
