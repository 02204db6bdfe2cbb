// Command bench-go-jpeg benchmarks image/jpeg.
package main

import "github.com/pion/decodebench/internal/suite"

func main() {
	suite.Main(suite.JPEG("go"))
}
