// Command bench-go-gif benchmarks image/gif and prints megapixels/second.
package main

import "github.com/pion/decodebench/internal/suite"

func main() {
	suite.Main(suite.GIF("go"))
}
