// Command bench-go-png benchmarks image/png.
package main

import "github.com/pion/decodebench/internal/suite"

func main() {
	suite.Main(suite.PNG("go"))
}
