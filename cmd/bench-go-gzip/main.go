// Command bench-go-gzip benchmarks compress/gzip.
package main

import "github.com/pion/decodebench/internal/suite"

func main() {
	suite.Main(suite.Gzip("go"))
}
