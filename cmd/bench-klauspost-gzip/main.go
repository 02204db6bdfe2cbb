// Command bench-klauspost-gzip benchmarks github.com/klauspost/compress/gzip.
package main

import "github.com/pion/decodebench/internal/suite"

func main() {
	suite.Main(suite.Gzip("klauspost"))
}
