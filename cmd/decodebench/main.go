// Command decodebench runs the decoder benchmark suites with run time
// overrides and compares their results.
package main

import "github.com/pion/decodebench/internal/cli"

func main() {
	cli.Execute()
}
