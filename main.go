package main

import (
	"fmt"
	"os"

	"github.com/temirov/termswap/cmd/cli"
)

const (
	exitErrorTemplateConstant = "%v\n"
)

// main executes the termswap command-line application.
func main() {
	if executionError := cli.Execute(); executionError != nil {
		fmt.Fprintf(os.Stderr, exitErrorTemplateConstant, executionError)
		os.Exit(1)
	}
}
