// Command cplx renders complex numbers and runs the sample walkthrough.
package main

import (
	"fmt"
	"os"

	"github.com/roach88/cplx/internal/cli"
)

func main() {
	if err := cli.NewRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(cli.GetExitCode(err))
	}
}
