package main

import (
	"fmt"
	"os"

	"github.com/dexnore/dockerfile/cmd/dockerfile/cli"
)

func main() {
	if err := cli.NewRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(cli.ExitCode(err))
	}
}
