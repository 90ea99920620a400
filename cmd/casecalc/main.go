package main

import (
	"os"

	"github.com/ppiankov/casecalc/internal/cli"
)

func main() {
	err := cli.Execute()
	cli.PrintError(os.Stderr, err)
	os.Exit(cli.ExitCode(err))
}
