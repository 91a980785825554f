package main

import (
	"os"

	"gonesdump/nesdump/cli"
)

func main() {
	os.Exit(cli.Main(os.Args[1:]))
}
