package main

import (
	"os"

	"github.com/nestjam/astrotools/internal/cli"
)

func main() {
	if err := cli.Base58Cmd().Execute(); err != nil {
		exit()
	}
}

func exit() {
	os.Exit(1)
}
