package main

import (
	"os"

	"github.com/ehsaniara/botvisor/internal/botvisor/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
