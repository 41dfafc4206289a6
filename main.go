package main

import (
	"os"

	"github.com/jmngeo/seqpt/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
