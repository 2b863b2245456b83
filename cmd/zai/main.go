package main

import (
	"os"

	"github.com/sehnsucht13/zai-pl/cmd/zai/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
