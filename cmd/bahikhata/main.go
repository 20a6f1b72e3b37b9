package main

import (
	"os"

	"github.com/bahikhata-dev/bahikhata/internal/commands"
)

func main() {
	if err := commands.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
