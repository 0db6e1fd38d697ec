package main

import (
	"os"

	"secrettree/cmd/secrettree/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
