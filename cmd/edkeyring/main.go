package main

import (
	"os"

	"edkeyring/cmd/edkeyring/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
