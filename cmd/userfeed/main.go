package main

import (
	"os"

	"userfeed/cmd/userfeed/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
