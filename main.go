package main

import (
	"os"

	"github.com/dayne-app/dayne/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
