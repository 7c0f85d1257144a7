package main

import (
	"os"

	"github.com/Shreedhar-Khorate/hiredesk-cli/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
