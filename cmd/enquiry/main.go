package main

import (
	"os"

	"github.com/shandysiswandi/enquiry/cmd/enquiry/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
