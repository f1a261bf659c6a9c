package main

import (
	"os"

	"github.com/kisanlabs/plantdoctor/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
