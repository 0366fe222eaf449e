package main

import (
	"fmt"
	"os"

	"github.com/pixport/pixport/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "pixport: %v\n", err)
		os.Exit(1)
	}
}
