package main

import (
	"fmt"
	"os"

	"hours-server/cmd/hoursctl/commands"
)

func main() {
	if err := commands.NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
