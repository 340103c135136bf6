package main

import (
	"context"
	"fmt"
	"os"

	"tasklist/internal/cli"
)

func main() {
	root := cli.NewRootCommand(os.Stdin, os.Stdout, os.Stderr)

	// Every mutation is saved before the next prompt, so an interrupt
	// never loses a completed command.
	if err := root.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
