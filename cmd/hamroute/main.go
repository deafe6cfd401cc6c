// Package main is the entry point for the hamroute CLI.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/katalvlaran/hamroute/cmd/hamroute/commands"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes the command line and returns the process exit code.
func run(args []string, stdout, stderr io.Writer) int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	cli := commands.New()
	cli.SetOutput(stdout, stderr)
	cli.SetArgs(args)
	if err := cli.Execute(ctx); err != nil {
		_, _ = fmt.Fprintf(stderr, "hamroute: %v\n", err)
		return 1
	}

	return 0
}
