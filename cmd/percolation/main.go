// Command percolation estimates the site-percolation threshold of an n-by-n
// lattice by running t independent Monte Carlo trials.
//
//	percolation [flags] <n> <t>
//
// On success it prints four lines to standard output:
//
//	mean: <value>
//	std-dev <value>
//	confidence low <value>
//	confidence high <value>
//
// Malformed arguments exit with status 64; any other failure exits with 1.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := newRootCmd().ExecuteContext(ctx)
	stop()
	if err != nil {
		fmt.Fprintln(os.Stderr, "percolation:", err)
	}
	os.Exit(exitCode(err))
}
