// Command kmzexport converts KML and KMZ files into symbol-classified
// location tables and browses them in a terminal map viewer.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd(os.Stdout, os.Stderr, os.LookupEnv).ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "kmzexport:", err)
		stop()
		os.Exit(1)
	}
}
