package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"todo-list/internal/cli"
)

func main() {
	// Cancelled on SIGINT/SIGTERM so serve can shut down gracefully
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		cancel()
	}()

	root := cli.NewRootCommand(cli.DefaultOpener, os.Stdout)
	if err := root.ExecuteContext(ctx); err != nil {
		if ctx.Err() != nil {
			fmt.Fprintf(os.Stderr, "\nInterrupted\n")
			os.Exit(130)
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
