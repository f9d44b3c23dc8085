package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	apperrors "icatest/internal/errors"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-sigChan
		cancel()
	}()

	cli := newCLI(os.Stdout, os.Stderr)
	err := cli.execute(ctx, os.Args[1:])

	cancel()
	os.Exit(apperrors.ExitStatus(err))
}
