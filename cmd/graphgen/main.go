package main

import (
	"context"
	stderrors "errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/matzehuels/graphgen/internal/cli"
	"github.com/matzehuels/graphgen/pkg/errors"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	err := cli.New(os.Stdout, os.Stderr, cli.LogInfo).Execute(ctx, os.Args[1:])
	if err != nil && stderrors.Is(err, context.Canceled) {
		os.Exit(errors.ExitCanceled) // Standard shell convention for SIGINT
	}
	os.Exit(errors.ExitCode(err))
}
