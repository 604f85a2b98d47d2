package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/nestjam/astrotools/internal/cli"
	env "github.com/nestjam/astrotools/internal/config/environment"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := cli.ThumbsCmd(env.New()).ExecuteContext(ctx); err != nil {
		exit(stop)
	}
}

func exit(stop context.CancelFunc) {
	stop()
	os.Exit(1)
}
