// Package main is the entry point for the tasker CLI.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"tasker/internal/backend/googletasks"
	"tasker/internal/cli"
	"tasker/internal/commands"
	"tasker/internal/config"
	"tasker/internal/service"
	"tasker/internal/store"
)

func main() {
	// Create context that cancels on interrupt
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	tasks := func(cfg *config.Config, log *zap.Logger) (service.Tasks, error) {
		return store.Open(cfg.TasksPath, store.WithLogger(log))
	}
	remote := func(ctx context.Context, cfg *config.Config, log *zap.Logger) (service.Remote, error) {
		client, err := googletasks.New(ctx, cfg, log)
		if err != nil {
			return nil, err
		}
		return client, nil
	}

	dispatcher := cli.NewDispatcher(commands.DefaultRegistry, tasks, remote)

	code := dispatcher.Run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
	cancel()
	os.Exit(code)
}
