// Package commands provides the command interface and implementations.
package commands

import (
	"context"
	"flag"
	"io"

	"go.uber.org/zap"

	"tasker/internal/config"
	"tasker/internal/service"
)

// Env is what a command runs against.
type Env struct {
	// Config is always provided (config dir, paths, quiet/debug).
	Config *config.Config

	// Tasks is nil if NeedsStore() returns false.
	Tasks service.Tasks

	// Remote is nil if NeedsAuth() returns false.
	Remote service.Remote

	Log *zap.Logger

	In     io.Reader
	Out    io.Writer
	ErrOut io.Writer
}

// Command defines the interface for CLI commands.
type Command interface {
	// Name returns the primary command name.
	Name() string

	// Aliases returns alternative names for the command.
	Aliases() []string

	// Synopsis returns a short description for help output.
	Synopsis() string

	// Usage returns the usage string for help output.
	Usage() string

	// NeedsStore returns true if the command reads or changes the tasks file.
	NeedsStore() bool

	// NeedsAuth returns true if the command talks to Google Tasks.
	NeedsAuth() bool

	// RegisterFlags registers command-specific flags.
	RegisterFlags(fs *flag.FlagSet)

	// Run executes the command with positional arguments left after flag
	// parsing. Returns exit code.
	Run(ctx context.Context, env *Env, args []string) int
}
